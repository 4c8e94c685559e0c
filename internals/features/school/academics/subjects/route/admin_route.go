// file: internals/features/school/academics/subjects/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectController "escola_backend/internals/features/school/academics/subjects/controller"
)

/*
Admin routes: full CRUD.
Mount example: SubjectAdminRoutes(app.Group("/api/a"), db)
*/
func SubjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := subjectController.New(db, validator.New())

	subjects := r.Group("/subjects")
	subjects.Post("/", ctl.Create)
	subjects.Get("/", ctl.List)
	subjects.Patch("/:id", ctl.Patch)
	subjects.Delete("/:id", ctl.Delete)
}

/* Public: read-only list */
func SubjectPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := subjectController.New(db, nil)

	subjects := r.Group("/subjects")
	subjects.Get("/", ctl.List)
}
