// file: internals/features/school/academics/timetable/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lessonController "escola_backend/internals/features/school/academics/timetable/controller"
)

/*
Admin routes: lesson CRUD with conflict checking on every write.
Mount example: LessonAdminRoutes(app.Group("/api/a"), db)
*/
func LessonAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := lessonController.New(db, validator.New())

	lessons := r.Group("/lessons")
	lessons.Post("/", ctl.Create)
	lessons.Get("/", ctl.List)
	lessons.Get("/:id", ctl.GetByID)
	lessons.Patch("/:id", ctl.Patch)
	lessons.Delete("/:id", ctl.Delete)
}

/* Public: read-only timetable */
func LessonPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := lessonController.New(db, nil)

	lessons := r.Group("/lessons")
	lessons.Get("/", ctl.List)
	lessons.Get("/:id", ctl.GetByID)
}
