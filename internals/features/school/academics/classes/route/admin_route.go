// file: internals/features/school/academics/classes/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "escola_backend/internals/features/school/academics/classes/controller"
	evalController "escola_backend/internals/features/school/academics/evaluation/controller"
)

func ClassAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := classController.New(db, validator.New())
	gradeSheetCtl := evalController.New(db, validator.New())

	classes := r.Group("/classes")
	classes.Post("/", ctl.Create)
	classes.Get("/", ctl.List)
	classes.Patch("/:id", ctl.Patch)
	classes.Delete("/:id", ctl.Delete)

	// printable grade-sheet feed for one cohort
	classes.Get("/:id/grade-sheet", gradeSheetCtl.GradeSheet)
}

func ClassPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := classController.New(db, nil)

	classes := r.Group("/classes")
	classes.Get("/", ctl.List)
}
