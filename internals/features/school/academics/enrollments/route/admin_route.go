// file: internals/features/school/academics/enrollments/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentController "escola_backend/internals/features/school/academics/enrollments/controller"
	evalController "escola_backend/internals/features/school/academics/evaluation/controller"
)

func EnrollmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := enrollmentController.New(db, validator.New())
	outcomeCtl := evalController.New(db, validator.New())

	enrollments := r.Group("/enrollments")
	enrollments.Post("/", ctl.Create)
	enrollments.Get("/", ctl.List)
	enrollments.Delete("/:id", ctl.Delete)

	// derived academic outcome, recomputed on every read
	enrollments.Get("/:id/outcome", outcomeCtl.Outcome)
}
