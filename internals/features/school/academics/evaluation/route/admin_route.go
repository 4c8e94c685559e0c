// file: internals/features/school/academics/evaluation/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	evalController "escola_backend/internals/features/school/academics/evaluation/controller"
)

// EvaluationAdminRoutes
// Prefix: /api/a
func EvaluationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := evalController.New(db, validator.New())

	scores := r.Group("/scores")
	scores.Post("/", ctl.Upsert)
}
