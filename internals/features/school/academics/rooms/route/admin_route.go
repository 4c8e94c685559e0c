// file: internals/features/school/academics/rooms/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	roomController "escola_backend/internals/features/school/academics/rooms/controller"
)

func RoomAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := roomController.New(db, validator.New())

	rooms := r.Group("/rooms")
	rooms.Post("/", ctl.Create)
	rooms.Get("/", ctl.List)
	rooms.Patch("/:id", ctl.Patch)
	rooms.Delete("/:id", ctl.Delete)
}

func RoomPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := roomController.New(db, nil)

	rooms := r.Group("/rooms")
	rooms.Get("/", ctl.List)
}
