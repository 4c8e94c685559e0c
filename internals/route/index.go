// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	schoolMiddleware "escola_backend/internals/middlewares/auth_school"
	routeDetails "escola_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → no JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.AcademicPublicRoutes(public, db)

	// ADMIN (per school) → JWT + scope
	log.Println("[INFO] Setting up ADMIN group (Auth + Scope)...")
	admin := app.Group("/api/a",
		schoolMiddleware.AuthJWT(schoolMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)
	routeDetails.AcademicAdminRoutes(admin, db)
}
