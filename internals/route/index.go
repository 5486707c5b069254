// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	middlewares "schoolku_backend/internals/middlewares"
	schoolkuMiddleware "schoolku_backend/internals/middlewares/auth_school"

	routeDetails "schoolku_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	BaseRoutes(app, db)

	// koneksi db ikut di context request (dipakai handler generik)
	app.Use(middlewares.DBMiddleware(db))

	// ===================== GROUPS =====================

	// PRIVATE (USER) → JWT wajib, read-only
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	private := app.Group("/api/u",
		schoolkuMiddleware.AuthJWT(schoolkuMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	// ADMIN (per school) → JWT + role & scope check di masing-masing route
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		schoolkuMiddleware.AuthJWT(schoolkuMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting School routes...")
	routeDetails.SchoolUserRoutes(private, db)
	routeDetails.SchoolAdminRoutes(admin, db)
}
