// file: internals/features/school/academics/campuses/route/user_route.go
package route

import (
	campusCtl "schoolku_backend/internals/features/school/academics/campuses/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ================================
// User routes (read-only)
// Base: /api/u/:school_id/campuses
// ================================
func CampusUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := campusCtl.NewCampusController(db, nil)

	// School context via PATH param :school_id
	r := user.Group("/:school_id/campuses")
	r.Get("/list", ctl.List)
}
