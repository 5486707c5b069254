// file: internals/features/school/academics/classes/route/user_route.go
package route

import (
	classCtl "schoolku_backend/internals/features/school/academics/classes/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ================================
// User routes (read-only)
// Base: /api/u/:school_id/classes
// ================================
func AcademicClassUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := classCtl.NewAcademicClassController(db, nil)

	r := user.Group("/:school_id/classes")
	r.Get("/list", ctl.List)
}
