// file: internals/features/school/students/route/user_route.go
package route

import (
	studentCtl "schoolku_backend/internals/features/school/students/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ================================
// User routes (read-only)
// Base: /api/u/:school_id/students
// ================================
func StudentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := studentCtl.NewStudentController(db, nil)

	r := user.Group("/:school_id/students")
	r.Get("/list", ctl.List)
	r.Get("/:id", ctl.GetByID)
}
