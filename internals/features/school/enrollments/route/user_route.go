// file: internals/features/school/enrollments/route/user_route.go
package route

import (
	enrollmentCtl "schoolku_backend/internals/features/school/enrollments/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ================================
// User routes (read-only)
// Base: /api/u/:school_id/enrollments
// ================================
func StudentClassEnrollmentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := enrollmentCtl.NewStudentClassEnrollmentController(db, nil)

	r := user.Group("/:school_id/enrollments")
	r.Get("/list", ctl.List)
}
