// file: internals/features/school/academics/academic_terms/route/user_route.go
package route

import (
	academicTermCtl "schoolku_backend/internals/features/school/academics/academic_terms/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ================================
// User routes (read-only)
// Base: /api/u/:school_id/academic-terms
// ================================
func AcademicTermUserRoutes(user fiber.Router, db *gorm.DB) {
	termCtl := academicTermCtl.NewAcademicTermController(db, nil)

	// School context via PATH param :school_id
	r := user.Group("/:school_id/academic-terms")
	r.Get("/list", termCtl.List)
}
