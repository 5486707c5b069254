// file: internals/features/school/reports/route/user_route.go
package route

import (
	reportCtl "schoolku_backend/internals/features/school/reports/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ================================
// User routes (read-only)
// Base: /api/u/:school_id/term-reports & /:school_id/score-entries
// ================================
func ReportUserRoutes(user fiber.Router, db *gorm.DB) {
	trCtl := reportCtl.NewStudentTermReportController(db, nil)
	seCtl := reportCtl.NewStudentScoreEntryController(db, nil)

	tr := user.Group("/:school_id/term-reports")
	tr.Get("/list", trCtl.List)

	se := user.Group("/:school_id/score-entries")
	se.Get("/list", seCtl.List)
}
