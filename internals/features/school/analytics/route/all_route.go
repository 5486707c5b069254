// file: internals/features/school/analytics/route/all_route.go
package route

import (
	analyticsCtl "schoolku_backend/internals/features/school/analytics/controller"
	middlewares "schoolku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ================================
// Analytics routes (read-only)
// Base: /api/u/:school_id/analytics
// ================================
func AllAnalyticsRoutes(user fiber.Router, db *gorm.DB) {
	ctl := analyticsCtl.NewAnalyticsController(db, nil)

	// School context via PATH param :school_id.
	// Endpoint agregasi berat, limiter khusus.
	r := user.Group("/:school_id/analytics", middlewares.AnalyticsRateLimiter())

	r.Get("/rankings", ctl.ClassRankings)
	r.Get("/percentile", ctl.StudentPercentile)
	r.Get("/statistics", ctl.ResultStatistics)
	r.Get("/integrity", ctl.IntegrityIssues)
}
