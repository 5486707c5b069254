// internals/route/details/school_routes.go
package details

import (
	// ====== School features ======
	AcademicTermRoutes "schoolku_backend/internals/features/school/academics/academic_terms/route"
	CampusRoutes "schoolku_backend/internals/features/school/academics/campuses/route"
	AcademicClassRoutes "schoolku_backend/internals/features/school/academics/classes/route"
	AnalyticsRoutes "schoolku_backend/internals/features/school/analytics/route"
	EnrollmentRoutes "schoolku_backend/internals/features/school/enrollments/route"
	ReportRoutes "schoolku_backend/internals/features/school/reports/route"
	StudentRoutes "schoolku_backend/internals/features/school/students/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ===================== USER (PRIVATE, read-only) ===================== */
func SchoolUserRoutes(r fiber.Router, db *gorm.DB) {
	CampusRoutes.CampusUserRoutes(r, db)
	AcademicClassRoutes.AcademicClassUserRoutes(r, db)
	AcademicTermRoutes.AcademicTermUserRoutes(r, db)
	StudentRoutes.StudentUserRoutes(r, db)
	EnrollmentRoutes.StudentClassEnrollmentUserRoutes(r, db)
	ReportRoutes.ReportUserRoutes(r, db)
	AnalyticsRoutes.AllAnalyticsRoutes(r, db)
}

/* ===================== ADMIN (per school) ===================== */
func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	CampusRoutes.CampusAdminRoutes(r, db)
	AcademicClassRoutes.AcademicClassAdminRoutes(r, db)
	AcademicTermRoutes.AcademicTermAdminRoutes(r, db)
	StudentRoutes.StudentAdminRoutes(r, db)
	EnrollmentRoutes.StudentClassEnrollmentAdminRoutes(r, db)
	ReportRoutes.ReportAdminRoutes(r, db)
}
