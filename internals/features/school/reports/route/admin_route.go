// file: internals/features/school/reports/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	reportCtl "schoolku_backend/internals/features/school/reports/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
	featuresMiddleware "schoolku_backend/internals/middlewares/features"
)

func ReportAdminRoutes(api fiber.Router, db *gorm.DB) {
	trCtl := reportCtl.NewStudentTermReportController(db, nil)
	seCtl := reportCtl.NewStudentScoreEntryController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola rapor"),
			constants.AdminAndAbove,
		),
		featuresMiddleware.IsSchoolAdmin(),
	)

	base.Post("/:school_id/term-reports", trCtl.Create)
	base.Patch("/:school_id/term-reports/:id", trCtl.Patch)
	base.Delete("/:school_id/term-reports/:id", trCtl.Delete)

	base.Post("/:school_id/score-entries", seCtl.Create)
	base.Delete("/:school_id/score-entries/:id", seCtl.Delete)
}
