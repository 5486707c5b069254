// file: internals/features/school/students/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	studentCtl "schoolku_backend/internals/features/school/students/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
	featuresMiddleware "schoolku_backend/internals/middlewares/features"
)

func StudentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := studentCtl.NewStudentController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola siswa"),
			constants.AdminAndAbove,
		),
		featuresMiddleware.IsSchoolAdmin(),
	)

	base.Post("/:school_id/students", ctl.Create)
	base.Patch("/:school_id/students/:id", ctl.Patch)
	base.Delete("/:school_id/students/:id", ctl.Delete)
}
