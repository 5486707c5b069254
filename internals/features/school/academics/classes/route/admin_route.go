// file: internals/features/school/academics/classes/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	classCtl "schoolku_backend/internals/features/school/academics/classes/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
	featuresMiddleware "schoolku_backend/internals/middlewares/features"
)

func AcademicClassAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := classCtl.NewAcademicClassController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola kelas"),
			constants.AdminAndAbove,
		),
		featuresMiddleware.IsSchoolAdmin(),
	)

	base.Post("/:school_id/classes", ctl.Create)
	base.Patch("/:school_id/classes/:id", ctl.Patch)
	base.Delete("/:school_id/classes/:id", ctl.Delete)
}
