// file: internals/features/school/academics/campuses/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	campusCtl "schoolku_backend/internals/features/school/academics/campuses/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
	featuresMiddleware "schoolku_backend/internals/middlewares/features"
)

func CampusAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := campusCtl.NewCampusController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola campus"),
			constants.AdminAndAbove,
		),
		featuresMiddleware.IsSchoolAdmin(),
	)

	base.Post("/:school_id/campuses", ctl.Create)
	base.Patch("/:school_id/campuses/:id", ctl.Patch)
	base.Delete("/:school_id/campuses/:id", ctl.Delete)
}
