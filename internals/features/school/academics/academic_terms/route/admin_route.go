// file: internals/features/school/academics/academic_terms/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	academicTermCtl "schoolku_backend/internals/features/school/academics/academic_terms/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
	featuresMiddleware "schoolku_backend/internals/middlewares/features"
)

func AcademicTermAdminRoutes(api fiber.Router, db *gorm.DB) {
	termCtl := academicTermCtl.NewAcademicTermController(db, nil)

	// Guard global (admin/owner + school admin check)
	base := api.Group("",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola academic terms"),
			constants.AdminAndAbove,
		),
		featuresMiddleware.IsSchoolAdmin(),
	)

	base.Post("/:school_id/academic-terms", termCtl.Create)
	base.Patch("/:school_id/academic-terms/:id", termCtl.Patch)
	base.Delete("/:school_id/academic-terms/:id", termCtl.Delete)
}
