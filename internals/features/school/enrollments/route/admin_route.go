// file: internals/features/school/enrollments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	enrollmentCtl "schoolku_backend/internals/features/school/enrollments/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
	featuresMiddleware "schoolku_backend/internals/middlewares/features"
)

func StudentClassEnrollmentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := enrollmentCtl.NewStudentClassEnrollmentController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola enrolmen"),
			constants.AdminAndAbove,
		),
		featuresMiddleware.IsSchoolAdmin(),
	)

	base.Post("/:school_id/enrollments", ctl.Create)
	base.Delete("/:school_id/enrollments/:id", ctl.Delete)
}
