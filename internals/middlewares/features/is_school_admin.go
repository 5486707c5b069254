// file: internals/middlewares/features/is_school_admin.go
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

// IsSchoolAdmin memastikan user admin/owner yang login memang terikat
// pada sekolah di path :school_id. Owner global lolos tanpa cek school.
func IsSchoolAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		role = strings.ToLower(strings.TrimSpace(role))
		if role == constants.RoleOwner {
			return c.Next()
		}
		if role != constants.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Hanya admin sekolah yang boleh mengakses resource ini",
			})
		}

		pathSchool := strings.TrimSpace(c.Params("school_id"))
		if pathSchool == "" {
			// route generic tanpa :school_id — konteks diambil dari token
			return c.Next()
		}
		if _, err := uuid.Parse(pathSchool); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "school_id tidak valid",
			})
		}

		tokenSchool, _ := c.Locals("school_id").(string)
		if tokenSchool == "" || !strings.EqualFold(tokenSchool, pathSchool) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Anda bukan admin sekolah ini",
			})
		}
		return c.Next()
	}
}
