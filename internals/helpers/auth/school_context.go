// file: internals/helpers/auth/school_context.go
package helperAuth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

//? Digunakan untuk mengambil school_id dari path param atau klaim JWT

// GetSchoolIDFromPath: konteks sekolah via PATH param :school_id.
func GetSchoolIDFromPath(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Params("school_id")
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "School context tidak ditemukan")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "school_id tidak valid")
	}
	return id, nil
}

// GetSchoolIDFromToken: fallback dari klaim JWT (diisi middleware AuthJWT).
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("school_id").(string)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "School context tidak ditemukan di token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "school_id token tidak valid")
	}
	return id, nil
}

// GetUserIDFromToken: id user login (diisi middleware AuthJWT).
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id token tidak valid")
	}
	return id, nil
}
