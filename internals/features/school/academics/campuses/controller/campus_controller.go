// file: internals/features/school/academics/campuses/controller/campus_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolku_backend/internals/features/school/academics/campuses/dto"
	model "schoolku_backend/internals/features/school/academics/campuses/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* ============================================
   Controller
============================================ */

type CampusController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCampusController(db *gorm.DB, v *validator.Validate) *CampusController {
	if v == nil {
		v = validator.New()
	}
	return &CampusController{DB: db, Validator: v}
}

/* ============================================
   RESP/ERR helpers
============================================ */

func httpErr(c *fiber.Ctx, code int, msg string) error {
	return helper.JsonError(c, code, msg)
}

func bindAndValidate[T any](c *fiber.Ctx, v *validator.Validate, dst *T) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if v != nil {
		if err := v.Struct(dst); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
	}
	return nil
}

/* ============================================
   CREATE
   POST /admin/:school_id/campuses
============================================ */

func (ctl *CampusController) Create(c *fiber.Ctx) error {
	var p dto.CampusCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	ent := p.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal membuat campus")
	}
	return helper.JsonCreated(c, "Berhasil membuat campus", dto.FromModel(ent))
}

/* ============================================
   LIST
   GET /:school_id/campuses/list
============================================ */

func (ctl *CampusController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&model.CampusModel{}).
		Where("campus_school_id = ?", schoolID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var ents []model.CampusModel
	if err := q.Order("campus_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&ents).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar campus", dto.FromModels(ents),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   PATCH
   PATCH /admin/:school_id/campuses/:id
============================================ */

func (ctl *CampusController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	var p dto.CampusUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	var ent model.CampusModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("campus_school_id = ? AND campus_id = ?", schoolID, id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "Campus tidak ditemukan")
		}
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui campus", dto.FromModel(ent))
}

/* ============================================
   DELETE (soft)
   DELETE /admin/:school_id/campuses/:id
============================================ */

func (ctl *CampusController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("campus_school_id = ? AND campus_id = ?", schoolID, id).
		Delete(&model.CampusModel{})
	if res.Error != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menghapus campus")
	}
	if res.RowsAffected == 0 {
		return httpErr(c, fiber.StatusNotFound, "Campus tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus campus", fiber.Map{"campus_id": id})
}
