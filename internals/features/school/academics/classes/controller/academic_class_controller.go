// file: internals/features/school/academics/classes/controller/academic_class_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolku_backend/internals/features/school/academics/classes/dto"
	model "schoolku_backend/internals/features/school/academics/classes/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* ============================================
   Controller
============================================ */

type AcademicClassController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAcademicClassController(db *gorm.DB, v *validator.Validate) *AcademicClassController {
	if v == nil {
		v = validator.New()
	}
	return &AcademicClassController{DB: db, Validator: v}
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
   POST /admin/:school_id/classes
============================================ */

func (ctl *AcademicClassController) Create(c *fiber.Ctx) error {
	var p dto.AcademicClassCreateDTO
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
		return httpErr(c, fiber.StatusInternalServerError, "Gagal membuat kelas")
	}
	return helper.JsonCreated(c, "Berhasil membuat kelas", dto.FromModel(ent))
}

/* ============================================
   LIST
   GET /:school_id/classes/list
   Query: ?arm= &session_label= &active=
============================================ */

func (ctl *AcademicClassController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	var f dto.AcademicClassFilterDTO
	if err := c.QueryParser(&f); err != nil {
		return httpErr(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := ctl.Validator.Struct(&f); err != nil {
		return httpErr(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&model.AcademicClassModel{}).
		Where("academic_class_school_id = ?", schoolID)
	if f.Arm != nil && *f.Arm != "" {
		q = q.Where("academic_class_arm = ?", *f.Arm)
	}
	if f.SessionLabel != nil && *f.SessionLabel != "" {
		q = q.Where("academic_class_session_label = ?", *f.SessionLabel)
	}
	if f.Active != nil {
		q = q.Where("academic_class_is_active = ?", *f.Active)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var ents []model.AcademicClassModel
	if err := q.Order("academic_class_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&ents).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar kelas", dto.FromModels(ents),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   PATCH
   PATCH /admin/:school_id/classes/:id
============================================ */

func (ctl *AcademicClassController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	var p dto.AcademicClassUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	var ent model.AcademicClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("academic_class_school_id = ? AND academic_class_id = ?", schoolID, id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui kelas", dto.FromModel(ent))
}

/* ============================================
   DELETE (soft)
   DELETE /admin/:school_id/classes/:id
============================================ */

func (ctl *AcademicClassController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("academic_class_school_id = ? AND academic_class_id = ?", schoolID, id).
		Delete(&model.AcademicClassModel{})
	if res.Error != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	if res.RowsAffected == 0 {
		return httpErr(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus kelas", fiber.Map{"academic_class_id": id})
}
