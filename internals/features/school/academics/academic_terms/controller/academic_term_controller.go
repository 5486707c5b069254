// file: internals/features/school/academics/academic_terms/controller/academic_term_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolku_backend/internals/features/school/academics/academic_terms/dto"
	model "schoolku_backend/internals/features/school/academics/academic_terms/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* ============================================
   Controller
============================================ */

type AcademicTermController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAcademicTermController(db *gorm.DB, v *validator.Validate) *AcademicTermController {
	if v == nil {
		v = validator.New()
	}
	return &AcademicTermController{DB: db, Validator: v}
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
   POST /admin/:school_id/academic-terms
============================================ */

func (ctl *AcademicTermController) Create(c *fiber.Ctx) error {
	var p dto.AcademicTermCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	if p.AcademicTermEndDate.Before(p.AcademicTermStartDate) {
		return httpErr(c, fiber.StatusBadRequest, "Tanggal akhir harus >= tanggal mulai")
	}

	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	// Uniqueness check (per school) untuk kombinasi tahun + nama
	var cnt int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&model.AcademicTermModel{}).
		Where("academic_term_school_id = ? AND academic_term_academic_year = ? AND academic_term_name = ?",
			schoolID, p.AcademicTermAcademicYear, p.AcademicTermName).
		Count(&cnt).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal memeriksa duplikasi")
	}
	if cnt > 0 {
		return httpErr(c, fiber.StatusConflict, "Term dengan tahun & nama itu sudah ada")
	}

	ent := p.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal membuat tahun akademik")
	}
	return helper.JsonCreated(c, "Berhasil membuat tahun akademik", dto.FromModel(ent))
}

/* ============================================
   LIST
   GET /:school_id/academic-terms/list
   Query: ?year= &active=
============================================ */

func (ctl *AcademicTermController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	var f dto.AcademicTermFilterDTO
	if err := c.QueryParser(&f); err != nil {
		return httpErr(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := ctl.Validator.Struct(&f); err != nil {
		return httpErr(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&model.AcademicTermModel{}).
		Where("academic_term_school_id = ?", schoolID)
	if f.Year != nil && *f.Year != "" {
		q = q.Where("academic_term_academic_year = ?", *f.Year)
	}
	if f.Active != nil {
		q = q.Where("academic_term_is_active = ?", *f.Active)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var ents []model.AcademicTermModel
	if err := q.Order("academic_term_start_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&ents).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar tahun akademik", dto.FromModels(ents),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   PATCH
   PATCH /admin/:school_id/academic-terms/:id
============================================ */

func (ctl *AcademicTermController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	var p dto.AcademicTermUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	var ent model.AcademicTermModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("academic_term_school_id = ? AND academic_term_id = ?", schoolID, id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "Tahun akademik tidak ditemukan")
		}
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui tahun akademik", dto.FromModel(ent))
}

/* ============================================
   DELETE (soft)
   DELETE /admin/:school_id/academic-terms/:id
============================================ */

func (ctl *AcademicTermController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("academic_term_school_id = ? AND academic_term_id = ?", schoolID, id).
		Delete(&model.AcademicTermModel{})
	if res.Error != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menghapus tahun akademik")
	}
	if res.RowsAffected == 0 {
		return httpErr(c, fiber.StatusNotFound, "Tahun akademik tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus tahun akademik", fiber.Map{"academic_term_id": id})
}
