// file: internals/features/school/reports/controller/student_term_report_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	termService "schoolku_backend/internals/features/school/academics/academic_terms/service"
	dto "schoolku_backend/internals/features/school/reports/dto"
	model "schoolku_backend/internals/features/school/reports/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* ============================================
   Controller
============================================ */

type StudentTermReportController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentTermReportController(db *gorm.DB, v *validator.Validate) *StudentTermReportController {
	if v == nil {
		v = validator.New()
	}
	return &StudentTermReportController{DB: db, Validator: v}
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
   POST /admin/:school_id/term-reports
   Satu rapor per (student, term, class) —
   dijaga unique index + pre-check.
============================================ */

func (ctl *StudentTermReportController) Create(c *fiber.Ctx) error {
	var p dto.StudentTermReportCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	var cnt int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&model.StudentTermReportModel{}).
		Where("student_term_report_school_id = ? AND student_term_report_student_id = ? AND student_term_report_term_id = ? AND student_term_report_class_id = ?",
			schoolID, p.StudentTermReportStudentID, p.StudentTermReportTermID, p.StudentTermReportClassID).
		Count(&cnt).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal memeriksa duplikasi")
	}
	if cnt > 0 {
		return httpErr(c, fiber.StatusConflict, "Rapor siswa untuk term & kelas ini sudah ada")
	}

	ent := p.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal membuat rapor")
	}

	// refresh cache stats term (best-effort)
	if err := termService.RefreshTermStats(c.UserContext(), ctl.DB, schoolID, ent.StudentTermReportTermID); err != nil {
		log.Printf("[WARN] refresh term stats gagal: %v", err)
	}

	return helper.JsonCreated(c, "Berhasil membuat rapor", dto.FromModel(ent))
}

/* ============================================
   LIST
   GET /:school_id/term-reports/list
   Query: ?term_id= &class_id= &student_id=
============================================ */

func (ctl *StudentTermReportController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&model.StudentTermReportModel{}).
		Where("student_term_report_school_id = ?", schoolID)
	if s := c.Query("term_id"); s != "" {
		q = q.Where("student_term_report_term_id = ?", s)
	}
	if s := c.Query("class_id"); s != "" {
		q = q.Where("student_term_report_class_id = ?", s)
	}
	if s := c.Query("student_id"); s != "" {
		q = q.Where("student_term_report_student_id = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var ents []model.StudentTermReportModel
	if err := q.Order("student_term_report_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&ents).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar rapor", dto.FromModels(ents),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   PATCH
   PATCH /admin/:school_id/term-reports/:id
============================================ */

func (ctl *StudentTermReportController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	var p dto.StudentTermReportUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	var ent model.StudentTermReportModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("student_term_report_school_id = ? AND student_term_report_id = ?", schoolID, id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "Rapor tidak ditemukan")
		}
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui rapor", dto.FromModel(ent))
}

/* ============================================
   DELETE (soft)
   DELETE /admin/:school_id/term-reports/:id
============================================ */

func (ctl *StudentTermReportController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("student_term_report_school_id = ? AND student_term_report_id = ?", schoolID, id).
		Delete(&model.StudentTermReportModel{})
	if res.Error != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menghapus rapor")
	}
	if res.RowsAffected == 0 {
		return httpErr(c, fiber.StatusNotFound, "Rapor tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus rapor", fiber.Map{"student_term_report_id": id})
}
