// file: internals/features/school/reports/controller/student_score_entry_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolku_backend/internals/features/school/reports/dto"
	model "schoolku_backend/internals/features/school/reports/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* ============================================
   Controller (nilai per mapel)
============================================ */

type StudentScoreEntryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentScoreEntryController(db *gorm.DB, v *validator.Validate) *StudentScoreEntryController {
	if v == nil {
		v = validator.New()
	}
	return &StudentScoreEntryController{DB: db, Validator: v}
}

/* ============================================
   CREATE
   POST /admin/:school_id/score-entries
============================================ */

func (ctl *StudentScoreEntryController) Create(c *fiber.Ctx) error {
	var p dto.StudentScoreEntryCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	var cnt int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&model.StudentScoreEntryModel{}).
		Where("student_score_entry_school_id = ? AND student_score_entry_student_id = ? AND student_score_entry_class_id = ? AND student_score_entry_subject_name = ? AND student_score_entry_term_id = ?",
			schoolID, p.StudentScoreEntryStudentID, p.StudentScoreEntryClassID, p.StudentScoreEntrySubjectName, p.StudentScoreEntryTermID).
		Count(&cnt).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal memeriksa duplikasi")
	}
	if cnt > 0 {
		return httpErr(c, fiber.StatusConflict, "Nilai mapel untuk siswa & term ini sudah ada")
	}

	ent := p.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menyimpan nilai")
	}
	return helper.JsonCreated(c, "Berhasil menyimpan nilai", dto.ScoreEntryFromModel(ent))
}

/* ============================================
   LIST
   GET /:school_id/score-entries/list
   Query: ?term_id= &class_id= &student_id= &subject=
============================================ */

func (ctl *StudentScoreEntryController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&model.StudentScoreEntryModel{}).
		Where("student_score_entry_school_id = ?", schoolID)
	if s := c.Query("term_id"); s != "" {
		q = q.Where("student_score_entry_term_id = ?", s)
	}
	if s := c.Query("class_id"); s != "" {
		q = q.Where("student_score_entry_class_id = ?", s)
	}
	if s := c.Query("student_id"); s != "" {
		q = q.Where("student_score_entry_student_id = ?", s)
	}
	if s := c.Query("subject"); s != "" {
		q = q.Where("student_score_entry_subject_name = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var ents []model.StudentScoreEntryModel
	if err := q.Order("student_score_entry_subject_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&ents).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar nilai", dto.ScoreEntriesFromModels(ents),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   DELETE (soft)
   DELETE /admin/:school_id/score-entries/:id
============================================ */

func (ctl *StudentScoreEntryController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("student_score_entry_school_id = ? AND student_score_entry_id = ?", schoolID, id).
		Delete(&model.StudentScoreEntryModel{})
	if res.Error != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menghapus nilai")
	}
	if res.RowsAffected == 0 {
		return httpErr(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus nilai", fiber.Map{"student_score_entry_id": id})
}
