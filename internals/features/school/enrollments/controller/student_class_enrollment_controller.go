// file: internals/features/school/enrollments/controller/student_class_enrollment_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	termService "schoolku_backend/internals/features/school/academics/academic_terms/service"
	dto "schoolku_backend/internals/features/school/enrollments/dto"
	model "schoolku_backend/internals/features/school/enrollments/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* ============================================
   Controller
============================================ */

type StudentClassEnrollmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentClassEnrollmentController(db *gorm.DB, v *validator.Validate) *StudentClassEnrollmentController {
	if v == nil {
		v = validator.New()
	}
	return &StudentClassEnrollmentController{DB: db, Validator: v}
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
   POST /admin/:school_id/enrollments
   Satu siswa hanya boleh punya satu enrolmen
   per (class, term) — dijaga unique index +
   pre-check di sini supaya errornya ramah.
============================================ */

func (ctl *StudentClassEnrollmentController) Create(c *fiber.Ctx) error {
	var p dto.StudentClassEnrollmentCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	var cnt int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&model.StudentClassEnrollmentModel{}).
		Where("student_class_enrollment_school_id = ? AND student_class_enrollment_student_id = ? AND student_class_enrollment_class_id = ? AND student_class_enrollment_term_id = ?",
			schoolID, p.StudentClassEnrollmentStudentID, p.StudentClassEnrollmentClassID, p.StudentClassEnrollmentTermID).
		Count(&cnt).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal memeriksa duplikasi")
	}
	if cnt > 0 {
		return httpErr(c, fiber.StatusConflict, "Siswa sudah terdaftar pada kelas & term ini")
	}

	ent := p.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal membuat enrolmen")
	}

	// refresh cache stats term (best-effort)
	if err := termService.RefreshTermStats(c.UserContext(), ctl.DB, schoolID, ent.StudentClassEnrollmentTermID); err != nil {
		log.Printf("[WARN] refresh term stats gagal: %v", err)
	}

	return helper.JsonCreated(c, "Berhasil membuat enrolmen", dto.FromModel(ent))
}

/* ============================================
   LIST
   GET /:school_id/enrollments/list
   Query: ?student_id= &class_id= &term_id=
============================================ */

func (ctl *StudentClassEnrollmentController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	var f dto.StudentClassEnrollmentFilterDTO
	if err := c.QueryParser(&f); err != nil {
		return httpErr(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := ctl.Validator.Struct(&f); err != nil {
		return httpErr(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&model.StudentClassEnrollmentModel{}).
		Where("student_class_enrollment_school_id = ?", schoolID)
	if f.StudentID != nil && *f.StudentID != "" {
		q = q.Where("student_class_enrollment_student_id = ?", *f.StudentID)
	}
	if f.ClassID != nil && *f.ClassID != "" {
		q = q.Where("student_class_enrollment_class_id = ?", *f.ClassID)
	}
	if f.TermID != nil && *f.TermID != "" {
		q = q.Where("student_class_enrollment_term_id = ?", *f.TermID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var ents []model.StudentClassEnrollmentModel
	if err := q.Order("student_class_enrollment_enrolled_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&ents).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar enrolmen", dto.FromModels(ents),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   DELETE (soft)
   DELETE /admin/:school_id/enrollments/:id
============================================ */

func (ctl *StudentClassEnrollmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("student_class_enrollment_school_id = ? AND student_class_enrollment_id = ?", schoolID, id).
		Delete(&model.StudentClassEnrollmentModel{})
	if res.Error != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menghapus enrolmen")
	}
	if res.RowsAffected == 0 {
		return httpErr(c, fiber.StatusNotFound, "Enrolmen tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus enrolmen", fiber.Map{"student_class_enrollment_id": id})
}
