// file: internals/features/school/enrollments/dto/student_class_enrollment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/enrollments/model"
)

// =======================
// Request DTO
// =======================

type StudentClassEnrollmentCreateDTO struct {
	StudentClassEnrollmentStudentID uuid.UUID `json:"student_class_enrollment_student_id" validate:"required"`
	StudentClassEnrollmentClassID   uuid.UUID `json:"student_class_enrollment_class_id" validate:"required"`
	StudentClassEnrollmentTermID    uuid.UUID `json:"student_class_enrollment_term_id" validate:"required"`
}

// (opsional) filter list
type StudentClassEnrollmentFilterDTO struct {
	StudentID *string `query:"student_id" validate:"omitempty,uuid4"`
	ClassID   *string `query:"class_id" validate:"omitempty,uuid4"`
	TermID    *string `query:"term_id" validate:"omitempty,uuid4"`
}

// =======================
// Response DTO
// =======================

type StudentClassEnrollmentResponseDTO struct {
	StudentClassEnrollmentID         uuid.UUID `json:"student_class_enrollment_id"`
	StudentClassEnrollmentSchoolID   uuid.UUID `json:"student_class_enrollment_school_id"`
	StudentClassEnrollmentStudentID  uuid.UUID `json:"student_class_enrollment_student_id"`
	StudentClassEnrollmentClassID    uuid.UUID `json:"student_class_enrollment_class_id"`
	StudentClassEnrollmentTermID     uuid.UUID `json:"student_class_enrollment_term_id"`
	StudentClassEnrollmentEnrolledAt time.Time `json:"student_class_enrollment_enrolled_at"`
	StudentClassEnrollmentCreatedAt  time.Time `json:"student_class_enrollment_created_at"`
}

// =======================
// Helpers
// =======================

func (p *StudentClassEnrollmentCreateDTO) ToModel(schoolID uuid.UUID) model.StudentClassEnrollmentModel {
	return model.StudentClassEnrollmentModel{
		StudentClassEnrollmentSchoolID:  schoolID,
		StudentClassEnrollmentStudentID: p.StudentClassEnrollmentStudentID,
		StudentClassEnrollmentClassID:   p.StudentClassEnrollmentClassID,
		StudentClassEnrollmentTermID:    p.StudentClassEnrollmentTermID,
		StudentClassEnrollmentEnrolledAt: time.Now(),
	}
}

// Mapper entity -> response
func FromModel(ent model.StudentClassEnrollmentModel) StudentClassEnrollmentResponseDTO {
	return StudentClassEnrollmentResponseDTO{
		StudentClassEnrollmentID:         ent.StudentClassEnrollmentID,
		StudentClassEnrollmentSchoolID:   ent.StudentClassEnrollmentSchoolID,
		StudentClassEnrollmentStudentID:  ent.StudentClassEnrollmentStudentID,
		StudentClassEnrollmentClassID:    ent.StudentClassEnrollmentClassID,
		StudentClassEnrollmentTermID:     ent.StudentClassEnrollmentTermID,
		StudentClassEnrollmentEnrolledAt: ent.StudentClassEnrollmentEnrolledAt,
		StudentClassEnrollmentCreatedAt:  ent.StudentClassEnrollmentCreatedAt,
	}
}

func FromModels(ents []model.StudentClassEnrollmentModel) []StudentClassEnrollmentResponseDTO {
	out := make([]StudentClassEnrollmentResponseDTO, 0, len(ents))
	for _, e := range ents {
		out = append(out, FromModel(e))
	}
	return out
}
