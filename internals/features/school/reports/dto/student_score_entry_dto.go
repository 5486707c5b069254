// file: internals/features/school/reports/dto/student_score_entry_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/reports/model"
)

// =======================
// Request DTO
// =======================

type StudentScoreEntryCreateDTO struct {
	StudentScoreEntryStudentID   uuid.UUID `json:"student_score_entry_student_id" validate:"required"`
	StudentScoreEntryClassID     uuid.UUID `json:"student_score_entry_class_id" validate:"required"`
	StudentScoreEntryTermID      uuid.UUID `json:"student_score_entry_term_id" validate:"required"`
	StudentScoreEntrySubjectName string    `json:"student_score_entry_subject_name" validate:"required,min=2,max=120"`

	StudentScoreEntryScore       *float64 `json:"student_score_entry_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	StudentScoreEntryGradeLetter *string  `json:"student_score_entry_grade_letter,omitempty" validate:"omitempty,max=4"`
}

// =======================
// Response DTO
// =======================

type StudentScoreEntryResponseDTO struct {
	StudentScoreEntryID          uuid.UUID `json:"student_score_entry_id"`
	StudentScoreEntrySchoolID    uuid.UUID `json:"student_score_entry_school_id"`
	StudentScoreEntryStudentID   uuid.UUID `json:"student_score_entry_student_id"`
	StudentScoreEntryClassID     uuid.UUID `json:"student_score_entry_class_id"`
	StudentScoreEntryTermID      uuid.UUID `json:"student_score_entry_term_id"`
	StudentScoreEntrySubjectName string    `json:"student_score_entry_subject_name"`
	StudentScoreEntryScore       *float64  `json:"student_score_entry_score,omitempty"`
	StudentScoreEntryGradeLetter *string   `json:"student_score_entry_grade_letter,omitempty"`
	StudentScoreEntryCreatedAt   time.Time `json:"student_score_entry_created_at"`
}

// =======================
// Helpers
// =======================

func (p *StudentScoreEntryCreateDTO) Normalize() {
	p.StudentScoreEntrySubjectName = strings.TrimSpace(p.StudentScoreEntrySubjectName)
}

func (p *StudentScoreEntryCreateDTO) ToModel(schoolID uuid.UUID) model.StudentScoreEntryModel {
	return model.StudentScoreEntryModel{
		StudentScoreEntrySchoolID:    schoolID,
		StudentScoreEntryStudentID:   p.StudentScoreEntryStudentID,
		StudentScoreEntryClassID:     p.StudentScoreEntryClassID,
		StudentScoreEntryTermID:      p.StudentScoreEntryTermID,
		StudentScoreEntrySubjectName: p.StudentScoreEntrySubjectName,
		StudentScoreEntryScore:       p.StudentScoreEntryScore,
		StudentScoreEntryGradeLetter: p.StudentScoreEntryGradeLetter,
	}
}

// Mapper entity -> response
func ScoreEntryFromModel(ent model.StudentScoreEntryModel) StudentScoreEntryResponseDTO {
	return StudentScoreEntryResponseDTO{
		StudentScoreEntryID:          ent.StudentScoreEntryID,
		StudentScoreEntrySchoolID:    ent.StudentScoreEntrySchoolID,
		StudentScoreEntryStudentID:   ent.StudentScoreEntryStudentID,
		StudentScoreEntryClassID:     ent.StudentScoreEntryClassID,
		StudentScoreEntryTermID:      ent.StudentScoreEntryTermID,
		StudentScoreEntrySubjectName: ent.StudentScoreEntrySubjectName,
		StudentScoreEntryScore:       ent.StudentScoreEntryScore,
		StudentScoreEntryGradeLetter: ent.StudentScoreEntryGradeLetter,
		StudentScoreEntryCreatedAt:   ent.StudentScoreEntryCreatedAt,
	}
}

func ScoreEntriesFromModels(ents []model.StudentScoreEntryModel) []StudentScoreEntryResponseDTO {
	out := make([]StudentScoreEntryResponseDTO, 0, len(ents))
	for _, e := range ents {
		out = append(out, ScoreEntryFromModel(e))
	}
	return out
}
