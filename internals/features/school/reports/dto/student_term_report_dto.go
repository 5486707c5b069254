// file: internals/features/school/reports/dto/student_term_report_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"schoolku_backend/internals/features/school/reports/model"
)

// =======================
// Request DTO
// =======================

type StudentTermReportCreateDTO struct {
	StudentTermReportStudentID uuid.UUID `json:"student_term_report_student_id" validate:"required"`
	StudentTermReportTermID    uuid.UUID `json:"student_term_report_term_id" validate:"required"`
	StudentTermReportClassID   uuid.UUID `json:"student_term_report_class_id" validate:"required"`

	// nullable: rapor boleh dibuat sebelum nilai final
	StudentTermReportAverageScore *float64 `json:"student_term_report_average_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	StudentTermReportTotalScore   *float64 `json:"student_term_report_total_score,omitempty" validate:"omitempty,gte=0"`
	StudentTermReportSubjects     []string `json:"student_term_report_subjects,omitempty"`
}

type StudentTermReportUpdateDTO struct {
	StudentTermReportAverageScore *float64 `json:"student_term_report_average_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	StudentTermReportTotalScore   *float64 `json:"student_term_report_total_score,omitempty" validate:"omitempty,gte=0"`
	StudentTermReportSubjects     []string `json:"student_term_report_subjects,omitempty"`
}

// =======================
// Response DTO
// =======================

type StudentTermReportResponseDTO struct {
	StudentTermReportID           uuid.UUID `json:"student_term_report_id"`
	StudentTermReportSchoolID     uuid.UUID `json:"student_term_report_school_id"`
	StudentTermReportStudentID    uuid.UUID `json:"student_term_report_student_id"`
	StudentTermReportTermID       uuid.UUID `json:"student_term_report_term_id"`
	StudentTermReportClassID      uuid.UUID `json:"student_term_report_class_id"`
	StudentTermReportAverageScore *float64  `json:"student_term_report_average_score,omitempty"`
	StudentTermReportTotalScore   *float64  `json:"student_term_report_total_score,omitempty"`
	StudentTermReportSubjectCount int       `json:"student_term_report_subject_count"`
	StudentTermReportSubjects     []string  `json:"student_term_report_subjects,omitempty"`
	StudentTermReportCreatedAt    time.Time `json:"student_term_report_created_at"`
	StudentTermReportUpdatedAt    time.Time `json:"student_term_report_updated_at"`
}

// =======================
// Helpers
// =======================

func (p *StudentTermReportCreateDTO) ToModel(schoolID uuid.UUID) model.StudentTermReportModel {
	return model.StudentTermReportModel{
		StudentTermReportSchoolID:      schoolID,
		StudentTermReportStudentID:     p.StudentTermReportStudentID,
		StudentTermReportTermID:        p.StudentTermReportTermID,
		StudentTermReportClassID:       p.StudentTermReportClassID,
		StudentTermReportAverageScore:  p.StudentTermReportAverageScore,
		StudentTermReportTotalScore:    p.StudentTermReportTotalScore,
		StudentTermReportSubjectCount:  len(p.StudentTermReportSubjects),
		StudentTermReportSubjectsCache: pq.StringArray(p.StudentTermReportSubjects),
	}
}

func (u *StudentTermReportUpdateDTO) ApplyUpdates(ent *model.StudentTermReportModel) {
	if u.StudentTermReportAverageScore != nil {
		ent.StudentTermReportAverageScore = u.StudentTermReportAverageScore
	}
	if u.StudentTermReportTotalScore != nil {
		ent.StudentTermReportTotalScore = u.StudentTermReportTotalScore
	}
	if u.StudentTermReportSubjects != nil {
		ent.StudentTermReportSubjectsCache = pq.StringArray(u.StudentTermReportSubjects)
		ent.StudentTermReportSubjectCount = len(u.StudentTermReportSubjects)
	}
}

// Mapper entity -> response
func FromModel(ent model.StudentTermReportModel) StudentTermReportResponseDTO {
	return StudentTermReportResponseDTO{
		StudentTermReportID:           ent.StudentTermReportID,
		StudentTermReportSchoolID:     ent.StudentTermReportSchoolID,
		StudentTermReportStudentID:    ent.StudentTermReportStudentID,
		StudentTermReportTermID:       ent.StudentTermReportTermID,
		StudentTermReportClassID:      ent.StudentTermReportClassID,
		StudentTermReportAverageScore: ent.StudentTermReportAverageScore,
		StudentTermReportTotalScore:   ent.StudentTermReportTotalScore,
		StudentTermReportSubjectCount: ent.StudentTermReportSubjectCount,
		StudentTermReportSubjects:     []string(ent.StudentTermReportSubjectsCache),
		StudentTermReportCreatedAt:    ent.StudentTermReportCreatedAt,
		StudentTermReportUpdatedAt:    ent.StudentTermReportUpdatedAt,
	}
}

func FromModels(ents []model.StudentTermReportModel) []StudentTermReportResponseDTO {
	out := make([]StudentTermReportResponseDTO, 0, len(ents))
	for _, e := range ents {
		out = append(out, FromModel(e))
	}
	return out
}
