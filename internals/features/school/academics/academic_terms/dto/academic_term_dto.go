// file: internals/features/school/academics/academic_terms/dto/academic_term_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/academics/academic_terms/model"
)

// =======================
// Request DTO
// =======================

type AcademicTermCreateDTO struct {
	AcademicTermAcademicYear string    `json:"academic_term_academic_year" validate:"required,min=4"`
	AcademicTermName         string    `json:"academic_term_name"          validate:"required,min=2,max=50"`
	AcademicTermStartDate    time.Time `json:"academic_term_start_date"    validate:"required"`
	// gtefield agar sejalan dg DB CHECK (end >= start)
	AcademicTermEndDate time.Time `json:"academic_term_end_date" validate:"required,gtefield=AcademicTermStartDate"`
	// pointer: bedakan "tidak dikirim" vs "false"
	AcademicTermIsActive *bool `json:"academic_term_is_active,omitempty"`
}

type AcademicTermUpdateDTO struct {
	AcademicTermAcademicYear *string    `json:"academic_term_academic_year,omitempty" validate:"omitempty,min=4"`
	AcademicTermName         *string    `json:"academic_term_name,omitempty"          validate:"omitempty,min=2,max=50"`
	AcademicTermStartDate    *time.Time `json:"academic_term_start_date,omitempty"`
	AcademicTermEndDate      *time.Time `json:"academic_term_end_date,omitempty"`
	AcademicTermIsActive     *bool      `json:"academic_term_is_active,omitempty"`
}

// (opsional) filter list
type AcademicTermFilterDTO struct {
	Year   *string `query:"year"   validate:"omitempty,min=4"`
	Active *bool   `query:"active" validate:"omitempty"`
}

// =======================
// Response DTO
// =======================

type AcademicTermResponseDTO struct {
	AcademicTermID           uuid.UUID `json:"academic_term_id"`
	AcademicTermSchoolID     uuid.UUID `json:"academic_term_school_id"`
	AcademicTermAcademicYear string    `json:"academic_term_academic_year"`
	AcademicTermName         string    `json:"academic_term_name"`
	AcademicTermStartDate    time.Time `json:"academic_term_start_date"`
	AcademicTermEndDate      time.Time `json:"academic_term_end_date"`
	AcademicTermIsActive     bool      `json:"academic_term_is_active"`
	AcademicTermCreatedAt    time.Time `json:"academic_term_created_at"`
	AcademicTermUpdatedAt    time.Time `json:"academic_term_updated_at"`
}

// =======================
// Helpers
// =======================

func (p *AcademicTermCreateDTO) Normalize() {
	p.AcademicTermAcademicYear = strings.TrimSpace(p.AcademicTermAcademicYear)
	p.AcademicTermName = strings.TrimSpace(p.AcademicTermName)
}

func (p *AcademicTermCreateDTO) ToModel(schoolID uuid.UUID) model.AcademicTermModel {
	isActive := true
	if p.AcademicTermIsActive != nil {
		isActive = *p.AcademicTermIsActive // hormati input eksplisit
	}
	return model.AcademicTermModel{
		AcademicTermSchoolID:     schoolID,
		AcademicTermAcademicYear: p.AcademicTermAcademicYear,
		AcademicTermName:         p.AcademicTermName,
		AcademicTermStartDate:    p.AcademicTermStartDate,
		AcademicTermEndDate:      p.AcademicTermEndDate,
		AcademicTermIsActive:     isActive,
	}
}

func (u *AcademicTermUpdateDTO) ApplyUpdates(ent *model.AcademicTermModel) {
	if u.AcademicTermAcademicYear != nil {
		ent.AcademicTermAcademicYear = strings.TrimSpace(*u.AcademicTermAcademicYear)
	}
	if u.AcademicTermName != nil {
		ent.AcademicTermName = strings.TrimSpace(*u.AcademicTermName)
	}
	if u.AcademicTermStartDate != nil {
		ent.AcademicTermStartDate = *u.AcademicTermStartDate
	}
	if u.AcademicTermEndDate != nil {
		ent.AcademicTermEndDate = *u.AcademicTermEndDate
	}
	if u.AcademicTermIsActive != nil {
		ent.AcademicTermIsActive = *u.AcademicTermIsActive
	}
}

// Mapper entity -> response
func FromModel(ent model.AcademicTermModel) AcademicTermResponseDTO {
	return AcademicTermResponseDTO{
		AcademicTermID:           ent.AcademicTermID,
		AcademicTermSchoolID:     ent.AcademicTermSchoolID,
		AcademicTermAcademicYear: ent.AcademicTermAcademicYear,
		AcademicTermName:         ent.AcademicTermName,
		AcademicTermStartDate:    ent.AcademicTermStartDate,
		AcademicTermEndDate:      ent.AcademicTermEndDate,
		AcademicTermIsActive:     ent.AcademicTermIsActive,
		AcademicTermCreatedAt:    ent.AcademicTermCreatedAt,
		AcademicTermUpdatedAt:    ent.AcademicTermUpdatedAt,
	}
}

func FromModels(ents []model.AcademicTermModel) []AcademicTermResponseDTO {
	out := make([]AcademicTermResponseDTO, 0, len(ents))
	for _, e := range ents {
		out = append(out, FromModel(e))
	}
	return out
}
