// file: internals/features/school/academics/classes/dto/academic_class_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/academics/classes/model"
)

// =======================
// Request DTO
// =======================

type AcademicClassCreateDTO struct {
	AcademicClassName  string  `json:"academic_class_name" validate:"required,min=2,max=160"`
	AcademicClassLevel *string `json:"academic_class_level,omitempty" validate:"omitempty,max=50"`
	// arm & session kosong = kelas tidak punya dimensi itu (tetap ikut
	// saat analitik memfilter arm/sesi)
	AcademicClassArm          *string `json:"academic_class_arm,omitempty" validate:"omitempty,max=50"`
	AcademicClassSessionLabel *string `json:"academic_class_session_label,omitempty" validate:"omitempty,max=20"`
	AcademicClassIsActive     *bool   `json:"academic_class_is_active,omitempty"`
}

type AcademicClassUpdateDTO struct {
	AcademicClassName         *string `json:"academic_class_name,omitempty" validate:"omitempty,min=2,max=160"`
	AcademicClassLevel        *string `json:"academic_class_level,omitempty" validate:"omitempty,max=50"`
	AcademicClassArm          *string `json:"academic_class_arm,omitempty" validate:"omitempty,max=50"`
	AcademicClassSessionLabel *string `json:"academic_class_session_label,omitempty" validate:"omitempty,max=20"`
	AcademicClassIsActive     *bool   `json:"academic_class_is_active,omitempty"`
}

// (opsional) filter list
type AcademicClassFilterDTO struct {
	Arm          *string `query:"arm" validate:"omitempty,max=50"`
	SessionLabel *string `query:"session_label" validate:"omitempty,max=20"`
	Active       *bool   `query:"active" validate:"omitempty"`
}

// =======================
// Response DTO
// =======================

type AcademicClassResponseDTO struct {
	AcademicClassID           uuid.UUID `json:"academic_class_id"`
	AcademicClassSchoolID     uuid.UUID `json:"academic_class_school_id"`
	AcademicClassName         string    `json:"academic_class_name"`
	AcademicClassLevel        *string   `json:"academic_class_level,omitempty"`
	AcademicClassArm          *string   `json:"academic_class_arm,omitempty"`
	AcademicClassSessionLabel *string   `json:"academic_class_session_label,omitempty"`
	AcademicClassIsActive     bool      `json:"academic_class_is_active"`
	AcademicClassCreatedAt    time.Time `json:"academic_class_created_at"`
	AcademicClassUpdatedAt    time.Time `json:"academic_class_updated_at"`
}

// =======================
// Helpers
// =======================

func (p *AcademicClassCreateDTO) Normalize() {
	p.AcademicClassName = strings.TrimSpace(p.AcademicClassName)
}

func (p *AcademicClassCreateDTO) ToModel(schoolID uuid.UUID) model.AcademicClassModel {
	isActive := true
	if p.AcademicClassIsActive != nil {
		isActive = *p.AcademicClassIsActive
	}
	return model.AcademicClassModel{
		AcademicClassSchoolID:     schoolID,
		AcademicClassName:         p.AcademicClassName,
		AcademicClassLevel:        p.AcademicClassLevel,
		AcademicClassArm:          p.AcademicClassArm,
		AcademicClassSessionLabel: p.AcademicClassSessionLabel,
		AcademicClassIsActive:     isActive,
	}
}

func (u *AcademicClassUpdateDTO) ApplyUpdates(ent *model.AcademicClassModel) {
	if u.AcademicClassName != nil {
		ent.AcademicClassName = strings.TrimSpace(*u.AcademicClassName)
	}
	if u.AcademicClassLevel != nil {
		ent.AcademicClassLevel = u.AcademicClassLevel
	}
	if u.AcademicClassArm != nil {
		ent.AcademicClassArm = u.AcademicClassArm
	}
	if u.AcademicClassSessionLabel != nil {
		ent.AcademicClassSessionLabel = u.AcademicClassSessionLabel
	}
	if u.AcademicClassIsActive != nil {
		ent.AcademicClassIsActive = *u.AcademicClassIsActive
	}
}

// Mapper entity -> response
func FromModel(ent model.AcademicClassModel) AcademicClassResponseDTO {
	return AcademicClassResponseDTO{
		AcademicClassID:           ent.AcademicClassID,
		AcademicClassSchoolID:     ent.AcademicClassSchoolID,
		AcademicClassName:         ent.AcademicClassName,
		AcademicClassLevel:        ent.AcademicClassLevel,
		AcademicClassArm:          ent.AcademicClassArm,
		AcademicClassSessionLabel: ent.AcademicClassSessionLabel,
		AcademicClassIsActive:     ent.AcademicClassIsActive,
		AcademicClassCreatedAt:    ent.AcademicClassCreatedAt,
		AcademicClassUpdatedAt:    ent.AcademicClassUpdatedAt,
	}
}

func FromModels(ents []model.AcademicClassModel) []AcademicClassResponseDTO {
	out := make([]AcademicClassResponseDTO, 0, len(ents))
	for _, e := range ents {
		out = append(out, FromModel(e))
	}
	return out
}
