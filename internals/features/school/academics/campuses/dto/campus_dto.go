// file: internals/features/school/academics/campuses/dto/campus_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/academics/campuses/model"
)

// =======================
// Request DTO
// =======================

type CampusCreateDTO struct {
	CampusName    string  `json:"campus_name" validate:"required,min=2,max=120"`
	CampusSlug    *string `json:"campus_slug,omitempty" validate:"omitempty,max=120"`
	CampusAddress *string `json:"campus_address,omitempty"`
	// pointer: bedakan "tidak dikirim" vs "false"
	CampusIsActive *bool `json:"campus_is_active,omitempty"`
}

type CampusUpdateDTO struct {
	CampusName     *string `json:"campus_name,omitempty" validate:"omitempty,min=2,max=120"`
	CampusSlug     *string `json:"campus_slug,omitempty" validate:"omitempty,max=120"`
	CampusAddress  *string `json:"campus_address,omitempty"`
	CampusIsActive *bool   `json:"campus_is_active,omitempty"`
}

// =======================
// Response DTO
// =======================

type CampusResponseDTO struct {
	CampusID       uuid.UUID `json:"campus_id"`
	CampusSchoolID uuid.UUID `json:"campus_school_id"`
	CampusName     string    `json:"campus_name"`
	CampusSlug     *string   `json:"campus_slug,omitempty"`
	CampusAddress  *string   `json:"campus_address,omitempty"`
	CampusIsActive bool      `json:"campus_is_active"`
	CampusCreatedAt time.Time `json:"campus_created_at"`
	CampusUpdatedAt time.Time `json:"campus_updated_at"`
}

// =======================
// Helpers
// =======================

func (p *CampusCreateDTO) Normalize() {
	p.CampusName = strings.TrimSpace(p.CampusName)
}

func (p *CampusCreateDTO) ToModel(schoolID uuid.UUID) model.CampusModel {
	isActive := true
	if p.CampusIsActive != nil {
		isActive = *p.CampusIsActive
	}
	return model.CampusModel{
		CampusSchoolID: schoolID,
		CampusName:     p.CampusName,
		CampusSlug:     p.CampusSlug,
		CampusAddress:  p.CampusAddress,
		CampusIsActive: isActive,
	}
}

func (u *CampusUpdateDTO) ApplyUpdates(ent *model.CampusModel) {
	if u.CampusName != nil {
		ent.CampusName = strings.TrimSpace(*u.CampusName)
	}
	if u.CampusSlug != nil {
		ent.CampusSlug = u.CampusSlug
	}
	if u.CampusAddress != nil {
		ent.CampusAddress = u.CampusAddress
	}
	if u.CampusIsActive != nil {
		ent.CampusIsActive = *u.CampusIsActive
	}
}

// Mapper entity -> response
func FromModel(ent model.CampusModel) CampusResponseDTO {
	return CampusResponseDTO{
		CampusID:        ent.CampusID,
		CampusSchoolID:  ent.CampusSchoolID,
		CampusName:      ent.CampusName,
		CampusSlug:      ent.CampusSlug,
		CampusAddress:   ent.CampusAddress,
		CampusIsActive:  ent.CampusIsActive,
		CampusCreatedAt: ent.CampusCreatedAt,
		CampusUpdatedAt: ent.CampusUpdatedAt,
	}
}

func FromModels(ents []model.CampusModel) []CampusResponseDTO {
	out := make([]CampusResponseDTO, 0, len(ents))
	for _, e := range ents {
		out = append(out, FromModel(e))
	}
	return out
}
