// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/students/model"
)

// =======================
// Request DTO
// =======================

type StudentCreateDTO struct {
	StudentNameCache string     `json:"student_name_cache" validate:"required,min=2,max=80"`
	StudentCode      *string    `json:"student_code,omitempty" validate:"omitempty,max=50"`
	StudentCampusID  *uuid.UUID `json:"student_campus_id,omitempty"`
	// Terima hanya 5 opsi ini; kosong = active
	StudentStatus *string `json:"student_status,omitempty" validate:"omitempty,oneof=active withdrawn graduated expelled inactive"`
}

type StudentUpdateDTO struct {
	StudentNameCache *string    `json:"student_name_cache,omitempty" validate:"omitempty,min=2,max=80"`
	StudentCode      *string    `json:"student_code,omitempty" validate:"omitempty,max=50"`
	StudentCampusID  *uuid.UUID `json:"student_campus_id,omitempty"`
	StudentStatus    *string    `json:"student_status,omitempty" validate:"omitempty,oneof=active withdrawn graduated expelled inactive"`
}

// (opsional) filter list
type StudentFilterDTO struct {
	CampusID *string `query:"campus_id" validate:"omitempty,uuid4"`
	Status   *string `query:"status" validate:"omitempty,oneof=active withdrawn graduated expelled inactive"`
}

// =======================
// Response DTO
// =======================

type StudentResponseDTO struct {
	StudentID        uuid.UUID           `json:"student_id"`
	StudentSchoolID  uuid.UUID           `json:"student_school_id"`
	StudentCampusID  *uuid.UUID          `json:"student_campus_id,omitempty"`
	StudentCode      *string             `json:"student_code,omitempty"`
	StudentNameCache string              `json:"student_name_cache"`
	StudentStatus    model.StudentStatus `json:"student_status"`
	StudentCreatedAt time.Time           `json:"student_created_at"`
	StudentUpdatedAt time.Time           `json:"student_updated_at"`
}

// =======================
// Helpers
// =======================

func (p *StudentCreateDTO) Normalize() {
	p.StudentNameCache = strings.TrimSpace(p.StudentNameCache)
}

func (p *StudentCreateDTO) ToModel(schoolID uuid.UUID) model.StudentModel {
	status := model.StudentActive
	if p.StudentStatus != nil && *p.StudentStatus != "" {
		status = model.StudentStatus(*p.StudentStatus)
	}
	return model.StudentModel{
		StudentSchoolID:  schoolID,
		StudentCampusID:  p.StudentCampusID,
		StudentCode:      p.StudentCode,
		StudentNameCache: p.StudentNameCache,
		StudentStatus:    status,
	}
}

func (u *StudentUpdateDTO) ApplyUpdates(ent *model.StudentModel) {
	if u.StudentNameCache != nil {
		ent.StudentNameCache = strings.TrimSpace(*u.StudentNameCache)
	}
	if u.StudentCode != nil {
		ent.StudentCode = u.StudentCode
	}
	if u.StudentCampusID != nil {
		ent.StudentCampusID = u.StudentCampusID
	}
	if u.StudentStatus != nil && *u.StudentStatus != "" {
		ent.StudentStatus = model.StudentStatus(*u.StudentStatus)
	}
}

// Mapper entity -> response
func FromModel(ent model.StudentModel) StudentResponseDTO {
	return StudentResponseDTO{
		StudentID:        ent.StudentID,
		StudentSchoolID:  ent.StudentSchoolID,
		StudentCampusID:  ent.StudentCampusID,
		StudentCode:      ent.StudentCode,
		StudentNameCache: ent.StudentNameCache,
		StudentStatus:    ent.StudentStatus,
		StudentCreatedAt: ent.StudentCreatedAt,
		StudentUpdatedAt: ent.StudentUpdatedAt,
	}
}

func FromModels(ents []model.StudentModel) []StudentResponseDTO {
	out := make([]StudentResponseDTO, 0, len(ents))
	for _, e := range ents {
		out = append(out, FromModel(e))
	}
	return out
}
