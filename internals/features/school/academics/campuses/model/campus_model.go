// file: internals/features/school/academics/campuses/model/campus_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CampusModel struct {
	// PK & Tenant
	CampusID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:campus_id" json:"campus_id"`
	CampusSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:campus_school_id" json:"campus_school_id"`

	// Identitas
	CampusName    string  `gorm:"type:varchar(120);not null;column:campus_name" json:"campus_name"`
	CampusSlug    *string `gorm:"type:varchar(120);column:campus_slug" json:"campus_slug,omitempty"`
	CampusAddress *string `gorm:"type:text;column:campus_address" json:"campus_address,omitempty"`

	CampusIsActive bool `gorm:"not null;default:true;column:campus_is_active" json:"campus_is_active"`

	// Audit & soft delete
	CampusCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:campus_created_at" json:"campus_created_at"`
	CampusUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:campus_updated_at" json:"campus_updated_at"`
	CampusDeletedAt gorm.DeletedAt `gorm:"column:campus_deleted_at;index" json:"campus_deleted_at,omitempty"`
}

func (CampusModel) TableName() string { return "campuses" }

func (m *CampusModel) BeforeSave(tx *gorm.DB) error {
	m.CampusName = strings.TrimSpace(m.CampusName)
	if m.CampusSlug != nil {
		s := strings.TrimSpace(*m.CampusSlug)
		if s == "" {
			m.CampusSlug = nil
		} else {
			m.CampusSlug = &s
		}
	}
	return nil
}
