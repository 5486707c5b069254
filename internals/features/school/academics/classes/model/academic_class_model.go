// file: internals/features/school/academics/classes/model/academic_class_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcademicClassModel: satu kelas (level + arm opsional) pada satu sesi
// akademik. Arm & session label nullable — dipakai engine analitik
// sebagai dimensi scope; kelas tanpa arm tetap ikut saat filter arm.
type AcademicClassModel struct {
	// PK & Tenant
	AcademicClassID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_class_id" json:"academic_class_id"`
	AcademicClassSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:academic_class_school_id" json:"academic_class_school_id"`

	// Identitas
	AcademicClassName  string  `gorm:"type:varchar(160);not null;column:academic_class_name" json:"academic_class_name"`
	AcademicClassLevel *string `gorm:"type:varchar(50);column:academic_class_level" json:"academic_class_level,omitempty"`

	// Dimensi analitik (opsional)
	// Example arm: "Gold" | "Silver"
	AcademicClassArm *string `gorm:"type:varchar(50);column:academic_class_arm" json:"academic_class_arm,omitempty"`
	// Example session_label: "2026/2027"
	AcademicClassSessionLabel *string `gorm:"type:varchar(20);column:academic_class_session_label" json:"academic_class_session_label,omitempty"`

	AcademicClassIsActive bool `gorm:"not null;default:true;column:academic_class_is_active" json:"academic_class_is_active"`

	// Audit & soft delete
	AcademicClassCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:academic_class_created_at" json:"academic_class_created_at"`
	AcademicClassUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:academic_class_updated_at" json:"academic_class_updated_at"`
	AcademicClassDeletedAt gorm.DeletedAt `gorm:"column:academic_class_deleted_at;index" json:"academic_class_deleted_at,omitempty"`
}

func (AcademicClassModel) TableName() string { return "academic_classes" }

func (m *AcademicClassModel) BeforeSave(tx *gorm.DB) error {
	m.AcademicClassName = strings.TrimSpace(m.AcademicClassName)

	normOpt := func(p **string) {
		if *p == nil {
			return
		}
		v := strings.TrimSpace(**p)
		if v == "" {
			*p = nil
		} else {
			*p = &v
		}
	}
	normOpt(&m.AcademicClassLevel)
	normOpt(&m.AcademicClassArm)
	normOpt(&m.AcademicClassSessionLabel)
	return nil
}
