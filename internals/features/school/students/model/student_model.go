// file: internals/features/school/students/model/student_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ======================================================
   ENUM: student_status
====================================================== */

type StudentStatus string

const (
	StudentActive    StudentStatus = "active"
	StudentWithdrawn StudentStatus = "withdrawn"
	StudentGraduated StudentStatus = "graduated"
	StudentExpelled  StudentStatus = "expelled"
	StudentInactive  StudentStatus = "inactive"
)

func validStudentStatus(s StudentStatus) bool {
	switch s {
	case StudentActive, StudentWithdrawn, StudentGraduated, StudentExpelled, StudentInactive:
		return true
	}
	return false
}

/* ======================================================
   Model: students
====================================================== */

type StudentModel struct {
	// PK & Tenant
	StudentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:student_school_id" json:"student_school_id"`

	// Campus (opsional — sekolah multi-campus)
	StudentCampusID *uuid.UUID `gorm:"type:uuid;index;column:student_campus_id" json:"student_campus_id,omitempty"`

	// Identitas
	StudentCode      *string `gorm:"type:varchar(50);column:student_code" json:"student_code,omitempty"`
	StudentNameCache string  `gorm:"type:varchar(80);column:student_name_cache" json:"student_name_cache"`

	// Status (CHECK: active|withdrawn|graduated|expelled|inactive)
	StudentStatus StudentStatus `gorm:"column:student_status;type:text;not null;default:'active'" json:"student_status"`

	// Audit & soft delete
	StudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentStatus == "" {
		m.StudentStatus = StudentActive
	}
	// Validasi status
	if !validStudentStatus(m.StudentStatus) {
		return errors.New("invalid student_status")
	}
	m.StudentNameCache = strings.TrimSpace(m.StudentNameCache)
	return nil
}

func (m *StudentModel) BeforeUpdate(tx *gorm.DB) error {
	// Validasi status
	if m.StudentStatus != "" && !validStudentStatus(m.StudentStatus) {
		return errors.New("invalid student_status")
	}
	return nil
}
