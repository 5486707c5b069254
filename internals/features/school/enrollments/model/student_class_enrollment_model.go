// file: internals/features/school/enrollments/model/student_class_enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ======================================================
   Model: student_class_enrollments
   Satu baris = keanggotaan satu siswa di satu kelas pada
   satu term. Unik per (siswa, kelas, term).
====================================================== */

type StudentClassEnrollmentModel struct {
	// PK & Tenant
	StudentClassEnrollmentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_class_enrollment_id" json:"student_class_enrollment_id"`
	StudentClassEnrollmentSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:student_class_enrollment_school_id" json:"student_class_enrollment_school_id"`

	// Relasi tenant-safe
	StudentClassEnrollmentStudentID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_enrollment_student_class_term;column:student_class_enrollment_student_id" json:"student_class_enrollment_student_id"`
	StudentClassEnrollmentClassID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_enrollment_student_class_term;column:student_class_enrollment_class_id" json:"student_class_enrollment_class_id"`
	StudentClassEnrollmentTermID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_enrollment_student_class_term;column:student_class_enrollment_term_id" json:"student_class_enrollment_term_id"`

	// Jejak waktu proses
	StudentClassEnrollmentEnrolledAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_class_enrollment_enrolled_at" json:"student_class_enrollment_enrolled_at"`

	// Audit & soft delete
	StudentClassEnrollmentCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:student_class_enrollment_created_at" json:"student_class_enrollment_created_at"`
	StudentClassEnrollmentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:student_class_enrollment_updated_at" json:"student_class_enrollment_updated_at"`
	StudentClassEnrollmentDeletedAt gorm.DeletedAt `gorm:"column:student_class_enrollment_deleted_at;index" json:"student_class_enrollment_deleted_at,omitempty"`
}

func (StudentClassEnrollmentModel) TableName() string {
	return "student_class_enrollments"
}
