// file: internals/features/school/reports/model/student_score_entry_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ======================================================
   Model: student_score_entries
   Nilai per mapel. Unik per (siswa, kelas, mapel, term).
====================================================== */

type StudentScoreEntryModel struct {
	// PK & Tenant
	StudentScoreEntryID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_score_entry_id" json:"student_score_entry_id"`
	StudentScoreEntrySchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:student_score_entry_school_id" json:"student_score_entry_school_id"`

	// Relasi
	StudentScoreEntryStudentID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_score_entry_student_class_subject_term;column:student_score_entry_student_id" json:"student_score_entry_student_id"`
	StudentScoreEntryClassID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_score_entry_student_class_subject_term;column:student_score_entry_class_id" json:"student_score_entry_class_id"`
	StudentScoreEntryTermID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_score_entry_student_class_subject_term;column:student_score_entry_term_id" json:"student_score_entry_term_id"`

	StudentScoreEntrySubjectName string `gorm:"type:varchar(120);not null;uniqueIndex:uq_score_entry_student_class_subject_term;column:student_score_entry_subject_name" json:"student_score_entry_subject_name"`

	// Nilai
	StudentScoreEntryScore       *float64 `gorm:"type:numeric(5,2);column:student_score_entry_score" json:"student_score_entry_score,omitempty"`
	StudentScoreEntryGradeLetter *string  `gorm:"type:varchar(4);column:student_score_entry_grade_letter" json:"student_score_entry_grade_letter,omitempty"`

	// Audit & soft delete
	StudentScoreEntryCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:student_score_entry_created_at" json:"student_score_entry_created_at"`
	StudentScoreEntryUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:student_score_entry_updated_at" json:"student_score_entry_updated_at"`
	StudentScoreEntryDeletedAt gorm.DeletedAt `gorm:"column:student_score_entry_deleted_at;index" json:"student_score_entry_deleted_at,omitempty"`
}

func (StudentScoreEntryModel) TableName() string { return "student_score_entries" }

func (m *StudentScoreEntryModel) BeforeSave(tx *gorm.DB) error {
	m.StudentScoreEntrySubjectName = strings.TrimSpace(m.StudentScoreEntrySubjectName)
	return nil
}
