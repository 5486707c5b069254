// file: internals/features/school/reports/model/student_term_report_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* ======================================================
   Model: student_term_reports
   Rapor ringkas satu siswa untuk satu (term, kelas).
   Unik per (siswa, term, kelas) — duplikat adalah temuan
   integritas, bukan hal yang dikoreksi diam-diam.
====================================================== */

type StudentTermReportModel struct {
	// PK & Tenant
	StudentTermReportID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_term_report_id" json:"student_term_report_id"`
	StudentTermReportSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:student_term_report_school_id" json:"student_term_report_school_id"`

	// Relasi
	StudentTermReportStudentID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_term_report_student_term_class;column:student_term_report_student_id" json:"student_term_report_student_id"`
	StudentTermReportTermID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_term_report_student_term_class;column:student_term_report_term_id" json:"student_term_report_term_id"`
	StudentTermReportClassID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_term_report_student_term_class;column:student_term_report_class_id" json:"student_term_report_class_id"`

	// Nilai (nullable — rapor bisa dibuat sebelum nilai final)
	StudentTermReportAverageScore *float64 `gorm:"type:numeric(5,2);column:student_term_report_average_score" json:"student_term_report_average_score,omitempty"`
	StudentTermReportTotalScore   *float64 `gorm:"type:numeric(7,2);column:student_term_report_total_score" json:"student_term_report_total_score,omitempty"`
	StudentTermReportSubjectCount int      `gorm:"type:integer;not null;default:0;column:student_term_report_subject_count" json:"student_term_report_subject_count"`

	// Cache daftar mapel yang masuk rata-rata
	StudentTermReportSubjectsCache pq.StringArray `gorm:"type:text[];column:student_term_report_subjects_cache" json:"student_term_report_subjects_cache,omitempty"`

	// Audit & soft delete
	StudentTermReportCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:student_term_report_created_at" json:"student_term_report_created_at"`
	StudentTermReportUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:student_term_report_updated_at" json:"student_term_report_updated_at"`
	StudentTermReportDeletedAt gorm.DeletedAt `gorm:"column:student_term_report_deleted_at;index" json:"student_term_report_deleted_at,omitempty"`
}

func (StudentTermReportModel) TableName() string { return "student_term_reports" }
