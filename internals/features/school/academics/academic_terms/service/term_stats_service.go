// file: internals/features/school/academics/academic_terms/service/term_stats_service.go
package service

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	termModel "schoolku_backend/internals/features/school/academics/academic_terms/model"
	enrollmentModel "schoolku_backend/internals/features/school/enrollments/model"
	reportModel "schoolku_backend/internals/features/school/reports/model"
)

/* =========================================================
   Term stats cache (JSONB academic_term_stats)
   Diisi ulang setiap ada mutasi rapor/enrolmen supaya
   dashboard tidak perlu agregasi berulang.
========================================================= */

type TermStats struct {
	EnrollmentCount int64     `json:"enrollment_count"`
	ReportCount     int64     `json:"report_count"`
	RefreshedAt     time.Time `json:"refreshed_at"`
}

// RefreshTermStats menghitung ulang agregat ringan satu term lalu
// menulisnya ke kolom JSONB. Best-effort: error dikembalikan ke
// caller untuk sekadar di-log, bukan menggagalkan request utama.
func RefreshTermStats(ctx context.Context, db *gorm.DB, schoolID, termID uuid.UUID) error {
	var stats TermStats

	if err := db.WithContext(ctx).Model(&enrollmentModel.StudentClassEnrollmentModel{}).
		Where("student_class_enrollment_school_id = ? AND student_class_enrollment_term_id = ?", schoolID, termID).
		Count(&stats.EnrollmentCount).Error; err != nil {
		return err
	}
	if err := db.WithContext(ctx).Model(&reportModel.StudentTermReportModel{}).
		Where("student_term_report_school_id = ? AND student_term_report_term_id = ?", schoolID, termID).
		Count(&stats.ReportCount).Error; err != nil {
		return err
	}
	stats.RefreshedAt = time.Now()

	raw, err := sonic.Marshal(stats)
	if err != nil {
		return err
	}

	return db.WithContext(ctx).Model(&termModel.AcademicTermModel{}).
		Where("academic_term_school_id = ? AND academic_term_id = ?", schoolID, termID).
		Update("academic_term_stats", datatypes.JSON(raw)).Error
}
