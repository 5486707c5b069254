// file: internals/features/school/analytics/service/analytics_snapshot.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "schoolku_backend/internals/features/school/academics/classes/model"
	"schoolku_backend/internals/features/school/analytics/engine"
	enrollModel "schoolku_backend/internals/features/school/enrollments/model"
	reportModel "schoolku_backend/internals/features/school/reports/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
)

// AnalyticsSnapshot: empat koleksi entitas (plus kelas) yang dimuat
// sekali per request lalu diumpankan ke engine. Engine tidak pernah
// menyentuh DB — semua fetch terjadi di sini, sudah ter-scope tenant.
type AnalyticsSnapshot struct {
	Students     []engine.Student
	Classes      []engine.AcademicClass
	Reports      []engine.TermReport
	Enrollments  []engine.Enrollment
	ScoreEntries []engine.ScoreEntry
}

// LoadAnalyticsSnapshot memuat snapshot satu sekolah untuk satu term.
// Siswa & kelas dimuat utuh (dipakai lintas kelas utk persentil);
// rapor/enrolmen/nilai cukup pada term yang diminta.
func LoadAnalyticsSnapshot(ctx context.Context, db *gorm.DB, schoolID, termID uuid.UUID) (*AnalyticsSnapshot, error) {
	snap := &AnalyticsSnapshot{}

	var students []studentModel.StudentModel
	if err := db.WithContext(ctx).
		Where("student_school_id = ?", schoolID).
		Find(&students).Error; err != nil {
		return nil, err
	}
	snap.Students = make([]engine.Student, 0, len(students))
	for i := range students {
		status := engine.StudentStatus(students[i].StudentStatus)
		snap.Students = append(snap.Students, engine.Student{
			StudentID: students[i].StudentID,
			Status:    &status,
			CampusID:  students[i].StudentCampusID,
		})
	}

	var classes []classModel.AcademicClassModel
	if err := db.WithContext(ctx).
		Where("academic_class_school_id = ?", schoolID).
		Find(&classes).Error; err != nil {
		return nil, err
	}
	snap.Classes = make([]engine.AcademicClass, 0, len(classes))
	for i := range classes {
		snap.Classes = append(snap.Classes, engine.AcademicClass{
			ClassID:      classes[i].AcademicClassID,
			Arm:          classes[i].AcademicClassArm,
			SessionLabel: classes[i].AcademicClassSessionLabel,
		})
	}

	var reports []reportModel.StudentTermReportModel
	if err := db.WithContext(ctx).
		Where("student_term_report_school_id = ? AND student_term_report_term_id = ?", schoolID, termID).
		Find(&reports).Error; err != nil {
		return nil, err
	}
	snap.Reports = make([]engine.TermReport, 0, len(reports))
	for i := range reports {
		snap.Reports = append(snap.Reports, engine.TermReport{
			StudentID:    reports[i].StudentTermReportStudentID,
			TermID:       reports[i].StudentTermReportTermID,
			ClassID:      reports[i].StudentTermReportClassID,
			AverageScore: reports[i].StudentTermReportAverageScore,
		})
	}

	var enrollments []enrollModel.StudentClassEnrollmentModel
	if err := db.WithContext(ctx).
		Where("student_class_enrollment_school_id = ? AND student_class_enrollment_term_id = ?", schoolID, termID).
		Find(&enrollments).Error; err != nil {
		return nil, err
	}
	snap.Enrollments = make([]engine.Enrollment, 0, len(enrollments))
	for i := range enrollments {
		snap.Enrollments = append(snap.Enrollments, engine.Enrollment{
			StudentID: enrollments[i].StudentClassEnrollmentStudentID,
			ClassID:   enrollments[i].StudentClassEnrollmentClassID,
			TermID:    enrollments[i].StudentClassEnrollmentTermID,
		})
	}

	var scores []reportModel.StudentScoreEntryModel
	if err := db.WithContext(ctx).
		Where("student_score_entry_school_id = ? AND student_score_entry_term_id = ?", schoolID, termID).
		Find(&scores).Error; err != nil {
		return nil, err
	}
	snap.ScoreEntries = make([]engine.ScoreEntry, 0, len(scores))
	for i := range scores {
		snap.ScoreEntries = append(snap.ScoreEntries, engine.ScoreEntry{
			StudentID:   scores[i].StudentScoreEntryStudentID,
			ClassID:     scores[i].StudentScoreEntryClassID,
			SubjectName: scores[i].StudentScoreEntrySubjectName,
			TermID:      scores[i].StudentScoreEntryTermID,
		})
	}

	return snap, nil
}
