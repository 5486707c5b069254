// file: internals/features/school/analytics/engine/statistics.go
package engine

import "github.com/google/uuid"

// DefaultPassingScore: ambang lulus standar rapor.
const DefaultPassingScore = 50.0

// AggregateResultStatistics menghitung agregat enrolmen & hasil untuk
// satu scope: jumlah siswa terdaftar, jumlah yang punya rapor, rata-rata
// nilai, dan tingkat kelulusan terhadap passingScore. Skor yang tidak
// terisi dihitung 0 (tidak pernah lulus). Tanpa rapor ter-scope semua
// rata-rata/rate bernilai 0.
func AggregateResultStatistics(reports []TermReport, enrollments []Enrollment, students []Student, scope Scope, passingScore float64, classes []AcademicClass) ResultStatistics {
	clIdx := classIndex(classes)
	activeIDs := activeStudentIDs(students, scope)

	enrolled := make(map[uuid.UUID]struct{})
	for _, e := range enrollments {
		if e.TermID != scope.TermID {
			continue
		}
		if !scope.matchesClassScope(e.ClassID, clIdx) {
			continue
		}
		if _, ok := activeIDs[e.StudentID]; !ok {
			continue
		}
		enrolled[e.StudentID] = struct{}{}
	}

	withResults := make(map[uuid.UUID]struct{})
	scoped := make([]TermReport, 0, len(reports))
	for _, r := range reports {
		if r.TermID != scope.TermID {
			continue
		}
		if !scope.matchesClassScope(r.ClassID, clIdx) {
			continue
		}
		if _, ok := activeIDs[r.StudentID]; !ok {
			continue
		}
		scoped = append(scoped, r)
		withResults[r.StudentID] = struct{}{}
	}

	stats := ResultStatistics{
		Enrolled:    len(enrolled),
		WithResults: len(withResults),
	}
	if len(scoped) == 0 {
		return stats
	}

	sum := 0.0
	for i := range scoped {
		score := scoreOrZero(&scoped[i])
		sum += score
		if score >= passingScore {
			stats.PassCount++
		}
	}
	stats.AverageScore = sum / float64(len(scoped))
	stats.PassRate = float64(stats.PassCount) / float64(len(scoped)) * 100
	return stats
}
