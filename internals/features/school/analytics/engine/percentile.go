// file: internals/features/school/analytics/engine/percentile.go
package engine

import (
	"math"
	"sort"
)

// CampusPercentile menghitung posisi persentil satu siswa terhadap
// kohort se-campus pada term yang sama: filter term + siswa aktif +
// campus + session, TANPA batasan kelas/arm (persentil lintas level).
// Kohort kosong atau siswa tidak ditemukan → nil.
//
// Rumus: round(((count - rank) / count) * 100). Siswa peringkat
// terbawah mendapat 0; kohort berukuran 1 mendapat 100; untuk kohort
// lebih besar peringkat teratas tidak pernah tepat 100 (rank=1 dari
// count=10 → 90). Itu kontrak yang dipertahankan, bukan bug.
func CampusPercentile(report TermReport, allReports []TermReport, scope Scope, students []Student, classes []AcademicClass) *int {
	stIdx := studentIndex(students)
	clIdx := classIndex(classes)

	cohort := make([]TermReport, 0, len(allReports))
	for _, r := range allReports {
		if r.TermID != scope.TermID {
			continue
		}
		st, ok := stIdx[r.StudentID]
		if !ok || !IsActiveStudent(st) {
			continue
		}
		if !scope.matchesCampus(st) {
			continue
		}
		if cl := clIdx[r.ClassID]; cl != nil && !matchOptionalLabel(scope.SessionLabel, cl.SessionLabel) {
			continue
		}
		cohort = append(cohort, r)
	}
	if len(cohort) == 0 {
		return nil
	}

	sort.SliceStable(cohort, func(a, b int) bool {
		return scoreOrZero(&cohort[a]) > scoreOrZero(&cohort[b])
	})

	rank := 0
	for i := range cohort {
		if cohort[i].StudentID == report.StudentID {
			rank = i + 1
			break
		}
	}
	if rank == 0 {
		return nil
	}

	p := int(math.Round(float64(len(cohort)-rank) / float64(len(cohort)) * 100))
	return &p
}
