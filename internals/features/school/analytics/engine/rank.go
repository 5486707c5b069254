// file: internals/features/school/analytics/engine/rank.go
package engine

import "sort"

/* ======================================================
   Dense rank generik
====================================================== */

// DenseRank meranking items menurun berdasarkan scoreOf. Nilai sama
// berbagi rank, dan rank berikutnya = rank tie + 1 (tanpa lompatan).
// Hasil diselaraskan ke urutan asli caller lewat index yang ditangkap
// sebelum sort — bukan dengan mencari ulang nilai yang sama, supaya
// item berskor duplikat tidak pernah salah pasang.
func DenseRank[T any](items []T, scoreOf func(T) float64) []int {
	if len(items) == 0 {
		return nil
	}

	type scored struct {
		index int
		score float64
	}
	order := make([]scored, len(items))
	for i, it := range items {
		order[i] = scored{index: i, score: scoreOf(it)}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return order[a].score > order[b].score
	})

	ranks := make([]int, len(items))
	rank := 0
	prev := 0.0
	for i, s := range order {
		if i == 0 || s.score != prev {
			rank++
			prev = s.score
		}
		ranks[s.index] = rank
	}
	return ranks
}

/* ======================================================
   Ranking kohort
====================================================== */

// RankCohort meranking rapor dalam satu scope: term (wajib), kelas
// exact bila diminta, siswa aktif saja, lalu campus/arm/session sesuai
// aturan scope matcher. Tanpa ClassID/ArmName ranking berjalan lintas
// satu level (semua arm digabung); dengan keduanya ranking per kelas.
// Kohort kosong → slice kosong.
func RankCohort(reports []TermReport, scope Scope, students []Student, classes []AcademicClass) []CohortRankEntry {
	stIdx := studentIndex(students)
	clIdx := classIndex(classes)

	cohort := make([]TermReport, 0, len(reports))
	for _, r := range reports {
		if r.TermID != scope.TermID {
			continue
		}
		if scope.ClassID != nil && *scope.ClassID != r.ClassID {
			continue
		}
		st, ok := stIdx[r.StudentID]
		if !ok || !IsActiveStudent(st) {
			continue
		}
		if !scope.matchesCampus(st) {
			continue
		}
		if !scope.matchesClassDims(clIdx[r.ClassID]) {
			continue
		}
		cohort = append(cohort, r)
	}
	if len(cohort) == 0 {
		return []CohortRankEntry{}
	}

	ranks := DenseRank(cohort, func(r TermReport) float64 { return scoreOrZero(&r) })

	out := make([]CohortRankEntry, len(cohort))
	for i := range cohort {
		out[i] = CohortRankEntry{
			StudentID:    cohort[i].StudentID,
			AverageScore: scoreOrZero(&cohort[i]),
			Rank:         ranks[i],
			Total:        len(cohort),
		}
	}
	return out
}
