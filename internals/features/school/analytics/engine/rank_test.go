// file: internals/features/school/analytics/engine/rank_test.go
package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(f float64) *float64                { return &f }
func sptr(s string) *string                  { return &s }
func uptr(u uuid.UUID) *uuid.UUID            { return &u }
func stptr(s StudentStatus) *StudentStatus   { return &s }

func TestDenseRank(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   []int
	}{
		{"urut menurun", []float64{95, 90, 85}, []int{1, 2, 3}},
		{"urutan acak diselaraskan", []float64{85, 95, 90}, []int{3, 1, 2}},
		{"tie berbagi rank tanpa lompatan", []float64{90, 90, 85}, []int{1, 1, 2}},
		{"semua sama", []float64{70, 70, 70}, []int{1, 1, 1}},
		{"tie di tengah", []float64{100, 80, 80, 60}, []int{1, 2, 2, 3}},
		{"satu item", []float64{42}, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DenseRank(tt.scores, func(f float64) float64 { return f })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDenseRank_Properties(t *testing.T) {
	scores := []float64{50, 75, 75, 100, 25, 50, 75}
	ranks := DenseRank(scores, func(f float64) float64 { return f })

	require.Len(t, ranks, len(scores))

	distinct := map[float64]struct{}{}
	maxRank := 0
	for i, r := range ranks {
		assert.GreaterOrEqual(t, r, 1)
		if r > maxRank {
			maxRank = r
		}
		distinct[scores[i]] = struct{}{}
	}
	// rank maksimum = jumlah nilai distinct
	assert.Equal(t, len(distinct), maxRank)
}

func TestDenseRank_Empty(t *testing.T) {
	assert.Empty(t, DenseRank(nil, func(f float64) float64 { return f }))
}

/* ======================================================
   Fixture: satu level, dua arm (Gold & Silver)
====================================================== */

type cohortFixture struct {
	termID   uuid.UUID
	goldID   uuid.UUID
	silverID uuid.UUID
	students []Student
	classes  []AcademicClass
	reports  []TermReport
	byScore  map[float64]uuid.UUID
}

func newCohortFixture() *cohortFixture {
	f := &cohortFixture{
		termID:   uuid.New(),
		goldID:   uuid.New(),
		silverID: uuid.New(),
		byScore:  map[float64]uuid.UUID{},
	}
	f.classes = []AcademicClass{
		{ClassID: f.goldID, Arm: sptr("Gold")},
		{ClassID: f.silverID, Arm: sptr("Silver")},
	}
	add := func(classID uuid.UUID, score float64) {
		id := uuid.New()
		f.students = append(f.students, Student{StudentID: id})
		f.reports = append(f.reports, TermReport{
			StudentID:    id,
			TermID:       f.termID,
			ClassID:      classID,
			AverageScore: fptr(score),
		})
		f.byScore[score] = id
	}
	add(f.goldID, 95)
	add(f.goldID, 85)
	add(f.goldID, 75)
	add(f.silverID, 90)
	add(f.silverID, 80)
	add(f.silverID, 70)
	return f
}

func rankOf(t *testing.T, entries []CohortRankEntry, studentID uuid.UUID) CohortRankEntry {
	t.Helper()
	for _, e := range entries {
		if e.StudentID == studentID {
			return e
		}
	}
	t.Fatalf("siswa %s tidak ada di hasil ranking", studentID)
	return CohortRankEntry{}
}

func TestRankCohort_LevelWide(t *testing.T) {
	f := newCohortFixture()

	entries := RankCohort(f.reports, Scope{TermID: f.termID}, f.students, f.classes)
	require.Len(t, entries, 6)

	wantRank := map[float64]int{95: 1, 90: 2, 85: 3, 80: 4, 75: 5, 70: 6}
	for score, want := range wantRank {
		e := rankOf(t, entries, f.byScore[score])
		assert.Equal(t, want, e.Rank, "score %v", score)
		assert.Equal(t, 6, e.Total)
	}
}

func TestRankCohort_SingleArm(t *testing.T) {
	f := newCohortFixture()

	entries := RankCohort(f.reports, Scope{TermID: f.termID, ClassID: uptr(f.goldID)}, f.students, f.classes)
	require.Len(t, entries, 3)

	wantRank := map[float64]int{95: 1, 85: 2, 75: 3}
	for score, want := range wantRank {
		e := rankOf(t, entries, f.byScore[score])
		assert.Equal(t, want, e.Rank)
		assert.Equal(t, 3, e.Total)
	}
	// tidak ada siswa Silver yang ikut
	for _, e := range entries {
		assert.NotEqual(t, f.byScore[90], e.StudentID)
		assert.NotEqual(t, f.byScore[80], e.StudentID)
		assert.NotEqual(t, f.byScore[70], e.StudentID)
	}
}

func TestRankCohort_ArmNameFilter(t *testing.T) {
	f := newCohortFixture()

	entries := RankCohort(f.reports, Scope{TermID: f.termID, ArmName: sptr("Silver")}, f.students, f.classes)
	require.Len(t, entries, 3)
	assert.Equal(t, 1, rankOf(t, entries, f.byScore[90]).Rank)
}

func TestRankCohort_TiesShareRank(t *testing.T) {
	termID := uuid.New()
	classID := uuid.New()
	classes := []AcademicClass{{ClassID: classID}}

	var students []Student
	var reports []TermReport
	for _, score := range []float64{90, 90, 85} {
		id := uuid.New()
		students = append(students, Student{StudentID: id})
		reports = append(reports, TermReport{StudentID: id, TermID: termID, ClassID: classID, AverageScore: fptr(score)})
	}

	entries := RankCohort(reports, Scope{TermID: termID}, students, classes)
	require.Len(t, entries, 3)

	ranks := []int{entries[0].Rank, entries[1].Rank, entries[2].Rank}
	assert.Equal(t, []int{1, 1, 2}, ranks)
	for _, e := range entries {
		assert.Equal(t, 3, e.Total)
	}
}

func TestRankCohort_ExcludesInactiveStudents(t *testing.T) {
	f := newCohortFixture()

	for _, status := range []StudentStatus{StudentStatusWithdrawn, StudentStatusGraduated, StudentStatusExpelled, StudentStatusInactive} {
		t.Run(string(status), func(t *testing.T) {
			students := make([]Student, len(f.students))
			copy(students, f.students)
			// siswa berskor 95 dibuat non-aktif
			for i := range students {
				if students[i].StudentID == f.byScore[95] {
					students[i].Status = stptr(status)
				}
			}

			entries := RankCohort(f.reports, Scope{TermID: f.termID}, students, f.classes)
			require.Len(t, entries, 5)
			for _, e := range entries {
				assert.NotEqual(t, f.byScore[95], e.StudentID)
				assert.Equal(t, 5, e.Total)
			}
			// peringkat teratas bergeser ke skor 90
			assert.Equal(t, 1, rankOf(t, entries, f.byScore[90]).Rank)
		})
	}
}

func TestRankCohort_EmptyScope(t *testing.T) {
	f := newCohortFixture()

	entries := RankCohort(f.reports, Scope{TermID: uuid.New()}, f.students, f.classes)
	assert.Empty(t, entries)
	assert.NotNil(t, entries)
}

func TestRankCohort_MissingScoreCountsAsZero(t *testing.T) {
	termID := uuid.New()
	classID := uuid.New()
	withScore := uuid.New()
	noScore := uuid.New()

	students := []Student{{StudentID: withScore}, {StudentID: noScore}}
	reports := []TermReport{
		{StudentID: withScore, TermID: termID, ClassID: classID, AverageScore: fptr(55)},
		{StudentID: noScore, TermID: termID, ClassID: classID}, // nilai kosong
	}

	entries := RankCohort(reports, Scope{TermID: termID}, students, []AcademicClass{{ClassID: classID}})
	require.Len(t, entries, 2)
	assert.Equal(t, 1, rankOf(t, entries, withScore).Rank)
	assert.Equal(t, 2, rankOf(t, entries, noScore).Rank)
	assert.Equal(t, 0.0, rankOf(t, entries, noScore).AverageScore)
}

func TestRankCohort_ClassWithoutArmStaysVisible(t *testing.T) {
	termID := uuid.New()
	armless := uuid.New()
	studentID := uuid.New()

	reports := []TermReport{{StudentID: studentID, TermID: termID, ClassID: armless, AverageScore: fptr(60)}}
	students := []Student{{StudentID: studentID}}
	classes := []AcademicClass{{ClassID: armless}} // tanpa arm

	// scope memfilter arm, tapi kelas tidak punya arm → tetap ikut
	entries := RankCohort(reports, Scope{TermID: termID, ArmName: sptr("Gold")}, students, classes)
	require.Len(t, entries, 1)
	assert.Equal(t, studentID, entries[0].StudentID)
}
