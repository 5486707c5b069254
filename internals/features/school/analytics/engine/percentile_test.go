// file: internals/features/school/analytics/engine/percentile_test.go
package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPercentileCohort: n siswa aktif satu campus dengan skor menurun
// 100, 99, ... — indeks 0 adalah peringkat 1.
func buildPercentileCohort(n int, termID, classID uuid.UUID) ([]Student, []TermReport) {
	students := make([]Student, 0, n)
	reports := make([]TermReport, 0, n)
	for i := 0; i < n; i++ {
		id := uuid.New()
		students = append(students, Student{StudentID: id})
		reports = append(reports, TermReport{
			StudentID:    id,
			TermID:       termID,
			ClassID:      classID,
			AverageScore: fptr(float64(100 - i)),
		})
	}
	return students, reports
}

func TestCampusPercentile_Formula(t *testing.T) {
	termID := uuid.New()
	classID := uuid.New()
	classes := []AcademicClass{{ClassID: classID}}
	students, reports := buildPercentileCohort(10, termID, classID)

	// rank 1 dari 10 → 90, bukan 100 (kontrak rumus dipertahankan)
	p := CampusPercentile(reports[0], reports, Scope{TermID: termID}, students, classes)
	require.NotNil(t, p)
	assert.Equal(t, 90, *p)

	// peringkat terbawah → 0
	p = CampusPercentile(reports[9], reports, Scope{TermID: termID}, students, classes)
	require.NotNil(t, p)
	assert.Equal(t, 0, *p)

	// rank 5 dari 10 → 50
	p = CampusPercentile(reports[4], reports, Scope{TermID: termID}, students, classes)
	require.NotNil(t, p)
	assert.Equal(t, 50, *p)
}

func TestCampusPercentile_CohortOfOne(t *testing.T) {
	termID := uuid.New()
	classID := uuid.New()
	students, reports := buildPercentileCohort(1, termID, classID)

	p := CampusPercentile(reports[0], reports, Scope{TermID: termID}, students, []AcademicClass{{ClassID: classID}})
	require.NotNil(t, p)
	assert.Equal(t, 100, *p)
}

func TestCampusPercentile_EmptyCohort(t *testing.T) {
	termID := uuid.New()
	classID := uuid.New()
	students, reports := buildPercentileCohort(3, termID, classID)

	// term lain → kohort kosong → nil
	p := CampusPercentile(reports[0], reports, Scope{TermID: uuid.New()}, students, []AcademicClass{{ClassID: classID}})
	assert.Nil(t, p)
}

func TestCampusPercentile_StudentNotFound(t *testing.T) {
	termID := uuid.New()
	classID := uuid.New()
	students, reports := buildPercentileCohort(3, termID, classID)

	stranger := TermReport{StudentID: uuid.New(), TermID: termID, ClassID: classID, AverageScore: fptr(50)}
	p := CampusPercentile(stranger, reports, Scope{TermID: termID}, students, []AcademicClass{{ClassID: classID}})
	assert.Nil(t, p)
}

func TestCampusPercentile_RangeInvariant(t *testing.T) {
	termID := uuid.New()
	classID := uuid.New()
	classes := []AcademicClass{{ClassID: classID}}
	students, reports := buildPercentileCohort(7, termID, classID)

	for i := range reports {
		p := CampusPercentile(reports[i], reports, Scope{TermID: termID}, students, classes)
		require.NotNil(t, p)
		assert.GreaterOrEqual(t, *p, 0)
		assert.LessOrEqual(t, *p, 100)
	}
}

func TestCampusPercentile_NoClassRestriction(t *testing.T) {
	// persentil campus lintas kelas: scope.ClassID sengaja diabaikan
	termID := uuid.New()
	classA := uuid.New()
	classB := uuid.New()
	classes := []AcademicClass{{ClassID: classA}, {ClassID: classB}}

	sA := uuid.New()
	sB := uuid.New()
	students := []Student{{StudentID: sA}, {StudentID: sB}}
	reports := []TermReport{
		{StudentID: sA, TermID: termID, ClassID: classA, AverageScore: fptr(90)},
		{StudentID: sB, TermID: termID, ClassID: classB, AverageScore: fptr(80)},
	}

	p := CampusPercentile(reports[1], reports, Scope{TermID: termID, ClassID: uptr(classB)}, students, classes)
	require.NotNil(t, p)
	// kohort tetap 2 (kedua kelas ikut) → rank 2 dari 2 → 0
	assert.Equal(t, 0, *p)
}

func TestCampusPercentile_CampusFilter(t *testing.T) {
	termID := uuid.New()
	classID := uuid.New()
	campusA := uuid.New()
	campusB := uuid.New()

	sA := uuid.New()
	sB := uuid.New()
	students := []Student{
		{StudentID: sA, CampusID: uptr(campusA)},
		{StudentID: sB, CampusID: uptr(campusB)},
	}
	reports := []TermReport{
		{StudentID: sA, TermID: termID, ClassID: classID, AverageScore: fptr(70)},
		{StudentID: sB, TermID: termID, ClassID: classID, AverageScore: fptr(95)},
	}

	// dengan filter campus A, siswa B keluar → sA jadi satu-satunya → 100
	p := CampusPercentile(reports[0], reports, Scope{TermID: termID, CampusID: uptr(campusA)}, students, []AcademicClass{{ClassID: classID}})
	require.NotNil(t, p)
	assert.Equal(t, 100, *p)
}

func TestCampusPercentile_SessionFilter(t *testing.T) {
	termID := uuid.New()
	current := uuid.New()
	old := uuid.New()
	classes := []AcademicClass{
		{ClassID: current, SessionLabel: sptr("2026/2027")},
		{ClassID: old, SessionLabel: sptr("2025/2026")},
	}

	sA := uuid.New()
	sB := uuid.New()
	students := []Student{{StudentID: sA}, {StudentID: sB}}
	reports := []TermReport{
		{StudentID: sA, TermID: termID, ClassID: current, AverageScore: fptr(60)},
		{StudentID: sB, TermID: termID, ClassID: old, AverageScore: fptr(99)},
	}

	p := CampusPercentile(reports[0], reports, Scope{TermID: termID, SessionLabel: sptr("2026/2027")}, students, classes)
	require.NotNil(t, p)
	assert.Equal(t, 100, *p) // kelas sesi lama tersaring, kohort tinggal 1
}
