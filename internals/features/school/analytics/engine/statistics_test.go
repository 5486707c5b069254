// file: internals/features/school/analytics/engine/statistics_test.go
package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAggregateResultStatistics_Basic(t *testing.T) {
	termID := uuid.New()
	classID := uuid.New()
	classes := []AcademicClass{{ClassID: classID}}

	passer := uuid.New()
	failer := uuid.New()
	noReport := uuid.New()
	students := []Student{{StudentID: passer}, {StudentID: failer}, {StudentID: noReport}}

	enrollments := []Enrollment{
		{StudentID: passer, ClassID: classID, TermID: termID},
		{StudentID: failer, ClassID: classID, TermID: termID},
		{StudentID: noReport, ClassID: classID, TermID: termID},
	}
	reports := []TermReport{
		{StudentID: passer, TermID: termID, ClassID: classID, AverageScore: fptr(80)},
		{StudentID: failer, TermID: termID, ClassID: classID, AverageScore: fptr(40)},
	}

	stats := AggregateResultStatistics(reports, enrollments, students, Scope{TermID: termID}, DefaultPassingScore, classes)

	assert.Equal(t, 3, stats.Enrolled)
	assert.Equal(t, 2, stats.WithResults)
	assert.InDelta(t, 60.0, stats.AverageScore, 1e-9)
	assert.Equal(t, 1, stats.PassCount)
	assert.InDelta(t, 50.0, stats.PassRate, 1e-9)
}

func TestAggregateResultStatistics_EmptyScope(t *testing.T) {
	stats := AggregateResultStatistics(nil, nil, nil, Scope{TermID: uuid.New()}, DefaultPassingScore, nil)

	assert.Equal(t, 0, stats.Enrolled)
	assert.Equal(t, 0, stats.WithResults)
	assert.Equal(t, 0.0, stats.AverageScore)
	assert.Equal(t, 0, stats.PassCount)
	assert.Equal(t, 0.0, stats.PassRate)
}

func TestAggregateResultStatistics_MissingScoreNeverPasses(t *testing.T) {
	termID := uuid.New()
	classID := uuid.New()
	studentID := uuid.New()

	students := []Student{{StudentID: studentID}}
	enrollments := []Enrollment{{StudentID: studentID, ClassID: classID, TermID: termID}}
	reports := []TermReport{{StudentID: studentID, TermID: termID, ClassID: classID}} // skor kosong → 0

	stats := AggregateResultStatistics(reports, enrollments, students, Scope{TermID: termID}, DefaultPassingScore, []AcademicClass{{ClassID: classID}})

	assert.Equal(t, 1, stats.WithResults)
	assert.Equal(t, 0, stats.PassCount)
	assert.Equal(t, 0.0, stats.AverageScore)
	assert.Equal(t, 0.0, stats.PassRate)
}

func TestAggregateResultStatistics_ExcludesInactive(t *testing.T) {
	termID := uuid.New()
	classID := uuid.New()

	active := uuid.New()
	graduated := uuid.New()
	students := []Student{
		{StudentID: active},
		{StudentID: graduated, Status: stptr(StudentStatusGraduated)},
	}
	enrollments := []Enrollment{
		{StudentID: active, ClassID: classID, TermID: termID},
		{StudentID: graduated, ClassID: classID, TermID: termID},
	}
	reports := []TermReport{
		{StudentID: active, TermID: termID, ClassID: classID, AverageScore: fptr(75)},
		{StudentID: graduated, TermID: termID, ClassID: classID, AverageScore: fptr(95)},
	}

	stats := AggregateResultStatistics(reports, enrollments, students, Scope{TermID: termID}, DefaultPassingScore, []AcademicClass{{ClassID: classID}})

	assert.Equal(t, 1, stats.Enrolled)
	assert.Equal(t, 1, stats.WithResults)
	assert.InDelta(t, 75.0, stats.AverageScore, 1e-9)
}

func TestAggregateResultStatistics_CampusFilter(t *testing.T) {
	termID := uuid.New()
	classID := uuid.New()
	campusA := uuid.New()
	campusB := uuid.New()

	inCampus := uuid.New()
	otherCampus := uuid.New()
	noCampus := uuid.New()
	students := []Student{
		{StudentID: inCampus, CampusID: uptr(campusA)},
		{StudentID: otherCampus, CampusID: uptr(campusB)},
		{StudentID: noCampus}, // tanpa campus → tetap ikut (aturan both-present)
	}
	enrollments := []Enrollment{
		{StudentID: inCampus, ClassID: classID, TermID: termID},
		{StudentID: otherCampus, ClassID: classID, TermID: termID},
		{StudentID: noCampus, ClassID: classID, TermID: termID},
	}

	stats := AggregateResultStatistics(nil, enrollments, students, Scope{TermID: termID, CampusID: uptr(campusA)}, DefaultPassingScore, []AcademicClass{{ClassID: classID}})

	assert.Equal(t, 2, stats.Enrolled) // inCampus + noCampus
}

func TestAggregateResultStatistics_DistinctStudentCounts(t *testing.T) {
	termID := uuid.New()
	classA := uuid.New()
	classB := uuid.New()
	studentID := uuid.New()

	students := []Student{{StudentID: studentID}}
	enrollments := []Enrollment{
		{StudentID: studentID, ClassID: classA, TermID: termID},
		{StudentID: studentID, ClassID: classB, TermID: termID},
	}
	reports := []TermReport{
		{StudentID: studentID, TermID: termID, ClassID: classA, AverageScore: fptr(60)},
		{StudentID: studentID, TermID: termID, ClassID: classB, AverageScore: fptr(70)},
	}
	classes := []AcademicClass{{ClassID: classA}, {ClassID: classB}}

	stats := AggregateResultStatistics(reports, enrollments, students, Scope{TermID: termID}, DefaultPassingScore, classes)

	// distinct per siswa, walau barisnya dua
	assert.Equal(t, 1, stats.Enrolled)
	assert.Equal(t, 1, stats.WithResults)
	// rata-rata tetap atas semua baris rapor ter-scope
	assert.InDelta(t, 65.0, stats.AverageScore, 1e-9)
}

func TestAggregateResultStatistics_SessionArmScope(t *testing.T) {
	termID := uuid.New()
	gold := uuid.New()
	silver := uuid.New()
	armless := uuid.New()
	classes := []AcademicClass{
		{ClassID: gold, Arm: sptr("Gold")},
		{ClassID: silver, Arm: sptr("Silver")},
		{ClassID: armless}, // tanpa arm → lolos filter arm
	}

	var students []Student
	var enrollments []Enrollment
	for _, cl := range []uuid.UUID{gold, silver, armless} {
		id := uuid.New()
		students = append(students, Student{StudentID: id})
		enrollments = append(enrollments, Enrollment{StudentID: id, ClassID: cl, TermID: termID})
	}

	stats := AggregateResultStatistics(nil, enrollments, students, Scope{TermID: termID, ArmName: sptr("Gold")}, DefaultPassingScore, classes)

	assert.Equal(t, 2, stats.Enrolled) // Gold + kelas tanpa arm
}
