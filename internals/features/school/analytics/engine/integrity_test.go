// file: internals/features/school/analytics/engine/integrity_test.go
package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issuesOfType(issues []IntegrityIssue, typ IssueType) []IntegrityIssue {
	var out []IntegrityIssue
	for _, is := range issues {
		if is.Type == typ {
			out = append(out, is)
		}
	}
	return out
}

func TestFindIntegrityIssues_CleanData(t *testing.T) {
	termID := uuid.New()
	classID := uuid.New()
	studentID := uuid.New()

	issues := FindIntegrityIssues(
		[]TermReport{{StudentID: studentID, TermID: termID, ClassID: classID, AverageScore: fptr(70)}},
		[]Enrollment{{StudentID: studentID, ClassID: classID, TermID: termID}},
		[]Student{{StudentID: studentID}},
		[]ScoreEntry{{StudentID: studentID, ClassID: classID, SubjectName: "Matematika", TermID: termID}},
		Scope{TermID: termID},
		[]AcademicClass{{ClassID: classID}},
	)
	assert.Empty(t, issues)
}

func TestFindIntegrityIssues_MissingAssignment(t *testing.T) {
	termID := uuid.New()
	classID := uuid.New()
	campusID := uuid.New()

	enrolled := uuid.New()
	unassigned := uuid.New()
	students := []Student{
		{StudentID: enrolled, CampusID: uptr(campusID)},
		{StudentID: unassigned, CampusID: uptr(campusID)},
	}
	enrollments := []Enrollment{{StudentID: enrolled, ClassID: classID, TermID: termID}}

	issues := FindIntegrityIssues(nil, enrollments, students, nil,
		Scope{TermID: termID, CampusID: uptr(campusID)},
		[]AcademicClass{{ClassID: classID}},
	)

	missing := issuesOfType(issues, IssueMissingAssignment)
	require.Len(t, missing, 1)
	assert.Contains(t, missing[0].Message, unassigned.String())
}

func TestFindIntegrityIssues_MissingAssignmentSkipsInactive(t *testing.T) {
	termID := uuid.New()
	withdrawn := uuid.New()
	students := []Student{{StudentID: withdrawn, Status: stptr(StudentStatusWithdrawn)}}

	issues := FindIntegrityIssues(nil, nil, students, nil, Scope{TermID: termID}, nil)
	assert.Empty(t, issuesOfType(issues, IssueMissingAssignment))
}

// Skenario: lima siswa aktif dari tiga campus, semua terdaftar dan punya
// rapor di kelas/term yang sama; scope dikunci ke satu campus. Tidak
// boleh ada orphan-result — validitas enrolmen tidak mengenal campus.
func TestFindIntegrityIssues_OrphanIgnoresCampusScope(t *testing.T) {
	termID := uuid.New()
	classID := uuid.New()
	campuses := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	var students []Student
	var enrollments []Enrollment
	var reports []TermReport
	for i := 0; i < 5; i++ {
		id := uuid.New()
		students = append(students, Student{StudentID: id, CampusID: uptr(campuses[i%3])})
		enrollments = append(enrollments, Enrollment{StudentID: id, ClassID: classID, TermID: termID})
		reports = append(reports, TermReport{StudentID: id, TermID: termID, ClassID: classID, AverageScore: fptr(float64(60 + i))})
	}

	issues := FindIntegrityIssues(reports, enrollments, students, nil,
		Scope{TermID: termID, CampusID: uptr(campuses[0])},
		[]AcademicClass{{ClassID: classID}},
	)

	assert.Empty(t, issuesOfType(issues, IssueOrphanResult))
}

func TestFindIntegrityIssues_OrphanResult(t *testing.T) {
	termID := uuid.New()
	classID := uuid.New()
	orphan := uuid.New()

	issues := FindIntegrityIssues(
		[]TermReport{{StudentID: orphan, TermID: termID, ClassID: classID, AverageScore: fptr(50)}},
		nil, // tidak ada enrolmen sama sekali
		[]Student{{StudentID: orphan}},
		nil,
		Scope{TermID: termID},
		[]AcademicClass{{ClassID: classID}},
	)

	orphans := issuesOfType(issues, IssueOrphanResult)
	require.Len(t, orphans, 1)
	assert.Contains(t, orphans[0].Message, orphan.String())
}

// Skenario: dua baris rapor berbagi (siswa, term, kelas) → tepat satu
// temuan duplicate-result yang menyebut siswanya, bukan satu per baris.
func TestFindIntegrityIssues_DuplicateReportOnePerKey(t *testing.T) {
	termID := uuid.New()
	classID := uuid.New()
	studentID := uuid.New()

	reports := []TermReport{
		{StudentID: studentID, TermID: termID, ClassID: classID, AverageScore: fptr(80)},
		{StudentID: studentID, TermID: termID, ClassID: classID, AverageScore: fptr(80)},
	}
	issues := FindIntegrityIssues(reports,
		[]Enrollment{{StudentID: studentID, ClassID: classID, TermID: termID}},
		[]Student{{StudentID: studentID}},
		nil,
		Scope{TermID: termID},
		[]AcademicClass{{ClassID: classID}},
	)

	dups := issuesOfType(issues, IssueDuplicateResult)
	require.Len(t, dups, 1)
	assert.Contains(t, dups[0].Message, studentID.String())
}

func TestFindIntegrityIssues_TripleRowStillOneIssue(t *testing.T) {
	termID := uuid.New()
	classID := uuid.New()
	studentID := uuid.New()

	var reports []TermReport
	for i := 0; i < 3; i++ {
		reports = append(reports, TermReport{StudentID: studentID, TermID: termID, ClassID: classID, AverageScore: fptr(80)})
	}
	issues := FindIntegrityIssues(reports,
		[]Enrollment{{StudentID: studentID, ClassID: classID, TermID: termID}},
		[]Student{{StudentID: studentID}},
		nil,
		Scope{TermID: termID},
		[]AcademicClass{{ClassID: classID}},
	)

	assert.Len(t, issuesOfType(issues, IssueDuplicateResult), 1)
}

func TestFindIntegrityIssues_DuplicateScoreEntries(t *testing.T) {
	termID := uuid.New()
	classID := uuid.New()
	studentID := uuid.New()

	scores := []ScoreEntry{
		{StudentID: studentID, ClassID: classID, SubjectName: "Bahasa Indonesia", TermID: termID},
		{StudentID: studentID, ClassID: classID, SubjectName: "Bahasa Indonesia", TermID: termID},
		{StudentID: studentID, ClassID: classID, SubjectName: "Matematika", TermID: termID}, // bukan duplikat
	}
	issues := FindIntegrityIssues(nil,
		[]Enrollment{{StudentID: studentID, ClassID: classID, TermID: termID}},
		[]Student{{StudentID: studentID}},
		scores,
		Scope{TermID: termID},
		[]AcademicClass{{ClassID: classID}},
	)

	dups := issuesOfType(issues, IssueDuplicateResult)
	require.Len(t, dups, 1)
	assert.Contains(t, dups[0].Message, "Bahasa Indonesia")
}

func TestFindIntegrityIssues_ClassScopeFilters(t *testing.T) {
	termID := uuid.New()
	scoped := uuid.New()
	other := uuid.New()
	orphanStudent := uuid.New()

	// rapor orphan di kelas lain tidak ikut saat scope mengunci kelas
	reports := []TermReport{
		{StudentID: orphanStudent, TermID: termID, ClassID: other, AverageScore: fptr(40)},
	}
	issues := FindIntegrityIssues(reports, nil,
		[]Student{{StudentID: orphanStudent}},
		nil,
		Scope{TermID: termID, ClassID: uptr(scoped)},
		[]AcademicClass{{ClassID: scoped}, {ClassID: other}},
	)

	assert.Empty(t, issuesOfType(issues, IssueOrphanResult))
}

func TestFindIntegrityIssues_TermMismatchIgnored(t *testing.T) {
	termID := uuid.New()
	otherTerm := uuid.New()
	classID := uuid.New()
	studentID := uuid.New()

	// duplikat di term lain tidak dilaporkan
	reports := []TermReport{
		{StudentID: studentID, TermID: otherTerm, ClassID: classID},
		{StudentID: studentID, TermID: otherTerm, ClassID: classID},
	}
	issues := FindIntegrityIssues(reports,
		[]Enrollment{{StudentID: studentID, ClassID: classID, TermID: termID}},
		[]Student{{StudentID: studentID}},
		nil,
		Scope{TermID: termID},
		[]AcademicClass{{ClassID: classID}},
	)

	assert.Empty(t, issuesOfType(issues, IssueDuplicateResult))
	assert.Empty(t, issuesOfType(issues, IssueOrphanResult))
}

func TestIsActiveStudent(t *testing.T) {
	tests := []struct {
		name string
		st   *Student
		want bool
	}{
		{"nil siswa", nil, false},
		{"status nil → active", &Student{StudentID: uuid.New()}, true},
		{"status kosong → active", &Student{Status: stptr("")}, true},
		{"explicit active", &Student{Status: stptr(StudentStatusActive)}, true},
		{"withdrawn", &Student{Status: stptr(StudentStatusWithdrawn)}, false},
		{"graduated", &Student{Status: stptr(StudentStatusGraduated)}, false},
		{"expelled", &Student{Status: stptr(StudentStatusExpelled)}, false},
		{"inactive", &Student{Status: stptr(StudentStatusInactive)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsActiveStudent(tt.st))
		})
	}
}
