// file: internals/features/school/analytics/engine/integrity.go
package engine

import (
	"fmt"

	"github.com/google/uuid"
)

/* ======================================================
   Kunci komposit untuk deteksi duplikat (struct, bukan
   string gabungan — bebas masalah delimiter)
====================================================== */

type reportKey struct {
	studentID uuid.UUID
	termID    uuid.UUID
	classID   uuid.UUID
}

type scoreKey struct {
	studentID   uuid.UUID
	classID     uuid.UUID
	subjectName string
	termID      uuid.UUID
}

// FindIntegrityIssues memeriksa konsistensi antar empat koleksi:
//   - missing-assignment: siswa aktif (dipersempit campus bila diminta)
//     tanpa enrolmen pada term/kelas ter-scope.
//   - orphan-result: rapor ter-scope yang siswanya tidak punya enrolmen
//     pada kelas+term itu. Validitas enrolmen adalah properti kelas+term,
//     jadi keanggotaan untuk cek ini TIDAK dipersempit campus — siswa
//     campus lain yang terdaftar benar tidak pernah dianggap orphan.
//   - duplicate-result: lebih dari satu rapor per (siswa, term, kelas)
//     atau lebih dari satu entri nilai per (siswa, kelas, mapel, term);
//     satu temuan per kunci, bukan per baris.
//
// Urutan keluaran deterministik (first-seen), tapi bukan kontrak.
func FindIntegrityIssues(reports []TermReport, enrollments []Enrollment, students []Student, scoreEntries []ScoreEntry, scope Scope, classes []AcademicClass) []IntegrityIssue {
	clIdx := classIndex(classes)

	activeStudents := make([]*Student, 0, len(students))
	activeIDs := make(map[uuid.UUID]struct{}, len(students))
	for i := range students {
		st := &students[i]
		if !IsActiveStudent(st) {
			continue
		}
		if !scope.matchesCampus(st) {
			continue
		}
		activeStudents = append(activeStudents, st)
		activeIDs[st.StudentID] = struct{}{}
	}

	// Dua himpunan keanggotaan enrolmen:
	// enrolledScoped (siswa aktif in-scope) → cek missing-assignment;
	// enrolledAll (tanpa filter siswa) → cek orphan-result.
	enrolledScoped := make(map[uuid.UUID]struct{})
	enrolledAll := make(map[uuid.UUID]struct{})
	for _, e := range enrollments {
		if e.TermID != scope.TermID {
			continue
		}
		if !scope.matchesClassScope(e.ClassID, clIdx) {
			continue
		}
		enrolledAll[e.StudentID] = struct{}{}
		if _, ok := activeIDs[e.StudentID]; ok {
			enrolledScoped[e.StudentID] = struct{}{}
		}
	}

	issues := []IntegrityIssue{}

	for _, st := range activeStudents {
		if _, ok := enrolledScoped[st.StudentID]; !ok {
			issues = append(issues, IntegrityIssue{
				Type:    IssueMissingAssignment,
				Message: fmt.Sprintf("siswa %s belum punya enrolmen kelas pada term %s", st.StudentID, scope.TermID),
			})
		}
	}

	// Rapor ter-scope kelas+term, TANPA pra-filter siswa aktif/enrolmen.
	scopedReports := make([]TermReport, 0, len(reports))
	for _, r := range reports {
		if r.TermID != scope.TermID {
			continue
		}
		if !scope.matchesClassScope(r.ClassID, clIdx) {
			continue
		}
		scopedReports = append(scopedReports, r)
	}

	for i := range scopedReports {
		r := &scopedReports[i]
		if _, ok := enrolledAll[r.StudentID]; !ok {
			issues = append(issues, IntegrityIssue{
				Type:    IssueOrphanResult,
				Message: fmt.Sprintf("rapor siswa %s tidak punya enrolmen valid (kelas %s, term %s)", r.StudentID, r.ClassID, r.TermID),
			})
		}
	}

	// Duplikat rapor per kunci komposit; order slice menjaga determinisme.
	reportCounts := make(map[reportKey]int, len(scopedReports))
	reportOrder := make([]reportKey, 0, len(scopedReports))
	for i := range scopedReports {
		r := &scopedReports[i]
		k := reportKey{studentID: r.StudentID, termID: r.TermID, classID: r.ClassID}
		if _, seen := reportCounts[k]; !seen {
			reportOrder = append(reportOrder, k)
		}
		reportCounts[k]++
	}
	for _, k := range reportOrder {
		if reportCounts[k] > 1 {
			issues = append(issues, IntegrityIssue{
				Type:    IssueDuplicateResult,
				Message: fmt.Sprintf("rapor duplikat untuk siswa %s (kelas %s, term %s)", k.studentID, k.classID, k.termID),
			})
		}
	}

	// Duplikat entri nilai per mapel.
	scoreCounts := make(map[scoreKey]int, len(scoreEntries))
	scoreOrder := make([]scoreKey, 0, len(scoreEntries))
	for i := range scoreEntries {
		se := &scoreEntries[i]
		if se.TermID != scope.TermID {
			continue
		}
		if !scope.matchesClassScope(se.ClassID, clIdx) {
			continue
		}
		k := scoreKey{studentID: se.StudentID, classID: se.ClassID, subjectName: se.SubjectName, termID: se.TermID}
		if _, seen := scoreCounts[k]; !seen {
			scoreOrder = append(scoreOrder, k)
		}
		scoreCounts[k]++
	}
	for _, k := range scoreOrder {
		if scoreCounts[k] > 1 {
			issues = append(issues, IntegrityIssue{
				Type:    IssueDuplicateResult,
				Message: fmt.Sprintf("entri nilai duplikat untuk siswa %s (kelas %s, mapel %q, term %s)", k.studentID, k.classID, k.subjectName, k.termID),
			})
		}
	}

	return issues
}
