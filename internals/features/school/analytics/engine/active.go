// file: internals/features/school/analytics/engine/active.go
package engine

import "github.com/google/uuid"

// Status terminal: siswa dengan status ini tidak pernah masuk kohort.
var terminalStatuses = map[StudentStatus]struct{}{
	StudentStatusWithdrawn: {},
	StudentStatusGraduated: {},
	StudentStatusExpelled:  {},
	StudentStatusInactive:  {},
}

// IsActiveStudent: siswa nil → false; status nil/kosong default active.
func IsActiveStudent(st *Student) bool {
	if st == nil {
		return false
	}
	if st.Status == nil || *st.Status == "" {
		return true
	}
	_, terminal := terminalStatuses[*st.Status]
	return !terminal
}

// activeStudentIDs: himpunan id siswa aktif, dipersempit campus bila
// scope menetapkannya.
func activeStudentIDs(students []Student, scope Scope) map[uuid.UUID]struct{} {
	ids := make(map[uuid.UUID]struct{}, len(students))
	for i := range students {
		st := &students[i]
		if !IsActiveStudent(st) {
			continue
		}
		if !scope.matchesCampus(st) {
			continue
		}
		ids[st.StudentID] = struct{}{}
	}
	return ids
}
