// file: internals/features/school/analytics/engine/scope.go
package engine

import "github.com/google/uuid"

/* ======================================================
   Index builders — lookup per id via map, bukan scan linear
====================================================== */

func studentIndex(students []Student) map[uuid.UUID]*Student {
	idx := make(map[uuid.UUID]*Student, len(students))
	for i := range students {
		idx[students[i].StudentID] = &students[i]
	}
	return idx
}

func classIndex(classes []AcademicClass) map[uuid.UUID]*AcademicClass {
	idx := make(map[uuid.UUID]*AcademicClass, len(classes))
	for i := range classes {
		idx[classes[i].ClassID] = &classes[i]
	}
	return idx
}

/* ======================================================
   Scope matcher
   Aturan: dimensi opsional hanya memfilter saat scope DAN kandidat
   sama-sama punya nilai. Entitas tanpa nilai tidak pernah tereliminasi
   oleh dimensi itu. Term selalu exact match.
====================================================== */

func matchOptionalID(want, have *uuid.UUID) bool {
	if want == nil || have == nil {
		return true
	}
	return *want == *have
}

func matchOptionalLabel(want, have *string) bool {
	if want == nil || have == nil {
		return true
	}
	return *want == *have
}

// matchesCampus: filter campus lewat campus_id siswa.
// Siswa nil tidak difilter di sini (caller yang memutuskan).
func (s Scope) matchesCampus(st *Student) bool {
	if st == nil {
		return true
	}
	return matchOptionalID(s.CampusID, st.CampusID)
}

// matchesClassDims: dimensi arm & session terhadap kelas ter-resolve.
// Kelas yang tidak ditemukan di index dianggap lolos (lookup defensif).
func (s Scope) matchesClassDims(cl *AcademicClass) bool {
	if cl == nil {
		return true
	}
	return matchOptionalLabel(s.ArmName, cl.Arm) &&
		matchOptionalLabel(s.SessionLabel, cl.SessionLabel)
}

// matchesClassScope: prediket class-scope untuk statistik & integritas:
// exact class id (bila scope memintanya) + dimensi arm/session.
func (s Scope) matchesClassScope(classID uuid.UUID, classes map[uuid.UUID]*AcademicClass) bool {
	if s.ClassID != nil && *s.ClassID != classID {
		return false
	}
	return s.matchesClassDims(classes[classID])
}
