// file: internals/features/school/analytics/engine/types.go
//
// Package engine berisi kalkulasi murni untuk analitik hasil akademik:
// ranking kohort, persentil campus, statistik agregat, dan pemeriksaan
// integritas data. Semua fungsi sinkron, bebas side-effect, dan bekerja
// di atas snapshot koleksi yang sudah dimuat oleh pemanggil (controller).
// Engine tidak menyentuh DB dan tidak menegakkan multitenancy — itu
// tanggung jawab layer di atasnya.
package engine

import "github.com/google/uuid"

/* ======================================================
   ENUM: status siswa
====================================================== */

type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "active"
	StudentStatusWithdrawn StudentStatus = "withdrawn"
	StudentStatusGraduated StudentStatus = "graduated"
	StudentStatusExpelled  StudentStatus = "expelled"
	StudentStatusInactive  StudentStatus = "inactive"
)

/* ======================================================
   Snapshot types (input engine, bukan model GORM)
====================================================== */

// Student: snapshot siswa. Status nil → dianggap active.
type Student struct {
	StudentID uuid.UUID
	Status    *StudentStatus
	CampusID  *uuid.UUID
}

// AcademicClass: snapshot kelas. Arm & SessionLabel opsional;
// kelas tanpa arm tetap ikut saat scope memfilter arm.
type AcademicClass struct {
	ClassID      uuid.UUID
	Arm          *string
	SessionLabel *string
}

// TermReport: rapor per (siswa, term, kelas). AverageScore nil → 0.
type TermReport struct {
	StudentID    uuid.UUID
	TermID       uuid.UUID
	ClassID      uuid.UUID
	AverageScore *float64
}

// Enrollment: keanggotaan siswa di kelas pada suatu term.
type Enrollment struct {
	StudentID uuid.UUID
	ClassID   uuid.UUID
	TermID    uuid.UUID
}

// ScoreEntry: entri nilai per mapel.
type ScoreEntry struct {
	StudentID   uuid.UUID
	ClassID     uuid.UUID
	SubjectName string
	TermID      uuid.UUID
}

/* ======================================================
   Scope
====================================================== */

// Scope membatasi sebuah query analitik. TermID wajib; dimensi lain
// opsional — nil berarti dimensi itu tidak memfilter sama sekali.
type Scope struct {
	TermID       uuid.UUID
	ClassID      *uuid.UUID
	CampusID     *uuid.UUID
	ArmName      *string
	SessionLabel *string
}

/* ======================================================
   Output types
====================================================== */

// CohortRankEntry: satu baris hasil ranking. Total = ukuran kohort
// terfilter pada panggilan itu (sama untuk semua anggota).
type CohortRankEntry struct {
	StudentID    uuid.UUID `json:"student_id"`
	AverageScore float64   `json:"average_score"`
	Rank         int       `json:"rank"`
	Total        int       `json:"total"`
}

// ResultStatistics: agregat enrolmen & hasil untuk satu scope.
type ResultStatistics struct {
	Enrolled     int     `json:"enrolled"`
	WithResults  int     `json:"with_results"`
	AverageScore float64 `json:"average_score"`
	PassCount    int     `json:"pass_count"`
	PassRate     float64 `json:"pass_rate"`
}

type IssueType string

const (
	IssueMissingAssignment IssueType = "missing-assignment"
	IssueOrphanResult      IssueType = "orphan-result"
	IssueDuplicateResult   IssueType = "duplicate-result"
)

// IntegrityIssue: satu temuan pemeriksaan konsistensi antar-koleksi.
type IntegrityIssue struct {
	Type    IssueType `json:"type"`
	Message string    `json:"message"`
}

func scoreOrZero(r *TermReport) float64 {
	if r.AverageScore == nil {
		return 0
	}
	return *r.AverageScore
}
