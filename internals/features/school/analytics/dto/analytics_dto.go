// file: internals/features/school/analytics/dto/analytics_dto.go
package dto

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/analytics/engine"
)

// =======================
// Request DTO (query)
// =======================

// ScopeQueryDTO: parameter scope analitik dari query string.
// term_id wajib; dimensi lain opsional (absen = tidak memfilter).
type ScopeQueryDTO struct {
	TermID       string  `query:"term_id" validate:"required,uuid4"`
	ClassID      *string `query:"class_id" validate:"omitempty,uuid4"`
	CampusID     *string `query:"campus_id" validate:"omitempty,uuid4"`
	ArmName      *string `query:"arm" validate:"omitempty,max=50"`
	SessionLabel *string `query:"session_label" validate:"omitempty,max=20"`
}

func parseOptUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func normOptLabel(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func (q *ScopeQueryDTO) ToScope() (engine.Scope, error) {
	termID, err := uuid.Parse(q.TermID)
	if err != nil {
		return engine.Scope{}, err
	}
	classID, err := parseOptUUID(q.ClassID)
	if err != nil {
		return engine.Scope{}, err
	}
	campusID, err := parseOptUUID(q.CampusID)
	if err != nil {
		return engine.Scope{}, err
	}
	return engine.Scope{
		TermID:       termID,
		ClassID:      classID,
		CampusID:     campusID,
		ArmName:      normOptLabel(q.ArmName),
		SessionLabel: normOptLabel(q.SessionLabel),
	}, nil
}

// PercentileQueryDTO: scope + siswa target.
type PercentileQueryDTO struct {
	ScopeQueryDTO
	StudentID string `query:"student_id" validate:"required,uuid4"`
}

// StatisticsQueryDTO: scope + ambang lulus opsional (default 50).
type StatisticsQueryDTO struct {
	ScopeQueryDTO
	PassingScore *float64 `query:"passing_score" validate:"omitempty,gte=0,lte=100"`
}

// =======================
// Response DTO
// =======================

type ClassRankingResponseDTO struct {
	TermID  uuid.UUID                `json:"term_id"`
	Total   int                      `json:"total"`
	Entries []engine.CohortRankEntry `json:"entries"`
}

type StudentPercentileResponseDTO struct {
	StudentID  uuid.UUID `json:"student_id"`
	TermID     uuid.UUID `json:"term_id"`
	Percentile *int      `json:"percentile"` // null bila kohort kosong / siswa tak ditemukan
}

type IntegrityIssuesResponseDTO struct {
	TermID uuid.UUID               `json:"term_id"`
	Count  int                     `json:"count"`
	Issues []engine.IntegrityIssue `json:"issues"`
}
