// file: internals/features/school/analytics/controller/analytics_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolku_backend/internals/features/school/analytics/dto"
	"schoolku_backend/internals/features/school/analytics/engine"
	service "schoolku_backend/internals/features/school/analytics/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* ============================================
   Controller
============================================ */

type AnalyticsController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAnalyticsController(db *gorm.DB, v *validator.Validate) *AnalyticsController {
	if v == nil {
		v = validator.New()
	}
	return &AnalyticsController{DB: db, Validator: v}
}

/* ============================================
   RESP/ERR helpers
============================================ */

func httpErr(c *fiber.Ctx, code int, msg string) error {
	return helper.JsonError(c, code, msg)
}

func parseQueryAndValidate[T any](c *fiber.Ctx, v *validator.Validate, dst *T) error {
	if err := c.QueryParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	if v != nil {
		if err := v.Struct(dst); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
	}
	return nil
}

func (ctl *AnalyticsController) scopeFromQuery(c *fiber.Ctx, q *dto.ScopeQueryDTO) (uuid.UUID, engine.Scope, error) {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return uuid.Nil, engine.Scope{}, err
	}
	scope, err := q.ToScope()
	if err != nil {
		return uuid.Nil, engine.Scope{}, fiber.NewError(fiber.StatusBadRequest, "Scope tidak valid")
	}
	return schoolID, scope, nil
}

/* ============================================
   GET /:school_id/analytics/rankings
   Ranking kohort satu term; tanpa class_id/arm
   ranking lintas level (semua arm digabung).
============================================ */

func (ctl *AnalyticsController) ClassRankings(c *fiber.Ctx) error {
	var q dto.ScopeQueryDTO
	if err := parseQueryAndValidate(c, ctl.Validator, &q); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	schoolID, scope, err := ctl.scopeFromQuery(c, &q)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	snap, err := service.LoadAnalyticsSnapshot(c.UserContext(), ctl.DB, schoolID, scope.TermID)
	if err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal memuat data analitik")
	}

	entries := engine.RankCohort(snap.Reports, scope, snap.Students, snap.Classes)
	return helper.JsonOK(c, "Ranking kohort berhasil dihitung", dto.ClassRankingResponseDTO{
		TermID:  scope.TermID,
		Total:   len(entries),
		Entries: entries,
	})
}

/* ============================================
   GET /:school_id/analytics/percentile
   Persentil campus satu siswa (lintas kelas).
============================================ */

func (ctl *AnalyticsController) StudentPercentile(c *fiber.Ctx) error {
	var q dto.PercentileQueryDTO
	if err := parseQueryAndValidate(c, ctl.Validator, &q); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	schoolID, scope, err := ctl.scopeFromQuery(c, &q.ScopeQueryDTO)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	studentID, err := uuid.Parse(q.StudentID)
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "student_id tidak valid")
	}

	snap, err := service.LoadAnalyticsSnapshot(c.UserContext(), ctl.DB, schoolID, scope.TermID)
	if err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal memuat data analitik")
	}

	// cari rapor milik siswa target pada term ini
	var target *engine.TermReport
	for i := range snap.Reports {
		if snap.Reports[i].StudentID == studentID {
			target = &snap.Reports[i]
			break
		}
	}

	resp := dto.StudentPercentileResponseDTO{StudentID: studentID, TermID: scope.TermID}
	if target != nil {
		resp.Percentile = engine.CampusPercentile(*target, snap.Reports, scope, snap.Students, snap.Classes)
	}
	return helper.JsonOK(c, "Persentil berhasil dihitung", resp)
}

/* ============================================
   GET /:school_id/analytics/statistics
   Agregat enrolmen/hasil + pass rate satu scope.
============================================ */

func (ctl *AnalyticsController) ResultStatistics(c *fiber.Ctx) error {
	var q dto.StatisticsQueryDTO
	if err := parseQueryAndValidate(c, ctl.Validator, &q); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	schoolID, scope, err := ctl.scopeFromQuery(c, &q.ScopeQueryDTO)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	passingScore := engine.DefaultPassingScore
	if q.PassingScore != nil {
		passingScore = *q.PassingScore
	}

	snap, err := service.LoadAnalyticsSnapshot(c.UserContext(), ctl.DB, schoolID, scope.TermID)
	if err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal memuat data analitik")
	}

	stats := engine.AggregateResultStatistics(snap.Reports, snap.Enrollments, snap.Students, scope, passingScore, snap.Classes)
	return helper.JsonOK(c, "Statistik berhasil dihitung", stats)
}

/* ============================================
   GET /:school_id/analytics/integrity
   Diagnostik konsistensi antar-koleksi.
============================================ */

func (ctl *AnalyticsController) IntegrityIssues(c *fiber.Ctx) error {
	var q dto.ScopeQueryDTO
	if err := parseQueryAndValidate(c, ctl.Validator, &q); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	schoolID, scope, err := ctl.scopeFromQuery(c, &q)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	snap, err := service.LoadAnalyticsSnapshot(c.UserContext(), ctl.DB, schoolID, scope.TermID)
	if err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal memuat data analitik")
	}

	issues := engine.FindIntegrityIssues(snap.Reports, snap.Enrollments, snap.Students, snap.ScoreEntries, scope, snap.Classes)
	return helper.JsonOK(c, "Pemeriksaan integritas selesai", dto.IntegrityIssuesResponseDTO{
		TermID: scope.TermID,
		Count:  len(issues),
		Issues: issues,
	})
}
