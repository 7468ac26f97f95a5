// Package handler implements the HTTP handlers for the GanhosPro API.
// All handlers are methods on Server. Methods are split into
// resource-specific files (record.go, settings.go, etc.) but all share
// the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ganhospro/backend/internal/calc"
	"github.com/ganhospro/backend/internal/domain"
	"github.com/ganhospro/backend/internal/service"
)

// RecordServicer defines the business operations the record handlers
// depend on. Defining the interface here (in the consumer package)
// follows the Go convention: "accept interfaces, return concrete types".
// It lets handler tests inject a mock without touching the store or repo.
type RecordServicer interface {
	Save(ctx context.Context, rec domain.RunRecord) (service.SaveResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]domain.RunRecord, error)
	Compute(ctx context.Context, rec domain.RunRecord) (domain.CalculationResult, error)
}

// SettingsServicer defines the settings and cost-derivation operations.
type SettingsServicer interface {
	Get(ctx context.Context) (domain.AppSettings, error)
	Save(ctx context.Context, settings domain.AppSettings) error
	DeriveCostPerKm(ctx context.Context, in calc.CostInputs, adv *calc.AdvancedCosts) (float64, error)
}

// ReportServicer defines the report and export operations.
type ReportServicer interface {
	Summary(ctx context.Context, period domain.Period) ([]domain.PeriodBucket, error)
	Series(ctx context.Context, start, end time.Time, metric domain.Metric) ([]domain.MetricPoint, error)
	ExportRows(ctx context.Context) ([]domain.ExportRow, error)
}

// InsightServicer defines the AI analysis operation.
type InsightServicer interface {
	Analyze(ctx context.Context) (string, error)
}

// EntitlementManager defines read and write access to the premium flag.
type EntitlementManager interface {
	Premium(ctx context.Context) (bool, error)
	SetPremium(ctx context.Context, premium bool) error
}

// Server holds the dependencies for all API endpoints.
type Server struct {
	records     RecordServicer
	settings    SettingsServicer
	reports     ReportServicer
	insights    InsightServicer
	entitlement EntitlementManager
}

// NewServer constructs the Server with all its dependencies.
func NewServer(records RecordServicer, settings SettingsServicer, reports ReportServicer, insights InsightServicer, entitlement EntitlementManager) *Server {
	return &Server{
		records:     records,
		settings:    settings,
		reports:     reports,
		insights:    insights,
		entitlement: entitlement,
	}
}

// Routes registers every endpoint on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/healthz", s.GetHealth)

	r.Get("/records", s.ListRecords)
	r.Post("/records", s.SaveRecord)
	r.Delete("/records/{recordId}", s.DeleteRecord)

	r.Post("/calculations", s.Calculate)
	r.Post("/cost-per-km", s.DeriveCostPerKm)

	r.Get("/settings", s.GetSettings)
	r.Put("/settings", s.PutSettings)

	r.Get("/entitlement", s.GetEntitlement)
	r.Put("/entitlement", s.PutEntitlement)

	r.Get("/reports/summary", s.GetSummary)
	r.Get("/reports/series", s.GetSeries)
	r.Get("/export", s.GetExport)

	r.Post("/insights", s.PostInsights)
}
