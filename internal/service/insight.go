package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ganhospro/backend/internal/domain"
	"github.com/ganhospro/backend/internal/metrics"
	"github.com/ganhospro/backend/internal/store"
)

// MinInsightRecords is how many saved records an analysis needs before
// the digest carries enough signal to be worth a generation call.
const MinInsightRecords = 5

// Summarizer is the text-generation collaborator. It receives a fully
// formatted textual digest and returns opaque prose; implementations wrap
// transport and auth failures in domain.ErrService.
type Summarizer interface {
	Summarize(ctx context.Context, digest string) (string, error)
}

// InsightService produces the AI performance analysis for the premium
// screen. The core never hands the collaborator structured data — only
// the formatted digest — and consumes back free text unchanged.
type InsightService struct {
	store      *store.RecordStore
	summarizer Summarizer
}

// NewInsightService constructs an InsightService over the given collaborators.
func NewInsightService(s *store.RecordStore, summarizer Summarizer) *InsightService {
	return &InsightService{store: s, summarizer: summarizer}
}

// Analyze formats the record history into a digest and asks the
// summarizer for an analysis. The store is never mutated; a failed or
// abandoned call leaves all state untouched and is safe to retry.
func (s *InsightService) Analyze(ctx context.Context) (string, error) {
	records := s.store.Records()
	if len(records) < MinInsightRecords {
		return "", fmt.Errorf("%w: at least %d records are required for an analysis", domain.ErrValidation, MinInsightRecords)
	}

	text, err := s.summarizer.Summarize(ctx, Digest(records))
	if err != nil {
		metrics.InsightRequests.WithLabelValues("error").Inc()
		return "", fmt.Errorf("service.InsightService.Analyze: %w", err)
	}
	metrics.InsightRequests.WithLabelValues("ok").Inc()
	return text, nil
}

// Digest renders records as one line per day, ascending by date:
//
//	Data: 2025-06-02, Ganhos: R$310.50, KM: 180, Horas: 8.0
//
// Absent hours render as "N/A".
func Digest(records []domain.RunRecord) string {
	sorted := make([]domain.RunRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	lines := make([]string, 0, len(sorted))
	for _, r := range sorted {
		hours := "N/A"
		if r.HoursWorked != nil {
			hours = fmt.Sprintf("%.1f", *r.HoursWorked)
		}
		lines = append(lines, fmt.Sprintf("Data: %s, Ganhos: R$%.2f, KM: %g, Horas: %s",
			domain.Day(r.Date).Format("2006-01-02"), r.TotalEarnings, r.KmDriven, hours))
	}
	return strings.Join(lines, "\n")
}
