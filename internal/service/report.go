package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ganhospro/backend/internal/calc"
	"github.com/ganhospro/backend/internal/domain"
	"github.com/ganhospro/backend/internal/repo"
	"github.com/ganhospro/backend/internal/store"
)

// ReportService assembles historical views over the record collection:
// period summaries, metric series and the flat export table. Every view
// recomputes derived values at the current cost-per-km rate, so reports
// always reflect the driver's latest settings.
type ReportService struct {
	store *store.RecordStore
	state repo.StateRepo
}

// NewReportService constructs a ReportService over the given collaborators.
func NewReportService(s *store.RecordStore, state repo.StateRepo) *ReportService {
	return &ReportService{store: s, state: state}
}

// Summary buckets all records at the given period granularity.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ReportService) Summary(ctx context.Context, period domain.Period) ([]domain.PeriodBucket, error) {
	settings, err := s.state.LoadSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ReportService.Summary: %w", err)
	}
	buckets, err := calc.Aggregate(s.store.Records(), period, settings.CostPerKm)
	if err != nil {
		return nil, err
	}
	if buckets == nil {
		buckets = []domain.PeriodBucket{}
	}
	return buckets, nil
}

// Series returns the (date, value) series for one metric over an
// inclusive date range.
func (s *ReportService) Series(ctx context.Context, start, end time.Time, metric domain.Metric) ([]domain.MetricPoint, error) {
	settings, err := s.state.LoadSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ReportService.Series: %w", err)
	}
	return calc.Filter(s.store.Records(), start, end, metric, settings.CostPerKm)
}

// ExportRows returns one row per record, ascending by date, with net
// profit recomputed at the current rate.
func (s *ReportService) ExportRows(ctx context.Context) ([]domain.ExportRow, error) {
	settings, err := s.state.LoadSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ReportService.ExportRows: %w", err)
	}

	records := s.store.Records()
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	rows := make([]domain.ExportRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, domain.ExportRow{
			Date:            domain.Day(r.Date).Format("2006-01-02"),
			TotalEarnings:   r.TotalEarnings,
			KmDriven:        r.KmDriven,
			HoursWorked:     r.HoursOrZero(),
			AdditionalCosts: r.CostsOrZero(),
			NetProfit:       r.TotalEarnings - r.CostsOrZero() - r.KmDriven*settings.CostPerKm,
		})
	}
	return rows, nil
}
