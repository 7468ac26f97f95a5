package calc

import (
	"fmt"
	"sort"
	"time"

	"github.com/ganhospro/backend/internal/domain"
)

// Filter selects the records whose date falls inside [start, end]
// (inclusive on both ends, compared at day granularity) and maps each to
// the chosen metric, recomputed with the given cost-per-km rate.
//
// The output is sorted ascending by date. An empty range yields an empty,
// non-nil series; the filter itself never fails on empty input.
func Filter(records []domain.RunRecord, start, end time.Time, metric domain.Metric, costPerKm float64) ([]domain.MetricPoint, error) {
	if !metric.Valid() {
		return nil, fmt.Errorf("%w: unknown metric %q", domain.ErrValidation, metric)
	}
	from, to := domain.Day(start), domain.Day(end)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: end date before start date", domain.ErrValidation)
	}

	points := make([]domain.MetricPoint, 0, len(records))
	for _, r := range records {
		d := domain.Day(r.Date)
		if d.Before(from) || d.After(to) {
			continue
		}
		points = append(points, domain.MetricPoint{
			Date:  d,
			Value: metricValue(r, metric, costPerKm),
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points, nil
}

// metricValue recomputes the selected metric from the record's raw fields.
// Cached calculation results are never reused because the cost-per-km rate
// may have changed since the record was saved.
func metricValue(r domain.RunRecord, metric domain.Metric, costPerKm float64) float64 {
	netProfit := r.TotalEarnings - r.CostsOrZero() - r.KmDriven*costPerKm
	switch metric {
	case domain.MetricNetProfit:
		return netProfit
	case domain.MetricProfitPerKm:
		return netProfit / r.KmDriven
	case domain.MetricGrossEarnings:
		return r.TotalEarnings
	default: // domain.MetricGrossEarningsPerKm
		return r.TotalEarnings / r.KmDriven
	}
}
