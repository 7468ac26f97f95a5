package calc

import (
	"fmt"
	"sort"
	"time"

	"github.com/ganhospro/backend/internal/domain"
)

// Aggregate buckets records into weekly, monthly or annual groups and sums
// earnings, costs and distance per bucket.
//
// Records are first sorted ascending by date, then folded in that order;
// buckets appear in the output in first-occurrence order of their key.
// NetProfit and ProfitPerKm are derived once per bucket after folding
// completes rather than incrementally, so rounding error does not compound.
func Aggregate(records []domain.RunRecord, period domain.Period, costPerKm float64) ([]domain.PeriodBucket, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("%w: unknown period %q", domain.ErrValidation, period)
	}

	sorted := make([]domain.RunRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	buckets := make([]domain.PeriodBucket, 0, len(sorted))
	index := make(map[string]int, len(sorted))

	for _, r := range sorted {
		key := PeriodKey(r.Date, period)
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, domain.PeriodBucket{Period: key})
		}
		buckets[i].TotalEarnings += r.TotalEarnings
		buckets[i].TotalCosts += r.KmDriven*costPerKm + r.CostsOrZero()
		buckets[i].TotalKm += r.KmDriven
	}

	for i := range buckets {
		b := &buckets[i]
		b.NetProfit = b.TotalEarnings - b.TotalCosts
		// TotalKm is always positive given the positive-km record
		// invariant; guarded anyway so a bucket can never divide by zero.
		if b.TotalKm > 0 {
			b.ProfitPerKm = b.NetProfit / b.TotalKm
		}
	}

	return buckets, nil
}

// PeriodKey returns the bucket label for a date at the given granularity:
// the Sunday week-start date for weekly, "2006-01" for monthly and "2006"
// for annual.
func PeriodKey(date time.Time, period domain.Period) string {
	d := domain.Day(date)
	switch period {
	case domain.PeriodWeekly:
		return WeekStart(d).Format("2006-01-02")
	case domain.PeriodMonthly:
		return d.Format("2006-01")
	default:
		return d.Format("2006")
	}
}

// WeekStart returns the Sunday on or before the given date, at UTC
// midnight.
func WeekStart(date time.Time) time.Time {
	d := domain.Day(date)
	return d.AddDate(0, 0, -int(d.Weekday()))
}
