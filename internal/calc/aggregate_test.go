package calc_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganhospro/backend/internal/calc"
	"github.com/ganhospro/backend/internal/domain"
)

// day builds a record for the given date with earnings/km defaults that
// make sums easy to verify.
func day(y int, m time.Month, d int, earnings, km float64) domain.RunRecord {
	return domain.RunRecord{
		Date:          time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		TotalEarnings: earnings,
		KmDriven:      km,
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	got, err := calc.Aggregate(nil, domain.PeriodWeekly, 0.75)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAggregate_UnknownPeriod(t *testing.T) {
	_, err := calc.Aggregate(nil, domain.Period("decade"), 0.75)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAggregate_Weekly(t *testing.T) {
	// 2025-06-02 is a Monday; 2025-06-08 the following Sunday.
	records := []domain.RunRecord{
		day(2025, 6, 2, 100, 50),
		day(2025, 6, 4, 200, 80),
		day(2025, 6, 8, 300, 100),
	}

	got, err := calc.Aggregate(records, domain.PeriodWeekly, 0.5)

	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "2025-06-01", got[0].Period) // week of Sunday June 1st
	assert.InDelta(t, 300, got[0].TotalEarnings, 1e-9)
	assert.InDelta(t, 130*0.5, got[0].TotalCosts, 1e-9)
	assert.InDelta(t, 130, got[0].TotalKm, 1e-9)
	assert.InDelta(t, 300-65, got[0].NetProfit, 1e-9)
	assert.InDelta(t, 235.0/130.0, got[0].ProfitPerKm, 1e-9)

	assert.Equal(t, "2025-06-08", got[1].Period)
	assert.InDelta(t, 300, got[1].TotalEarnings, 1e-9)
}

func TestAggregate_Monthly(t *testing.T) {
	records := []domain.RunRecord{
		day(2025, 1, 15, 100, 40),
		day(2025, 2, 1, 50, 20),
		day(2025, 1, 31, 60, 30),
	}

	got, err := calc.Aggregate(records, domain.PeriodMonthly, 1)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2025-01", got[0].Period)
	assert.InDelta(t, 160, got[0].TotalEarnings, 1e-9)
	assert.Equal(t, "2025-02", got[1].Period)
}

func TestAggregate_Annual(t *testing.T) {
	records := []domain.RunRecord{
		day(2024, 12, 31, 100, 40),
		day(2025, 1, 1, 200, 80),
	}

	got, err := calc.Aggregate(records, domain.PeriodAnnual, 0.75)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2024", got[0].Period)
	assert.Equal(t, "2025", got[1].Period)
}

func TestAggregate_AdditionalCostsIncludedInTotalCosts(t *testing.T) {
	r := day(2025, 3, 3, 200, 100)
	r.AdditionalCosts = ptr(25)

	got, err := calc.Aggregate([]domain.RunRecord{r}, domain.PeriodMonthly, 0.5)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 100*0.5+25, got[0].TotalCosts, 1e-9)
}

func TestAggregate_BucketOrderFollowsDateOrder(t *testing.T) {
	// Input deliberately unsorted; buckets must come out in ascending
	// first-occurrence order, not input order or magnitude order.
	records := []domain.RunRecord{
		day(2025, 3, 10, 999, 10),
		day(2025, 1, 5, 1, 10),
		day(2025, 2, 20, 50, 10),
	}

	got, err := calc.Aggregate(records, domain.PeriodMonthly, 0.75)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "2025-01", got[0].Period)
	assert.Equal(t, "2025-02", got[1].Period)
	assert.Equal(t, "2025-03", got[2].Period)
}

func TestAggregate_EarningsSumIsPreserved(t *testing.T) {
	records := []domain.RunRecord{
		day(2025, 1, 1, 110.10, 30),
		day(2025, 1, 8, 220.20, 60),
		day(2025, 6, 1, 330.30, 90),
		day(2024, 6, 1, 440.40, 120),
	}
	var want float64
	for _, r := range records {
		want += r.TotalEarnings
	}

	for _, period := range []domain.Period{domain.PeriodWeekly, domain.PeriodMonthly, domain.PeriodAnnual} {
		got, err := calc.Aggregate(records, period, 0.75)
		require.NoError(t, err)

		var sum float64
		for _, b := range got {
			sum += b.TotalEarnings
		}
		assert.InDelta(t, want, sum, 1e-9, "period %s", period)
	}
}

func TestWeekStart(t *testing.T) {
	sunday := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, sunday, calc.WeekStart(sunday))
	assert.Equal(t, sunday, calc.WeekStart(sunday.AddDate(0, 0, 3)))  // Wednesday
	assert.Equal(t, sunday, calc.WeekStart(sunday.AddDate(0, 0, 6)))  // Saturday
	assert.NotEqual(t, sunday, calc.WeekStart(sunday.AddDate(0, 0, 7))) // next Sunday
}
