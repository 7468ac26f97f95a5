package calc_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganhospro/backend/internal/calc"
	"github.com/ganhospro/backend/internal/domain"
)

func reportRecords() []domain.RunRecord {
	return []domain.RunRecord{
		day(2025, 5, 3, 150, 60),
		day(2025, 5, 1, 100, 40),
		day(2025, 5, 10, 200, 80),
	}
}

func TestFilter_RangeIsInclusiveOnBothEnds(t *testing.T) {
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)

	got, err := calc.Filter(reportRecords(), start, end, domain.MetricGrossEarnings, 0.75)

	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestFilter_TimeOfDayIsStripped(t *testing.T) {
	// End of range carries a time-of-day earlier than nothing in
	// particular; comparison happens at day granularity so the boundary
	// record is still included.
	start := time.Date(2025, 5, 1, 23, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 10, 1, 30, 0, 0, time.UTC)

	got, err := calc.Filter(reportRecords(), start, end, domain.MetricGrossEarnings, 0.75)

	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestFilter_OutputSortedAscending(t *testing.T) {
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)

	got, err := calc.Filter(reportRecords(), start, end, domain.MetricNetProfit, 0.75)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].Date.Before(got[1].Date))
	assert.True(t, got[1].Date.Before(got[2].Date))
}

func TestFilter_EmptyRangeReturnsEmptySeries(t *testing.T) {
	start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC)

	got, err := calc.Filter(reportRecords(), start, end, domain.MetricNetProfit, 0.75)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_EndBeforeStartRejected(t *testing.T) {
	start := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := calc.Filter(reportRecords(), start, end, domain.MetricNetProfit, 0.75)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFilter_UnknownMetricRejected(t *testing.T) {
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := calc.Filter(reportRecords(), start, start, domain.Metric("vibes"), 0.75)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFilter_MetricsMatchComputeFormulas(t *testing.T) {
	r := day(2025, 5, 1, 100, 40)
	costs := 10.0
	r.AdditionalCosts = &costs
	start, end := r.Date, r.Date
	const rate = 0.5

	expected, err := calc.Compute(r, rate)
	require.NoError(t, err)

	cases := map[domain.Metric]float64{
		domain.MetricNetProfit:          expected.NetProfit,
		domain.MetricProfitPerKm:        expected.ProfitPerKm,
		domain.MetricGrossEarnings:      expected.TotalEarnings,
		domain.MetricGrossEarningsPerKm: expected.GrossEarningsPerKm,
	}
	for metric, want := range cases {
		got, err := calc.Filter([]domain.RunRecord{r}, start, end, metric, rate)
		require.NoError(t, err)
		require.Len(t, got, 1, "metric %s", metric)
		assert.InDelta(t, want, got[0].Value, 1e-9, "metric %s", metric)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)

	first, err := calc.Filter(reportRecords(), start, end, domain.MetricProfitPerKm, 0.75)
	require.NoError(t, err)
	second, err := calc.Filter(reportRecords(), start, end, domain.MetricProfitPerKm, 0.75)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
