package domain

import "time"

// Period selects the bucketing granularity for aggregated reports.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodAnnual  Period = "annual"
)

// Valid reports whether p is one of the supported period granularities.
func (p Period) Valid() bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodAnnual:
		return true
	}
	return false
}

// PeriodBucket is one aggregation unit covering a week, month or year.
// TotalCosts sums car cost plus additional costs across member records.
// NetProfit and ProfitPerKm are derived once after folding completes.
type PeriodBucket struct {
	Period        string  `json:"period"` // week-start date, "2006-01" or "2006"
	TotalEarnings float64 `json:"total_earnings"`
	TotalCosts    float64 `json:"total_costs"`
	TotalKm       float64 `json:"total_km"`
	NetProfit     float64 `json:"net_profit"`
	ProfitPerKm   float64 `json:"profit_per_km"`
}

// Metric selects which per-record value a report series carries.
type Metric string

const (
	MetricNetProfit          Metric = "netProfit"
	MetricProfitPerKm        Metric = "profitPerKm"
	MetricGrossEarnings      Metric = "grossEarnings"
	MetricGrossEarningsPerKm Metric = "grossEarningsPerKm"
)

// Valid reports whether m is one of the supported report metrics.
func (m Metric) Valid() bool {
	switch m {
	case MetricNetProfit, MetricProfitPerKm, MetricGrossEarnings, MetricGrossEarningsPerKm:
		return true
	}
	return false
}

// MetricPoint is one (date, value) pair in a report series.
type MetricPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}
