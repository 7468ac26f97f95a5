package domain

// CalculationResult holds the profitability metrics derived from one
// RunRecord and a cost-per-km rate. It is computed fresh on every request
// and never persisted independently of its source record.
//
// No rounding happens here; formatting is a presentation concern.
type CalculationResult struct {
	TotalEarnings      float64 `json:"total_earnings"`
	GrossEarningsPerKm float64 `json:"gross_earnings_per_km"`
	GrossProfit        float64 `json:"gross_profit"` // earnings - additional costs
	CarCost            float64 `json:"car_cost"`     // km * costPerKm
	NetProfit          float64 `json:"net_profit"`   // grossProfit - carCost
	ProfitPerKm        float64 `json:"profit_per_km"`
	ProfitPerHour      float64 `json:"profit_per_hour"` // 0 when hours absent or zero
}
