package domain

// DefaultCostPerKm is the cost-per-km rate applied before the driver has
// saved their own settings.
const DefaultCostPerKm = 0.75

// AppSettings is the single process-wide settings value.
// It is mutated only through an explicit save; loads fall back to
// DefaultSettings when nothing is stored yet.
type AppSettings struct {
	// CostPerKm converts driven distance into an implied vehicle
	// operating cost. Must be non-negative.
	CostPerKm float64 `json:"cost_per_km"`
}

// DefaultSettings returns the settings used on first run or when the
// stored value cannot be decoded.
func DefaultSettings() AppSettings {
	return AppSettings{CostPerKm: DefaultCostPerKm}
}
