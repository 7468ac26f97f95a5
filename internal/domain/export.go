package domain

// ExportRow is a single row in the record history export.
// It is a flat view of the stored fields plus the net profit recomputed
// with the current cost-per-km rate, ordered ascending by date.
//
// Hours and AdditionalCosts carry zero when the record left them absent;
// the export is a presentation artifact, not a round-trippable backup.
type ExportRow struct {
	Date            string  `json:"date"` // "2006-01-02" formatted date
	TotalEarnings   float64 `json:"total_earnings"`
	KmDriven        float64 `json:"km_driven"`
	HoursWorked     float64 `json:"hours_worked"`
	AdditionalCosts float64 `json:"additional_costs"`
	NetProfit       float64 `json:"net_profit"`
}
