// Package domain contains the core data types for the GanhosPro backend.
// This package has zero external dependencies beyond uuid and is imported
// by every other internal package (calc, store, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// RunRecord is one work-day entry for a driver.
// Uniqueness within the collection is enforced by Date, not by ID: at most
// one record may exist per calendar day, and saving a second record for an
// existing date replaces the prior one.
type RunRecord struct {
	ID   uuid.UUID `json:"id"`
	Date time.Time `json:"date"` // calendar date, normalized to UTC midnight

	TotalEarnings float64 `json:"total_earnings"`
	KmDriven      float64 `json:"km_driven"`

	// HoursWorked and AdditionalCosts are nil when the driver did not fill
	// them in. Absence is preserved on the stored record; calculations
	// substitute zero.
	HoursWorked     *float64 `json:"hours_worked,omitempty"`
	AdditionalCosts *float64 `json:"additional_costs,omitempty"`
}

// Day truncates t to UTC midnight. All date comparisons in the collection
// happen at day granularity to avoid timezone-boundary exclusion bugs.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// HoursOrZero returns the worked hours, or 0 when the field is absent.
func (r RunRecord) HoursOrZero() float64 {
	if r.HoursWorked == nil {
		return 0
	}
	return *r.HoursWorked
}

// CostsOrZero returns the additional costs, or 0 when the field is absent.
func (r RunRecord) CostsOrZero() float64 {
	if r.AdditionalCosts == nil {
		return 0
	}
	return *r.AdditionalCosts
}
