// Package calc implements the profitability calculation core: per-record
// profit computation, cost-per-km derivation, period aggregation and
// metric series filtering.
//
// Everything in this package is a pure function over domain types. No
// state, no side effects, no rounding — formatting is a presentation
// concern and composition happens at full float64 precision.
package calc

import (
	"fmt"
	"math"

	"github.com/ganhospro/backend/internal/domain"
)

// ValidateRecord enforces the preconditions for profit computation:
// TotalEarnings must be a non-negative finite number and KmDriven a
// strictly positive finite number. Violations return a wrapped
// domain.ErrValidation and the record must not be saved.
func ValidateRecord(r domain.RunRecord) error {
	if math.IsNaN(r.TotalEarnings) || math.IsInf(r.TotalEarnings, 0) || r.TotalEarnings < 0 {
		return fmt.Errorf("%w: total earnings must be a non-negative number", domain.ErrValidation)
	}
	if math.IsNaN(r.KmDriven) || math.IsInf(r.KmDriven, 0) || r.KmDriven <= 0 {
		return fmt.Errorf("%w: km driven must be greater than zero", domain.ErrValidation)
	}
	if h := r.HoursWorked; h != nil && (math.IsNaN(*h) || *h < 0) {
		return fmt.Errorf("%w: hours worked must be a non-negative number", domain.ErrValidation)
	}
	if c := r.AdditionalCosts; c != nil && (math.IsNaN(*c) || *c < 0) {
		return fmt.Errorf("%w: additional costs must be a non-negative number", domain.ErrValidation)
	}
	return nil
}

// Compute derives the full CalculationResult for one record at the given
// cost-per-km rate. Absent optional fields count as zero for the
// calculation only; the stored record keeps them absent.
func Compute(r domain.RunRecord, costPerKm float64) (domain.CalculationResult, error) {
	if err := ValidateRecord(r); err != nil {
		return domain.CalculationResult{}, err
	}

	hours := r.HoursOrZero()
	costs := r.CostsOrZero()

	carCost := r.KmDriven * costPerKm
	grossProfit := r.TotalEarnings - costs
	netProfit := grossProfit - carCost

	result := domain.CalculationResult{
		TotalEarnings:      r.TotalEarnings,
		GrossEarningsPerKm: r.TotalEarnings / r.KmDriven,
		GrossProfit:        grossProfit,
		CarCost:            carCost,
		NetProfit:          netProfit,
		ProfitPerKm:        netProfit / r.KmDriven,
	}
	if hours > 0 {
		result.ProfitPerHour = netProfit / hours
	}
	return result, nil
}
