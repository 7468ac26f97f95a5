package calc

import (
	"fmt"

	"github.com/ganhospro/backend/internal/domain"
)

// CostMode selects which drivetrain section of the cost calculator is in
// use. The modes are mutually exclusive.
type CostMode string

const (
	CostModeFuel     CostMode = "fuel"
	CostModeElectric CostMode = "electric"
	CostModeHybrid   CostMode = "hybrid"
)

// CostInputs carries the drivetrain inputs for one derivation. Only the
// fields for the selected Mode are consulted.
type CostInputs struct {
	Mode CostMode `json:"mode"`

	// Fuel mode: cost of the last refuel and the km driven on it.
	RefuelCost    float64 `json:"refuel_cost,omitempty"`
	KmSinceRefuel float64 `json:"km_since_refuel,omitempty"`

	// Electric mode: cost of a full charge and the range it provides.
	ChargeCost        float64 `json:"charge_cost,omitempty"`
	RangeAtFullCharge float64 `json:"range_at_full_charge,omitempty"`

	// Hybrid mode: total fuel and electricity spend over a known distance.
	FuelSpend     float64 `json:"fuel_spend,omitempty"`
	ElectricSpend float64 `json:"electric_spend,omitempty"`
	TotalKm       float64 `json:"total_km,omitempty"`
}

// AdvancedCosts is the premium fixed/variable recurring cost layer.
// All amounts are monthly except AnnualTaxes, which is spread over twelve
// months. MonthlyKm is the distance base the costs are amortized over.
type AdvancedCosts struct {
	Vehicle     float64 `json:"vehicle,omitempty"`
	Maintenance float64 `json:"maintenance,omitempty"`
	Insurance   float64 `json:"insurance,omitempty"`
	AnnualTaxes float64 `json:"annual_taxes,omitempty"`
	Other       float64 `json:"other,omitempty"`
	MonthlyKm   float64 `json:"monthly_km,omitempty"`
}

// filled reports whether any cost field carries a positive amount.
func (a AdvancedCosts) filled() bool {
	return a.Vehicle > 0 || a.Maintenance > 0 || a.Insurance > 0 || a.AnnualTaxes > 0 || a.Other > 0
}

// DeriveCostPerKm composes an effective cost-per-km rate from the selected
// drivetrain section plus the optional advanced layer.
//
// A drivetrain section whose denominator is not strictly positive
// contributes zero and is skipped — never a partial or non-finite result.
// Advanced costs without a positive MonthlyKm are a validation failure
// (domain.ErrMissingDenominator), not a silent zero. When both sections
// contribute zero the derivation fails with domain.ErrNoInput.
//
// The result is full precision; rounding belongs to the caller's
// presentation layer.
func DeriveCostPerKm(in CostInputs, adv *AdvancedCosts) (float64, error) {
	var drivetrain float64
	switch in.Mode {
	case CostModeFuel:
		if in.RefuelCost > 0 && in.KmSinceRefuel > 0 {
			drivetrain = in.RefuelCost / in.KmSinceRefuel
		}
	case CostModeElectric:
		if in.ChargeCost >= 0 && in.RangeAtFullCharge > 0 {
			drivetrain = in.ChargeCost / in.RangeAtFullCharge
		}
	case CostModeHybrid:
		if in.FuelSpend >= 0 && in.ElectricSpend >= 0 && in.TotalKm > 0 {
			drivetrain = (in.FuelSpend + in.ElectricSpend) / in.TotalKm
		}
	case "":
		// No drivetrain section selected; the advanced layer may still
		// produce a result on its own.
	default:
		return 0, fmt.Errorf("%w: unknown cost mode %q", domain.ErrValidation, in.Mode)
	}

	var advanced float64
	if adv != nil {
		if adv.filled() && adv.MonthlyKm <= 0 {
			return 0, fmt.Errorf("%w: monthly km is required when fixed costs are set", domain.ErrMissingDenominator)
		}
		if adv.MonthlyKm > 0 {
			monthly := adv.Vehicle + adv.Maintenance + adv.Insurance + adv.AnnualTaxes/12 + adv.Other
			advanced = monthly / adv.MonthlyKm
		}
	}

	total := drivetrain + advanced
	if total <= 0 {
		return 0, fmt.Errorf("%w: fill in at least one calculator section", domain.ErrNoInput)
	}
	return total, nil
}
