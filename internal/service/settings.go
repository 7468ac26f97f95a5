package service

import (
	"context"
	"fmt"
	"math"

	"github.com/ganhospro/backend/internal/calc"
	"github.com/ganhospro/backend/internal/domain"
	"github.com/ganhospro/backend/internal/entitlement"
	"github.com/ganhospro/backend/internal/repo"
)

// SettingsService implements settings load/save and the cost-per-km
// derivation flow.
type SettingsService struct {
	state   repo.StateRepo
	premium entitlement.Checker
}

// NewSettingsService constructs a SettingsService over the given collaborators.
func NewSettingsService(state repo.StateRepo, premium entitlement.Checker) *SettingsService {
	return &SettingsService{state: state, premium: premium}
}

// Get returns the current settings (defaults on first use).
func (s *SettingsService) Get(ctx context.Context) (domain.AppSettings, error) {
	settings, err := s.state.LoadSettings(ctx)
	if err != nil {
		return domain.AppSettings{}, fmt.Errorf("service.SettingsService.Get: %w", err)
	}
	return settings, nil
}

// Save validates and persists new settings.
func (s *SettingsService) Save(ctx context.Context, settings domain.AppSettings) error {
	if math.IsNaN(settings.CostPerKm) || math.IsInf(settings.CostPerKm, 0) || settings.CostPerKm < 0 {
		return fmt.Errorf("%w: cost per km must be a non-negative number", domain.ErrValidation)
	}
	if err := s.state.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("service.SettingsService.Save: %w", err)
	}
	return nil
}

// DeriveCostPerKm runs the cost model over the given inputs. The advanced
// fixed-cost layer is a premium feature: for free-tier callers it is
// dropped before derivation, keeping the calc package gating-agnostic.
//
// The returned rate is full precision; the caller decides how to round
// for display.
func (s *SettingsService) DeriveCostPerKm(ctx context.Context, in calc.CostInputs, adv *calc.AdvancedCosts) (float64, error) {
	if adv != nil {
		premium, err := s.premium.Premium(ctx)
		if err != nil {
			return 0, fmt.Errorf("service.SettingsService.DeriveCostPerKm: %w", err)
		}
		if !premium {
			adv = nil
		}
	}
	return calc.DeriveCostPerKm(in, adv)
}
