package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganhospro/backend/internal/calc"
	"github.com/ganhospro/backend/internal/domain"
)

func TestGetSettings(t *testing.T) {
	settings := &mockSettings{
		get: func(context.Context) (domain.AppSettings, error) {
			return domain.DefaultSettings(), nil
		},
	}
	h := newRouter(nil, settings, nil, nil, nil)

	resp := doJSON(t, h, http.MethodGet, "/settings", "")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"cost_per_km":0.75}`, resp.Body.String())
}

func TestPutSettings(t *testing.T) {
	var saved domain.AppSettings
	settings := &mockSettings{
		save: func(_ context.Context, s domain.AppSettings) error {
			saved = s
			return nil
		},
	}
	h := newRouter(nil, settings, nil, nil, nil)

	resp := doJSON(t, h, http.MethodPut, "/settings", `{"cost_per_km":0.62}`)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.InDelta(t, 0.62, saved.CostPerKm, 1e-9)
}

func TestPutSettings_NegativeRateRejected(t *testing.T) {
	settings := &mockSettings{
		save: func(context.Context, domain.AppSettings) error {
			return fmt.Errorf("%w: cost per km must not be negative", domain.ErrValidation)
		},
	}
	h := newRouter(nil, settings, nil, nil, nil)

	resp := doJSON(t, h, http.MethodPut, "/settings", `{"cost_per_km":-1}`)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestDeriveCostPerKm(t *testing.T) {
	settings := &mockSettings{
		derive: func(_ context.Context, in calc.CostInputs, adv *calc.AdvancedCosts) (float64, error) {
			assert.Equal(t, calc.CostModeFuel, in.Mode)
			assert.Nil(t, adv)
			return calc.DeriveCostPerKm(in, nil)
		},
	}
	h := newRouter(nil, settings, nil, nil, nil)

	resp := doJSON(t, h, http.MethodPost, "/cost-per-km",
		`{"mode":"fuel","refuel_cost":250,"km_since_refuel":450}`)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"rounded":0.56`)
}

func TestDeriveCostPerKm_NoInputMapsTo422(t *testing.T) {
	settings := &mockSettings{
		derive: func(context.Context, calc.CostInputs, *calc.AdvancedCosts) (float64, error) {
			return 0, fmt.Errorf("%w: no cost inputs provided", domain.ErrNoInput)
		},
	}
	h := newRouter(nil, settings, nil, nil, nil)

	resp := doJSON(t, h, http.MethodPost, "/cost-per-km", `{}`)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, resp.Body.String(), "no_input_provided")
}

func TestDeriveCostPerKm_MissingDenominatorMapsTo422(t *testing.T) {
	settings := &mockSettings{
		derive: func(context.Context, calc.CostInputs, *calc.AdvancedCosts) (float64, error) {
			return 0, fmt.Errorf("%w: monthly km is required with fixed costs", domain.ErrMissingDenominator)
		},
	}
	h := newRouter(nil, settings, nil, nil, nil)

	resp := doJSON(t, h, http.MethodPost, "/cost-per-km",
		`{"advanced":{"vehicle":1200}}`)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, resp.Body.String(), "missing_denominator")
}

func TestEntitlementRoundTrip(t *testing.T) {
	premium := false
	ent := &mockEntitlement{
		premium: func(context.Context) (bool, error) { return premium, nil },
		set: func(_ context.Context, p bool) error {
			premium = p
			return nil
		},
	}
	h := newRouter(nil, nil, nil, nil, ent)

	resp := doJSON(t, h, http.MethodGet, "/entitlement", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"premium":false}`, resp.Body.String())

	resp = doJSON(t, h, http.MethodPut, "/entitlement", `{"premium":true}`)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, h, http.MethodGet, "/entitlement", "")
	assert.JSONEq(t, `{"premium":true}`, resp.Body.String())
}
