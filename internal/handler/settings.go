package handler

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/ganhospro/backend/internal/calc"
	"github.com/ganhospro/backend/internal/domain"
)

// GetSettings handles GET /settings.
func (s *Server) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.settings.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// PutSettings handles PUT /settings.
func (s *Server) PutSettings(w http.ResponseWriter, r *http.Request) {
	var settings domain.AppSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		requestError(w, "invalid request body")
		return
	}

	if err := s.settings.Save(r.Context(), settings); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// costRequest is the JSON body for POST /cost-per-km: the drivetrain
// section plus the optional premium fixed-cost layer.
type costRequest struct {
	calc.CostInputs
	Advanced *calc.AdvancedCosts `json:"advanced,omitempty"`
}

// costResponse carries the derived rate. Rounded is the two-decimal
// display value; CostPerKm keeps full precision for further composition.
type costResponse struct {
	CostPerKm float64 `json:"cost_per_km"`
	Rounded   float64 `json:"rounded"`
}

// DeriveCostPerKm handles POST /cost-per-km.
func (s *Server) DeriveCostPerKm(w http.ResponseWriter, r *http.Request) {
	var req costRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestError(w, "invalid request body")
		return
	}

	rate, err := s.settings.DeriveCostPerKm(r.Context(), req.CostInputs, req.Advanced)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, costResponse{
		CostPerKm: rate,
		Rounded:   math.Round(rate*100) / 100,
	})
}

// entitlementBody is the JSON shape for GET/PUT /entitlement.
type entitlementBody struct {
	Premium bool `json:"premium"`
}

// GetEntitlement handles GET /entitlement.
func (s *Server) GetEntitlement(w http.ResponseWriter, r *http.Request) {
	premium, err := s.entitlement.Premium(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entitlementBody{Premium: premium})
}

// PutEntitlement handles PUT /entitlement.
func (s *Server) PutEntitlement(w http.ResponseWriter, r *http.Request) {
	var req entitlementBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestError(w, "invalid request body")
		return
	}

	if err := s.entitlement.SetPremium(r.Context(), req.Premium); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}
