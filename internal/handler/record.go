package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ganhospro/backend/internal/domain"
	"github.com/ganhospro/backend/internal/store"
)

// recordRequest is the JSON body for POST /records and POST /calculations.
// Id is optional: absent means "new record". Optional numeric fields use
// pointers so "absent" and "zero" stay distinguishable.
type recordRequest struct {
	ID              *uuid.UUID `json:"id,omitempty"`
	Date            string     `json:"date"`
	TotalEarnings   float64    `json:"total_earnings"`
	KmDriven        float64    `json:"km_driven"`
	HoursWorked     *float64   `json:"hours_worked,omitempty"`
	AdditionalCosts *float64   `json:"additional_costs,omitempty"`
}

// toDomain converts the request body to a domain.RunRecord.
func (req recordRequest) toDomain() (domain.RunRecord, bool) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.RunRecord{}, false
	}
	rec := domain.RunRecord{
		Date:            date,
		TotalEarnings:   req.TotalEarnings,
		KmDriven:        req.KmDriven,
		HoursWorked:     req.HoursWorked,
		AdditionalCosts: req.AdditionalCosts,
	}
	if req.ID != nil {
		rec.ID = *req.ID
	}
	return rec, true
}

// recordResponse mirrors domain.RunRecord with the date as a plain
// calendar string.
type recordResponse struct {
	ID              uuid.UUID `json:"id"`
	Date            string    `json:"date"`
	TotalEarnings   float64   `json:"total_earnings"`
	KmDriven        float64   `json:"km_driven"`
	HoursWorked     *float64  `json:"hours_worked,omitempty"`
	AdditionalCosts *float64  `json:"additional_costs,omitempty"`
}

func recordToResponse(r domain.RunRecord) recordResponse {
	return recordResponse{
		ID:              r.ID,
		Date:            domain.Day(r.Date).Format("2006-01-02"),
		TotalEarnings:   r.TotalEarnings,
		KmDriven:        r.KmDriven,
		HoursWorked:     r.HoursWorked,
		AdditionalCosts: r.AdditionalCosts,
	}
}

// saveResponse is the JSON body for a successful POST /records.
type saveResponse struct {
	Record  recordResponse `json:"record"`
	Outcome string         `json:"outcome"`
}

// ListRecords handles GET /records.
// Records come back most recent first, the order the history screen uses.
func (s *Server) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := s.records.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	data := make([]recordResponse, len(records))
	for i, rec := range records {
		data[i] = recordToResponse(rec)
	}
	writeJSON(w, http.StatusOK, data)
}

// SaveRecord handles POST /records.
// The response outcome distinguishes a fresh insert, an update of an
// existing record and a same-date overwrite.
func (s *Server) SaveRecord(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestError(w, "invalid request body")
		return
	}
	rec, ok := req.toDomain()
	if !ok {
		requestError(w, "date must be formatted as YYYY-MM-DD")
		return
	}

	result, err := s.records.Save(r.Context(), rec)
	if err != nil {
		writeError(w, err)
		return
	}

	status := http.StatusCreated
	if result.Outcome != store.Inserted {
		status = http.StatusOK
	}
	writeJSON(w, status, saveResponse{
		Record:  recordToResponse(result.Record),
		Outcome: string(result.Outcome),
	})
}

// DeleteRecord handles DELETE /records/{recordId}.
func (s *Server) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "recordId"))
	if err != nil {
		requestError(w, "record id must be a UUID")
		return
	}

	if err := s.records.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Calculate handles POST /calculations.
// It computes the profitability metrics for the submitted fields at the
// current cost-per-km rate without saving anything.
func (s *Server) Calculate(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestError(w, "invalid request body")
		return
	}
	rec, ok := req.toDomain()
	if !ok {
		requestError(w, "date must be formatted as YYYY-MM-DD")
		return
	}

	result, err := s.records.Compute(r.Context(), rec)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
