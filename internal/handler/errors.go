package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ganhospro/backend/internal/domain"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine-readable code plus a human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError maps a service error onto the HTTP status and error code the
// taxonomy defines. Unrecognized errors become a 500 with a generic body
// so internals never leak to the client.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, body("not_found", err))
	case errors.Is(err, domain.ErrCapacityExceeded):
		writeJSON(w, http.StatusConflict, body("capacity_exceeded", err))
	case errors.Is(err, domain.ErrMissingDenominator):
		writeJSON(w, http.StatusUnprocessableEntity, body("missing_denominator", err))
	case errors.Is(err, domain.ErrNoInput):
		writeJSON(w, http.StatusUnprocessableEntity, body("no_input_provided", err))
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, body("validation_error", err))
	case errors.Is(err, domain.ErrService):
		writeJSON(w, http.StatusBadGateway, body("service_error", err))
	default:
		slog.Error("unhandled error", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: ErrorDetail{Code: "internal_error", Message: "internal server error"},
		})
	}
}

// requestError returns a 422 for a request rejected before reaching the
// service layer (missing or malformed body, bad query parameter).
func requestError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error: ErrorDetail{Code: "validation_error", Message: message},
	})
}

// body builds an ErrorResponse with the human-readable part of a wrapped
// sentinel error.
func body(code string, err error) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: unwrapMessage(err)}}
}

// unwrapMessage strips the "layer.Type.Method: " prefixes services add,
// leaving the part worth showing a client.
// e.g. "service.RecordService.Save: validation error: km driven must be
// greater than zero" → "validation error: km driven must be greater than zero"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for {
		i := strings.Index(msg, ": ")
		if i < 0 {
			return msg
		}
		prefix := msg[:i]
		// Layer prefixes look like "service.RecordService.Save" or
		// "repo.StateRepo.SaveRecords"; anything with spaces is message text.
		if strings.ContainsAny(prefix, " ") {
			return msg
		}
		if !strings.Contains(prefix, ".") {
			return msg
		}
		msg = msg[i+2:]
	}
}
