package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/barlev-tours/schedule-board/internal/domain"
	"github.com/barlev-tours/schedule-board/internal/teable"
)

// ErrorResponse is the JSON error envelope for every non-2xx answer.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine-readable code and a human message.
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

// writeError writes the error envelope with the given status, code, and message.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// writeServiceError translates a service-layer error into an HTTP response:
// validation → 422, not found → 404, an upstream store failure → the store's
// own status (the proxy has always forwarded it), anything else → 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", domain.ValidationMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "record not found")
	default:
		var apiErr *teable.APIError
		if errors.As(err, &apiErr) {
			slog.Error("upstream store error", "status", apiErr.StatusCode, "body", apiErr.Body)
			writeError(w, apiErr.StatusCode, "upstream_error", "the record store rejected the request")
			return
		}
		slog.Error("internal error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
