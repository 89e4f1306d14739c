// Package handlers provides HTTP response utilities for JSON APIs.
// These stateless functions standardize response formatting across handlers.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the body written by RespondError.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// RespondJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs the error and writes a JSON ErrorResponse. When the request
// carries an X-Request-ID header it is echoed in the body and the log entry.
func RespondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, err error) {
	id := r.Header.Get("X-Request-ID")
	logger.Error("handler error", "error", err, "status", status, "request_id", id)
	RespondJSON(w, status, ErrorResponse{Error: err.Error(), RequestID: id})
}

// RespondMethodNotAllowed writes a 405 with the Allow header set to methods.
func RespondMethodNotAllowed(w http.ResponseWriter, methods ...string) {
	for _, m := range methods {
		w.Header().Add("Allow", m)
	}
	RespondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: http.StatusText(http.StatusMethodNotAllowed)})
}
