// Package v1handler implements the v1 HTTP handlers on top of the report
// core. Handlers translate between HTTP and the Reporter interface and map
// semantic error kinds to status codes.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"userboard/internal/report"
	"userboard/pkg/logger"
	"userboard/pkg/serrors"
)

// Deps bundles the dependencies required by the v1 handlers.
type Deps struct {
	Reporter report.Reporter
}

// Handler carries the v1 endpoint implementations.
type Handler struct {
	deps Deps
}

// New creates a Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// errorBody is the JSON error envelope returned by every v1 endpoint.
type errorBody struct {
	Error string `json:"error"`
}

// writeJSON serializes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	// the status line is already out, an encode failure can only be logged by
	// the caller's middleware
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the semantic kind of err to an HTTP status code and writes
// the error envelope. Upstream failures surface as 502 so callers can tell a
// broken source apart from a broken service.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, serrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, serrors.ErrBadStatus),
		errors.Is(err, serrors.ErrTransport),
		errors.Is(err, serrors.ErrMalformedPayload):
		status = http.StatusBadGateway
	case errors.Is(err, serrors.ErrStorage):
		status = http.StatusInternalServerError
	}

	logger.Error(r.Context(), "request failed",
		zap.Int("status", status),
		zap.Error(err))
	writeJSON(w, status, errorBody{Error: err.Error()})
}
