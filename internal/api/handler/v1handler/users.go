package v1handler

import (
	"bytes"
	"net/http"
	"strings"

	"userboard/internal/report"
)

// usersResponse wraps the projected rows of the user table.
type usersResponse struct {
	Items []map[string]any `json:"items"`
	Total int              `json:"total"`
}

// ListUsers returns the enriched records from the persisted table. The
// optional columns query parameter selects a comma-separated column subset,
// e.g. ?columns=name,email_domain.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.deps.Reporter.Users(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	var columns []string
	if raw := r.URL.Query().Get("columns"); raw != "" {
		columns = strings.Split(raw, ",")
	}

	rows, err := report.Project(users, columns)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, usersResponse{Items: rows, Total: len(rows)})
}

// ExportUsers returns the enriched table as a CSV attachment. The export is
// buffered so a storage failure still yields a proper error response instead
// of a truncated file.
func (h *Handler) ExportUsers(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.deps.Reporter.WriteCSV(r.Context(), &buf); err != nil {
		writeError(w, r, err)

		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="users.csv"`)
	_, _ = buf.WriteTo(w)
}
