package v1handler

import (
	"net/http"

	"userboard/pkg/domain"
)

// runsResponse wraps the run history list.
type runsResponse struct {
	Items []domain.SyncRun `json:"items"`
}

// ListRuns returns recent pipeline runs, newest first.
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.deps.Reporter.Runs(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, runsResponse{Items: runs})
}
