package v1handler

import "net/http"

// GetReport runs the full pipeline once (fetch, replace, reload, aggregate)
// and returns the resulting report. This is the "render the page" operation:
// every request reflects a fresh upstream fetch.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	rep, err := h.deps.Reporter.Sync(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, rep)
}

// GetSnapshot recomputes the report from the persisted table without touching
// the upstream API.
func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	rep, err := h.deps.Reporter.Snapshot(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, rep)
}
