package v1handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"userboard/pkg/domain"
)

func TestListRuns(t *testing.T) {
	id := uuid.New()
	h := newHandler(&fakeReporter{runs: []domain.SyncRun{
		{
			ID:          domain.SyncRunID(id),
			Status:      domain.SyncRunStatusCompleted,
			RecordCount: 10,
			StartedAt:   time.Now().UTC().Add(-time.Minute),
			FinishedAt:  time.Now().UTC(),
		},
		{
			ID:        domain.SyncRunID(uuid.New()),
			Status:    domain.SyncRunStatusFailed,
			LastError: "connection refused",
			StartedAt: time.Now().UTC().Add(-2 * time.Minute),
		},
	}})

	rec := do(t, h.ListRuns, "/v1/runs")
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Items []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Items, 2)
	// run ids serialize as canonical uuid strings
	require.Equal(t, id.String(), got.Items[0]["id"])
	require.Equal(t, "completed", got.Items[0]["status"])
	require.Equal(t, "connection refused", got.Items[1]["last_error"])
}
