package domain

import (
	"time"

	"github.com/google/uuid"
)

// SyncRunID uniquely identifies one pipeline run.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type SyncRunID uuid.UUID

// String renders the ID in the canonical uuid text form.
func (id SyncRunID) String() string { return uuid.UUID(id).String() }

// MarshalText makes the ID render as a uuid string in JSON rather than as a
// byte array, since named types do not inherit uuid.UUID's marshaling.
func (id SyncRunID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses the canonical uuid text form.
func (id *SyncRunID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err
	}
	*id = SyncRunID(u)

	return nil
}

// SyncRunStatus enumerates the lifecycle states of a pipeline run.
type SyncRunStatus string

const (
	// SyncRunStatusRunning marks a run that has started but not yet finished.
	SyncRunStatusRunning SyncRunStatus = "running"
	// SyncRunStatusCompleted marks a run that replaced and reloaded the user
	// table successfully.
	SyncRunStatusCompleted SyncRunStatus = "completed"
	// SyncRunStatusFailed marks a run that stopped on a fetch or storage error.
	SyncRunStatusFailed SyncRunStatus = "failed"
)

// SyncRun is the bookkeeping record kept for every pipeline run. Unlike the
// user table, run history survives across runs.
type SyncRun struct {
	ID     SyncRunID     `json:"id"`
	Status SyncRunStatus `json:"status"`

	// RecordCount is the number of user records the run ended up with. Zero
	// until the run completes.
	RecordCount int `json:"record_count"`
	// LastError holds the human-readable failure message for failed runs.
	LastError string `json:"last_error,omitempty"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at,omitzero"`
}
