package storage

import (
	"context"
	"userboard/pkg/domain"
)

// SyncRunUpdates describes the fields applied to a sync run when it finishes.
type SyncRunUpdates struct {
	// Status is the final status for the run.
	Status domain.SyncRunStatus
	// RecordCount is the number of user records the run produced.
	RecordCount int
	// LastError is the failure message for failed runs; empty for completed ones.
	LastError string
}

// SyncRunStorage tracks pipeline run history. Unlike the user table, run
// records accumulate across runs and live in a goose-managed table.
type SyncRunStorage interface {
	// StoreSyncRun inserts a new run record, typically in the running state.
	StoreSyncRun(ctx context.Context, run domain.SyncRun) error
	// FinishSyncRun applies the final status, record count and error text to
	// the run and stamps its finish time.
	FinishSyncRun(ctx context.Context, id domain.SyncRunID, updates SyncRunUpdates) error
	// ListSyncRuns returns the most recent runs, newest first, limited by limit.
	ListSyncRuns(ctx context.Context, limit uint) ([]domain.SyncRun, error)
}
