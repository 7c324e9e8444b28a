package sqlite

import (
	"context"
	"time"
	"userboard/pkg/domain"
	"userboard/pkg/serrors"
	"userboard/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const syncRunsTable = "sync_runs"

// StoreSyncRun inserts a new run record. The sync_runs table is created by
// the goose migrations, not by the pipeline.
func (s *SQLite) StoreSyncRun(ctx context.Context, run domain.SyncRun) error {
	var row sqliteSyncRun
	row.FromDomain(run)

	if _, err := s.Builder.Insert(syncRunsTable).
		Rows(row).
		Executor().ExecContext(ctx); err != nil {
		return serrors.Wrap(serrors.ErrStorage, err, "could not store sync run")
	}

	return nil
}

// FinishSyncRun stamps the run's finish time and applies its final status,
// record count and error text.
func (s *SQLite) FinishSyncRun(ctx context.Context,
	id domain.SyncRunID,
	updates storage.SyncRunUpdates) error {
	if _, err := s.Builder.Update(syncRunsTable).
		Set(goqu.Record{
			"status":       string(updates.Status),
			"record_count": updates.RecordCount,
			"error":        updates.LastError,
			"finished_at":  time.Now().UTC(),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id).String())).
		Executor().ExecContext(ctx); err != nil {
		return serrors.Wrap(serrors.ErrStorage, err, "could not finish sync run")
	}

	return nil
}

// ListSyncRuns returns the most recent runs, newest first.
func (s *SQLite) ListSyncRuns(ctx context.Context, limit uint) ([]domain.SyncRun, error) {
	var rows []sqliteSyncRun
	if err := s.Builder.From(syncRunsTable).
		Order(goqu.I("started_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, serrors.Wrap(serrors.ErrStorage, err, "could not list sync runs")
	}

	return sqliteSyncRunsToDomain(rows)
}
