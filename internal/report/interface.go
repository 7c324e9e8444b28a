package report

import (
	"context"
	"io"
	"userboard/pkg/domain"
)

// Reporter is the core of the application: it owns the linear pipeline
// fetch -> replace -> reload -> enrich -> aggregate and hands plain data to
// whatever renders it.
//
//go:generate mockgen -package mockreport -source=interface.go -destination=mock/mockreport.go *
type Reporter interface {
	// Sync runs the full pipeline once: fetch the user list, replace the local
	// table, reload it, derive columns and aggregate. Any fetch or storage
	// failure terminates the run before anything is rendered; a failed fetch
	// leaves the table untouched.
	Sync(ctx context.Context) (*domain.Report, error)
	// Snapshot recomputes the aggregate view from the persisted table without
	// refetching.
	Snapshot(ctx context.Context) (*domain.Report, error)
	// Users returns the enriched records from the persisted table.
	Users(ctx context.Context) ([]domain.EnrichedUser, error)
	// WriteCSV serializes the enriched table to w as UTF-8 CSV with a header
	// row, one row per record, columns in table order.
	WriteCSV(ctx context.Context, w io.Writer) error
	// Runs returns recent pipeline run history, newest first.
	Runs(ctx context.Context) ([]domain.SyncRun, error)
}
