// Package report implements the application core: a linear pipeline that
// fetches the upstream user list, replaces the local table wholesale, reloads
// it, derives computed columns and aggregates them into a single report view.
package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"userboard/internal/config"
	"userboard/pkg/domain"
	"userboard/pkg/fetcher"
	"userboard/pkg/logger"
	"userboard/pkg/metrics"
	"userboard/pkg/storage"
)

// Options configure the aggregate view and the run history surface. These
// settings are typically derived from application configuration.
type Options struct {
	// TopN is the number of records the top-names ranking keeps.
	TopN int
	// RunHistoryLimit caps how many past runs Runs returns.
	RunHistoryLimit uint
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		TopN:            cfg.Report.TopN,
		RunHistoryLimit: cfg.Report.RunHistoryLimit,
	}
}

// reporter is the concrete implementation of the Reporter interface. It
// coordinates the upstream client, the storage layer and the pipeline metrics.
type reporter struct {
	options Options
	fetcher fetcher.Client
	storage storage.Storage
	metrics *metrics.Pipeline
}

// New creates a Reporter on top of the given upstream client and storage.
func New(client fetcher.Client, str storage.Storage, pipeline *metrics.Pipeline, options Options) Reporter {
	return &reporter{
		options: options,
		fetcher: client,
		storage: str,
		metrics: pipeline,
	}
}

// Sync runs the full pipeline once. The run is recorded in the run history
// before the fetch starts and finished with its terminal status, so a crashed
// process leaves a telltale running row behind.
func (r *reporter) Sync(ctx context.Context) (*domain.Report, error) {
	runID := domain.SyncRunID(uuid.New())
	startedAt := time.Now().UTC()
	ctx = logger.WithFields(ctx, zap.String("runId", runID.String()))

	if err := r.storage.StoreSyncRun(ctx, domain.SyncRun{
		ID:        runID,
		Status:    domain.SyncRunStatusRunning,
		StartedAt: startedAt,
	}); err != nil {
		return nil, fmt.Errorf("could not store sync run: %w", err)
	}

	users, err := r.fetcher.Users(ctx)
	if err != nil {
		// the table is untouched at this point, previous data stays visible
		return nil, r.fail(ctx, runID, startedAt, fmt.Errorf("could not fetch users: %w", err))
	}
	r.metrics.RecordFetched(ctx, len(users))
	logger.Info(ctx, "fetched user list", zap.Int("records", len(users)))

	if err := r.storage.ReplaceAllUsers(ctx, users); err != nil {
		return nil, r.fail(ctx, runID, startedAt, fmt.Errorf("could not replace users: %w", err))
	}

	// reload from the table rather than reusing the fetched batch, the report
	// must reflect what was actually persisted
	rep, err := r.Snapshot(ctx)
	if err != nil {
		return nil, r.fail(ctx, runID, startedAt, err)
	}

	if err := r.storage.FinishSyncRun(ctx, runID, storage.SyncRunUpdates{
		Status:      domain.SyncRunStatusCompleted,
		RecordCount: rep.TotalCount,
	}); err != nil {
		return nil, fmt.Errorf("could not finish sync run: %w", err)
	}
	r.metrics.RecordRun(ctx, string(domain.SyncRunStatusCompleted), time.Since(startedAt).Seconds())
	logger.Info(ctx, "sync completed",
		zap.Int("records", rep.TotalCount),
		zap.Duration("took", time.Since(startedAt)))

	return rep, nil
}

// fail stamps the run as failed with the error text and records the metrics.
// It returns the original error so callers can hand it straight up.
func (r *reporter) fail(ctx context.Context, id domain.SyncRunID, startedAt time.Time, cause error) error {
	r.metrics.RecordRun(ctx, string(domain.SyncRunStatusFailed), time.Since(startedAt).Seconds())
	logger.Error(ctx, "sync failed", zap.Error(cause))

	if err := r.storage.FinishSyncRun(ctx, id, storage.SyncRunUpdates{
		Status:    domain.SyncRunStatusFailed,
		LastError: cause.Error(),
	}); err != nil {
		logger.Error(ctx, "could not mark sync run failed", zap.Error(err))
	}

	return cause
}

// Snapshot recomputes the aggregate view from the persisted table without
// refetching.
func (r *reporter) Snapshot(ctx context.Context) (*domain.Report, error) {
	enriched, err := r.Users(ctx)
	if err != nil {
		return nil, err
	}

	rep := Aggregate(enriched, r.options.TopN)

	return &rep, nil
}

// Users returns the enriched records from the persisted table.
func (r *reporter) Users(ctx context.Context) ([]domain.EnrichedUser, error) {
	users, err := r.storage.LoadAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load users: %w", err)
	}

	return Enrich(users), nil
}

// WriteCSV serializes the enriched table to w.
func (r *reporter) WriteCSV(ctx context.Context, w io.Writer) error {
	enriched, err := r.Users(ctx)
	if err != nil {
		return err
	}

	return writeCSV(w, enriched)
}

// Runs returns recent pipeline run history, newest first.
func (r *reporter) Runs(ctx context.Context) ([]domain.SyncRun, error) {
	runs, err := r.storage.ListSyncRuns(ctx, r.options.RunHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("could not list sync runs: %w", err)
	}

	return runs, nil
}
