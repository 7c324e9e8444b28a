package report_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	root "userboard"
	"userboard/internal/report"
	"userboard/pkg/domain"
	"userboard/pkg/logger"
	"userboard/pkg/metrics"
	"userboard/pkg/serrors"
	"userboard/pkg/storage/sqlite"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

// fakeFetcher is a canned fetcher.Client: it returns the configured batch or
// error and counts calls.
type fakeFetcher struct {
	users []domain.User
	err   error
	calls int
}

func (f *fakeFetcher) Users(_ context.Context) ([]domain.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	return f.users, nil
}

// newTestReporter wires a Reporter onto a fresh migrated database file and the
// given fetcher.
func newTestReporter(t *testing.T, client *fakeFetcher) report.Reporter {
	t.Helper()

	s, err := sqlite.New(sqlite.Options{Path: filepath.Join(t.TempDir(), "userboard.db")})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	goose.SetBaseFS(root.Migrations)
	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.Up(s.DB.(*sql.DB), "migrations"))

	pipeline, err := metrics.NewPipeline()
	require.NoError(t, err)

	return report.New(client, s, pipeline, report.Options{TopN: 10, RunHistoryLimit: 20})
}

func TestReporter_Sync(t *testing.T) {
	client := &fakeFetcher{users: []domain.User{
		{ID: 1, Name: "Ann", Email: "a@x.com"},
		{ID: 2, Name: "Bob Bobson", Email: "b@y.com"},
		{ID: 3, Name: "Cy", Email: "c@x.com"},
	}}
	r := newTestReporter(t, client)
	ctx := context.Background()

	rep, err := r.Sync(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, client.calls)
	require.Equal(t, 3, rep.TotalCount)
	require.Equal(t, map[string]int{"x.com": 2, "y.com": 1}, rep.DomainCounts)

	runs, err := r.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, domain.SyncRunStatusCompleted, runs[0].Status)
	require.Equal(t, 3, runs[0].RecordCount)
	require.Empty(t, runs[0].LastError)
	require.False(t, runs[0].FinishedAt.IsZero())
}

func TestReporter_Sync_ReplacesWholesale(t *testing.T) {
	client := &fakeFetcher{users: []domain.User{
		{ID: 1, Name: "Ann", Email: "a@x.com"},
		{ID: 2, Name: "Bob", Email: "b@x.com"},
	}}
	r := newTestReporter(t, client)
	ctx := context.Background()

	_, err := r.Sync(ctx)
	require.NoError(t, err)

	// the second batch drops id 2 and must take over completely
	client.users = []domain.User{{ID: 3, Name: "Cy", Email: "c@y.com"}}
	rep, err := r.Sync(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, rep.TotalCount)

	users, err := r.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, int64(3), users[0].ID)
}

func TestReporter_Sync_FetchFailureKeepsTable(t *testing.T) {
	client := &fakeFetcher{users: []domain.User{
		{ID: 1, Name: "Ann", Email: "a@x.com"},
	}}
	r := newTestReporter(t, client)
	ctx := context.Background()

	_, err := r.Sync(ctx)
	require.NoError(t, err)

	client.err = serrors.With(serrors.ErrTransport, "connection refused")
	_, err = r.Sync(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrTransport)

	// previous data stays visible
	users, err := r.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	runs, err := r.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Equal(t, domain.SyncRunStatusFailed, runs[0].Status)
	require.Contains(t, runs[0].LastError, "connection refused")
	require.Equal(t, domain.SyncRunStatusCompleted, runs[1].Status)
}

func TestReporter_Snapshot_NoRefetch(t *testing.T) {
	client := &fakeFetcher{users: []domain.User{
		{ID: 1, Name: "Ann", Email: "a@x.com"},
	}}
	r := newTestReporter(t, client)
	ctx := context.Background()

	_, err := r.Sync(ctx)
	require.NoError(t, err)

	rep, err := r.Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, rep.TotalCount)
	require.Equal(t, 1, client.calls)
}

func TestReporter_Snapshot_BeforeFirstSync(t *testing.T) {
	r := newTestReporter(t, &fakeFetcher{})

	// the user table does not exist until the first replacement
	_, err := r.Snapshot(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrStorage)
}

func TestReporter_Runs_LimitAndOrder(t *testing.T) {
	client := &fakeFetcher{users: []domain.User{}}
	r := newTestReporter(t, client)
	ctx := context.Background()

	for range 3 {
		_, err := r.Sync(ctx)
		require.NoError(t, err)
	}

	runs, err := r.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	for i := 1; i < len(runs); i++ {
		require.False(t, runs[i].StartedAt.After(runs[i-1].StartedAt))
	}
}
