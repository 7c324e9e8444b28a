package sqlite_test

import (
	"context"
	"testing"

	"userboard/pkg/domain"
	"userboard/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func sampleUsers() []domain.User {
	return []domain.User{
		{ID: 1, Name: "Ann", Username: "ann", Email: "a@x.com", Phone: "1", Website: "ann.io"},
		{ID: 2, Name: "Bob Bobson", Username: "bob", Email: "b@y.com", Phone: "2", Website: "bob.io"},
		{ID: 3, Name: "Cy", Username: "cy", Email: "c@x.com", Phone: "3", Website: "cy.io"},
	}
}

func usersByID(users []domain.User) map[int64]domain.User {
	m := make(map[int64]domain.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}

	return m
}

func TestReplaceAllUsers_RoundTrip(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()
	in := sampleUsers()

	require.NoError(t, s.ReplaceAllUsers(ctx, in))

	out, err := s.LoadAllUsers(ctx)
	require.NoError(t, err)
	// order across runs is not guaranteed, compare as sets keyed by id
	require.Equal(t, usersByID(in), usersByID(out))
}

func TestReplaceAllUsers_Idempotent(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()
	in := sampleUsers()

	require.NoError(t, s.ReplaceAllUsers(ctx, in))
	require.NoError(t, s.ReplaceAllUsers(ctx, in))

	out, err := s.LoadAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, out, len(in), "second replacement must not duplicate rows")
	require.Equal(t, usersByID(in), usersByID(out))
}

func TestReplaceAllUsers_FullOverwrite(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, s.ReplaceAllUsers(ctx, sampleUsers()))

	next := []domain.User{{ID: 9, Name: "Zed", Email: "z@z.org"}}
	require.NoError(t, s.ReplaceAllUsers(ctx, next))

	out, err := s.LoadAllUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, usersByID(next), usersByID(out), "previous batch must be gone")
}

func TestReplaceAllUsers_DuplicateIDsCollapse(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	in := []domain.User{
		{ID: 1, Name: "First", Email: "first@x.com"},
		{ID: 1, Name: "Second", Email: "second@x.com"},
	}
	require.NoError(t, s.ReplaceAllUsers(ctx, in))

	out, err := s.LoadAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1, "duplicate ids within a batch must collapse")
	require.Equal(t, "Second", out[0].Name, "last record wins")
}

func TestReplaceAllUsers_Empty(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, s.ReplaceAllUsers(ctx, nil))

	out, err := s.LoadAllUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestLoadAllUsers_BeforeFirstReplace(t *testing.T) {
	s := setupTestDB(t)

	// the user table only exists after the first replacement
	_, err := s.LoadAllUsers(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrStorage)
}
