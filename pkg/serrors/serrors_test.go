package serrors_test

import (
	"errors"
	"testing"
	"userboard/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrBadStatus,
		serrors.ErrTransport,
		serrors.ErrMalformedPayload,
		serrors.ErrStorage,
		serrors.ErrNotFound,
		serrors.ErrBadRequest,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	// Ensure some expected inequalities
	require.NotEqual(t, serrors.ErrBadStatus, serrors.ErrTransport, "BadStatus should not equal Transport")
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("connection refused")

	e1 := serrors.With(serrors.ErrBadStatus, "user API returned status %d", 500)
	require.Equal(t, "user API returned status 500", e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrTransport, base, "fetching users")
	require.Equal(t, "fetching users: connection refused", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrStorage)
	require.Equal(t, "STORAGE_FAILURE", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrStorage, base, "loading users")

	require.ErrorIs(t, e, serrors.ErrStorage)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrBadStatus, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrMalformedPayload, base, "decoding payload")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrMalformedPayload, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("disk I/O error")
	e := serrors.Wrap(serrors.ErrStorage, base, "replacing users")
	require.Equal(t, serrors.ErrStorage, e.Kind())
	require.Equal(t, "replacing users", e.Message())
	require.Equal(t, base, e.Cause())
}
