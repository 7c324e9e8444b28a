package jsonplaceholder_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"userboard/pkg/fetcher"
	"userboard/pkg/fetcher/jsonplaceholder"

	"userboard/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *jsonplaceholder.Client {
	return jsonplaceholder.New(&http.Client{Transport: fn}, "https://users.test/users")
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestClient_Users_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "users.test", r.URL.Host)
		require.Equal(t, "/users", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Accept"))

		return jsonResponse(http.StatusOK, `[
			{"id":1,"name":"Ann","username":"ann","email":"a@x.com","phone":"123","website":"ann.io"},
			{"id":2,"name":"Bob Bobson","email":"b@y.com"}
		]`), nil
	})

	users, err := c.Users(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)

	require.Equal(t, int64(1), users[0].ID)
	require.Equal(t, "Ann", users[0].Name)
	require.Equal(t, "ann", users[0].Username)
	require.Equal(t, "a@x.com", users[0].Email)
	require.Equal(t, "123", users[0].Phone)
	require.Equal(t, "ann.io", users[0].Website)

	// absent fields map to explicit zero values, never an error
	require.Equal(t, int64(2), users[1].ID)
	require.Empty(t, users[1].Username)
	require.Empty(t, users[1].Phone)
	require.Empty(t, users[1].Website)
}

func TestClient_Users_fieldCoercion(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `[
			{"id":"7","name":42,"username":true,"email":null}
		]`), nil
	})

	users, err := c.Users(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, int64(7), users[0].ID, "numeric string id should parse")
	require.Equal(t, "42", users[0].Name, "numeric name should coerce to text")
	require.Equal(t, "true", users[0].Username, "bool should coerce to text")
	require.Empty(t, users[0].Email, "null should map to empty string")
}

func TestClient_Users_emptyArray(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `[]`), nil
	})

	users, err := c.Users(context.Background())
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestClient_Users_badStatus(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusInternalServerError, `boom`), nil
	})

	_, err := c.Users(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrBadStatus)

	var se *fetcher.StatusError
	require.ErrorAs(t, err, &se, "bad-status error should carry the status code")
	require.Equal(t, http.StatusInternalServerError, se.Code)
}

func TestClient_Users_transportFailure(t *testing.T) {
	cause := errors.New("connection refused")
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return nil, cause
	})

	_, err := c.Users(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrTransport)
}

func TestClient_Users_malformedPayload(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "object instead of array", body: `{"id":1}`},
		{name: "array of scalars", body: `[1,2,3]`},
		{name: "not json at all", body: `<html></html>`},
		{name: "null body is not an empty batch", body: `null`},
		{name: "null array elements", body: `[null,null]`},
		{name: "null element among objects", body: `[{"id":1},null]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(func(r *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, tc.body), nil
			})

			_, err := c.Users(context.Background())
			require.Error(t, err)
			require.ErrorIs(t, err, serrors.ErrMalformedPayload)
		})
	}
}
