// Package jsonplaceholder provides a fetcher.Client implementation backed by
// a JSONPlaceholder-style users endpoint.
package jsonplaceholder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"userboard/pkg/domain"
	"userboard/pkg/fetcher"
	"userboard/pkg/serrors"
)

// Client fetches the user list from a fixed URL. It is safe for concurrent
// use. The fetch timeout is whatever the injected http.Client enforces.
type Client struct {
	httpClient *http.Client // httpClient performs the GET; its Timeout bounds the whole attempt
	url        string       // url is the fixed users endpoint
}

// Users performs one GET against the configured endpoint and maps the JSON
// array of objects into domain users. It makes exactly one attempt: any
// failure is terminal for the caller's run.
func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransport, err, "could not reach user API")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransport, err, "could not read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serrors.Wrap(serrors.ErrBadStatus,
			&fetcher.StatusError{Code: resp.StatusCode},
			"user API returned status %d", resp.StatusCode)
	}

	var raw []map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, serrors.Wrap(serrors.ErrMalformedPayload, err, "payload is not a JSON array of objects")
	}
	// a JSON null body leaves the slice nil without an Unmarshal error; it is
	// not an array and must not pass for an empty batch
	if raw == nil {
		return nil, serrors.With(serrors.ErrMalformedPayload, "payload is not a JSON array of objects")
	}

	users := make([]domain.User, 0, len(raw))
	for i, obj := range raw {
		// same hole per element: null decodes to a nil map
		if obj == nil {
			return nil, serrors.With(serrors.ErrMalformedPayload, "payload element %d is not an object", i)
		}
		users = append(users, mapUser(obj))
	}

	return users, nil
}

// mapUser is the total field-mapping function from a decoded JSON object to a
// domain user. Absent keys map to explicit zero values and scalar values of
// the wrong type are coerced to text, so no payload object can make it fail.
func mapUser(obj map[string]any) domain.User {
	return domain.User{
		ID:       intField(obj, "id"),
		Name:     textField(obj, "name"),
		Username: textField(obj, "username"),
		Email:    textField(obj, "email"),
		Phone:    textField(obj, "phone"),
		Website:  textField(obj, "website"),
	}
}

// textField renders the value under key as text. Missing keys and JSON null
// become the empty string.
func textField(obj map[string]any, key string) string {
	v, ok := obj[key]
	if !ok || v == nil {
		return ""
	}

	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// intField reads the value under key as an integer, accepting JSON numbers
// and numeric strings. Anything else maps to 0.
func intField(obj map[string]any, key string) int64 {
	switch t := obj[key].(type) {
	case float64:
		return int64(t)
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0
		}

		return n
	default:
		return 0
	}
}

// Ensure Client conforms to the fetcher.Client interface at compile time.
var _ fetcher.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client to fetch the
// user list from url. Pass an http.Client with a Timeout to bound the attempt.
func New(httpClient *http.Client, url string) *Client {
	return &Client{
		httpClient: httpClient,
		url:        url,
	}
}
