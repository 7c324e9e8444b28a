// Package fetcher defines the contract for retrieving the external user list
// from an upstream provider.
package fetcher

import (
	"context"
	"strconv"
	"userboard/pkg/domain"
)

// StatusError carries the HTTP status code of a non-success upstream
// response. It travels as the cause inside a serrors.ErrBadStatus error so
// callers can recover the code with errors.As.
type StatusError struct {
	// Code is the HTTP status code the upstream answered with.
	Code int
}

func (e *StatusError) Error() string {
	return "unexpected upstream status " + strconv.Itoa(e.Code)
}

// Client is the abstraction for user list providers. Implementations perform
// a single attempt per call; retry policy is deliberately absent.
//
//go:generate mockgen -package mockfetcher -source=interface.go -destination=mock/mockfetcher.go *
type Client interface {
	// Users fetches the complete user list. Failures are classified with
	// serrors kinds: ErrBadStatus (non-2xx, cause *StatusError), ErrTransport
	// (request never completed) and ErrMalformedPayload (response is not a
	// JSON array of objects).
	Users(ctx context.Context) ([]domain.User, error)
}
