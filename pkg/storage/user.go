package storage

import (
	"context"
	"userboard/pkg/domain"
)

// UserStorage defines the write and read path of the local user table. The
// pipeline is the table's only writer: each run replaces the previous batch
// wholesale, there is no incremental sync.
type UserStorage interface {
	// ReplaceAllUsers drops the user table if it exists, recreates it with the
	// fixed schema and inserts every record from the batch, all inside one
	// transaction. A failure anywhere rolls the whole replacement back, so the
	// table is never left half-populated. Records sharing an id within the
	// batch collapse to the last one (per-record upsert).
	ReplaceAllUsers(ctx context.Context, users []domain.User) error
	// LoadAllUsers reads every row of the user table in storage-native order.
	// Callers must not rely on any ordering across runs.
	LoadAllUsers(ctx context.Context) ([]domain.User, error)
}
