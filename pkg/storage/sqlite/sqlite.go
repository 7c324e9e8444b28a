// Package sqlite implements the storage interfaces on top of a local SQLite
// database file using database/sql and goqu.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"userboard/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	_ "github.com/mattn/go-sqlite3"
)

// Options defines the configuration parameters for the SQLite database.
type Options struct {
	// Path is the location of the database file. It is created on first use.
	Path string
}

// DB defines the subset of database/sql methods used by this package. Both
// *sql.DB and *sql.Tx satisfy this interface, allowing the same code paths to be
// used within and outside transactions.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Builder abstracts the minimal subset of goqu methods used by this package to
// construct queries. Both a goqu database handle and a transaction handle
// implement this interface.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Update(table interface{}) *goqu.UpdateDataset
}

// SQLite implements the storage.Storage interface for a local SQLite file
// using database/sql and goqu.
type SQLite struct {
	// DB is the underlying executor. It is either a *sql.DB (when not in a
	// transaction) or a *sql.Tx (when inside a transaction).
	DB DB
	// Builder is the goqu handle used to construct SQL queries bound to DB.
	Builder Builder
}

// Close closes the underlying database handle.
func (s *SQLite) Close() error {
	if db, ok := s.DB.(*sql.DB); ok {
		if err := db.Close(); err != nil {
			return fmt.Errorf("could not close sqlite db: %w", err)
		}
	}

	return nil
}

// Commit commits the current transaction. It returns storage.ErrNotInTx if
// called when SQLite is not in a transactional context.
func (s *SQLite) Commit() error {
	tx, ok := s.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback aborts the current transaction. It returns storage.ErrNotInTx if
// called when SQLite is not in a transactional context.
func (s *SQLite) Rollback() error {
	tx, ok := s.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin starts a new database transaction and returns a transactional SQLite
// handle that can be used to execute subsequent operations within that
// transaction. If called while already inside a transaction, ErrAlreadyInTx
// is returned.
func (s *SQLite) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := s.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &SQLite{
		DB:      tx,
		Builder: goqu.NewTx("sqlite3", tx),
	}, nil
}

// WithTx is a helper that starts a transaction, executes the provided callback
// with a transactional storage handle, and commits if the callback returns nil.
// If the callback returns an error, the transaction is rolled back.
func (s *SQLite) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Ensure SQLite conforms to the storage interfaces at compile time.
var (
	_ storage.Storage   = (*SQLite)(nil)
	_ storage.TxStorage = (*SQLite)(nil)
)

// New creates a new SQLite storage instance backed by the database file at
// options.Path. SQLite allows a single writer at a time, so the pool is
// limited to one open connection to avoid SQLITE_BUSY under concurrent use.
func New(options Options) (*SQLite, error) {
	sqlDB, err := sql.Open("sqlite3", options.Path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return &SQLite{
		DB:      sqlDB,
		Builder: goqu.Dialect("sqlite3").DB(sqlDB),
	}, nil
}
