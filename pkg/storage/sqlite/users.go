package sqlite

import (
	"context"
	"database/sql"
	"userboard/pkg/domain"
	"userboard/pkg/serrors"
	"userboard/pkg/storage"
)

const usersTable = "users"

// createUsersTable is the fixed schema the pipeline recreates on every run.
// The table has no migration story: it is always rebuilt from scratch.
const createUsersTable = `
CREATE TABLE users (
	id       INTEGER PRIMARY KEY,
	name     TEXT,
	username TEXT,
	email    TEXT,
	phone    TEXT,
	website  TEXT
)`

// upsertUser inserts one record, replacing any record with the same id. The
// conflict clause is written by hand because goqu has no portable ON CONFLICT
// rendering for the sqlite3 dialect. Right after recreation the table is
// empty, so this degenerates to a plain insert; the upsert guards against
// duplicate ids within a single batch.
const upsertUser = `
INSERT INTO users (id, name, username, email, phone, website)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	name     = excluded.name,
	username = excluded.username,
	email    = excluded.email,
	phone    = excluded.phone,
	website  = excluded.website`

// ReplaceAllUsers rebuilds the user table from the given batch inside a
// single transaction. When called on a non-transactional handle it opens one;
// a failure anywhere rolls everything back so the previous table contents
// survive intact.
func (s *SQLite) ReplaceAllUsers(ctx context.Context, users []domain.User) error {
	if _, inTx := s.DB.(*sql.Tx); !inTx {
		return s.WithTx(ctx, func(tx storage.AllStorage) error {
			return tx.ReplaceAllUsers(ctx, users)
		})
	}

	if _, err := s.DB.ExecContext(ctx, "DROP TABLE IF EXISTS "+usersTable); err != nil {
		return serrors.Wrap(serrors.ErrStorage, err, "could not drop user table")
	}
	if _, err := s.DB.ExecContext(ctx, createUsersTable); err != nil {
		return serrors.Wrap(serrors.ErrStorage, err, "could not create user table")
	}

	for i := range users {
		u := users[i]
		if _, err := s.DB.ExecContext(ctx, upsertUser,
			u.ID, u.Name, u.Username, u.Email, u.Phone, u.Website); err != nil {
			return serrors.Wrap(serrors.ErrStorage, err, "could not insert user %d", u.ID)
		}
	}

	return nil
}

// LoadAllUsers returns every row of the user table in storage-native order.
func (s *SQLite) LoadAllUsers(ctx context.Context) ([]domain.User, error) {
	var rows []sqliteUser
	if err := s.Builder.From(usersTable).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, serrors.Wrap(serrors.ErrStorage, err, "could not load users")
	}

	return sqliteUsersToDomain(rows), nil
}
