package sqlite

import (
	"database/sql"
	"fmt"
	"time"
	"userboard/pkg/domain"

	"github.com/google/uuid"
)

type sqliteUser struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Username string `db:"username"`
	Email    string `db:"email"`
	Phone    string `db:"phone"`
	Website  string `db:"website"`
}

func (u *sqliteUser) ToDomain() domain.User {
	return domain.User{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Website:  u.Website,
	}
}

func (u *sqliteUser) FromDomain(user domain.User) {
	*u = sqliteUser{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
		Phone:    user.Phone,
		Website:  user.Website,
	}
}

func sqliteUsersToDomain(rows []sqliteUser) []domain.User {
	out := make([]domain.User, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}

type sqliteSyncRun struct {
	ID          string       `db:"id"`
	Status      string       `db:"status"`
	RecordCount int64        `db:"record_count"`
	LastError   string       `db:"error"`
	StartedAt   time.Time    `db:"started_at"`
	FinishedAt  sql.NullTime `db:"finished_at"`
}

func (r *sqliteSyncRun) ToDomain() (domain.SyncRun, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return domain.SyncRun{}, fmt.Errorf("could not parse sync run id: %w", err)
	}

	return domain.SyncRun{
		ID:          domain.SyncRunID(id),
		Status:      domain.SyncRunStatus(r.Status),
		RecordCount: int(r.RecordCount),
		LastError:   r.LastError,
		StartedAt:   r.StartedAt,
		FinishedAt:  r.FinishedAt.Time,
	}, nil
}

func (r *sqliteSyncRun) FromDomain(run domain.SyncRun) {
	*r = sqliteSyncRun{
		ID:          uuid.UUID(run.ID).String(),
		Status:      string(run.Status),
		RecordCount: int64(run.RecordCount),
		LastError:   run.LastError,
		StartedAt:   run.StartedAt,
		FinishedAt: sql.NullTime{
			Time:  run.FinishedAt,
			Valid: !run.FinishedAt.IsZero(),
		},
	}
}

func sqliteSyncRunsToDomain(rows []sqliteSyncRun) ([]domain.SyncRun, error) {
	out := make([]domain.SyncRun, 0, len(rows))
	for i := range rows {
		d, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, d)
	}

	return out, nil
}
