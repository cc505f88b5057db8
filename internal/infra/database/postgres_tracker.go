// internal/infra/database/postgres_tracker.go
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"homework_status_bot/internal/domain/homework"

	"github.com/lib/pq"
)

// PostgresTracker stores notified update tokens so duplicate suppression
// survives restarts.
type PostgresTracker struct {
	db *sql.DB
}

func NewPostgresTracker(db *sql.DB) *PostgresTracker {
	return &PostgresTracker{db: db}
}

func (r *PostgresTracker) LastNotified(ctx context.Context, key string) (homework.UpdateToken, bool, error) {
	query := `SELECT date_updated FROM homework_notifications WHERE homework_key = $1`
	var token string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("error getting last notified token for %s: %w", key, describe(err))
	}
	return homework.UpdateToken(token), true, nil
}

func (r *PostgresTracker) MarkNotified(ctx context.Context, key string, token homework.UpdateToken) error {
	query := `INSERT INTO homework_notifications (homework_key, date_updated, notified_at)
               VALUES ($1, $2, NOW())
               ON CONFLICT (homework_key)
               DO UPDATE SET date_updated = EXCLUDED.date_updated, notified_at = EXCLUDED.notified_at`
	if _, err := r.db.ExecContext(ctx, query, key, string(token)); err != nil {
		return fmt.Errorf("error marking %s as notified: %w", key, describe(err))
	}
	return nil
}

// describe adds the SQLSTATE to driver errors so log lines carry it.
func describe(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%w (sqlstate %s)", err, pqErr.Code)
	}
	return err
}
