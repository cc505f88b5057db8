package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const (
	defaultMaxOpenConns    = 2
	defaultMaxIdleConns    = 1
	defaultConnMaxLifetime = 30 * time.Minute
	defaultConnMaxIdleTime = 10 * time.Minute
)

const trackerSchema = `
CREATE TABLE IF NOT EXISTS homework_notifications (
    homework_key TEXT PRIMARY KEY,
    date_updated TEXT NOT NULL,
    notified_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// NewPostgresConnection opens a small pool (the poller is single threaded),
// pings the database and makes sure the tracker table exists.
func NewPostgresConnection(ctx context.Context, dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(defaultMaxOpenConns)
	db.SetMaxIdleConns(defaultMaxIdleConns)
	db.SetConnMaxLifetime(defaultConnMaxLifetime)
	db.SetConnMaxIdleTime(defaultConnMaxIdleTime)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err = db.ExecContext(ctx, trackerSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply tracker schema: %w", err)
	}

	return db, nil
}
