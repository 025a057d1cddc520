package db

import (
	"context"
	"fmt"
	"log/slog"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

const devicesSchema = `
CREATE TABLE IF NOT EXISTS devices (
	id TEXT PRIMARY KEY,
	wins INTEGER NOT NULL DEFAULT 0 CHECK (wins >= 0),
	losses INTEGER NOT NULL DEFAULT 0 CHECK (losses >= 0),
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// Open connects to the SQLite database at path and makes sure the schema
// exists. Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	pool, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	// An in-memory database lives as long as its connection.
	if path == ":memory:" {
		pool.SetMaxOpenConns(1)
	}

	if err := Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	slog.InfoContext(ctx, "Connected to sqlite database", "db.path", path)
	return pool, nil
}

// Migrate creates missing tables.
func Migrate(ctx context.Context, pool *sqlx.DB) error {
	if _, err := pool.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := pool.ExecContext(ctx, devicesSchema); err != nil {
		return fmt.Errorf("failed to create devices table: %w", err)
	}
	return nil
}
