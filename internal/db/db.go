// Package db opens and migrates the SQLite database backing the history
// store.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// OpenDB opens a SQLite database at the given path.
// If path is ":memory:", uses an in-memory database.
// Sets WAL mode and runs migrations automatically.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// Migrate runs all schema migrations. Statements are idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS schedule_records (
		id           TEXT PRIMARY KEY,
		task         TEXT NOT NULL,
		completed    INTEGER NOT NULL DEFAULT 0,
		duration     TEXT NOT NULL DEFAULT '',
		time_of_day  TEXT NOT NULL DEFAULT '',
		recorded_at  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS completion_records (
		id            TEXT PRIMARY KEY,
		task          TEXT NOT NULL,
		time_taken    TEXT NOT NULL DEFAULT '',
		interruptions INTEGER NOT NULL DEFAULT 0,
		feedback      TEXT NOT NULL DEFAULT '',
		recorded_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_schedule_records_recorded_at ON schedule_records(recorded_at)`,
	`CREATE INDEX IF NOT EXISTS idx_completion_records_recorded_at ON completion_records(recorded_at)`,
}
