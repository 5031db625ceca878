package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// snapshotLimit caps how many recent rows of each kind feed a snapshot, so
// the prompt stays bounded as history accumulates.
const snapshotLimit = 50

// SQLiteStore persists schedule outcomes and serves them back as factor
// analysis input. Implements both Provider and Recorder. When the store is
// empty it falls back to the built-in sample so the first generation still
// has data to analyze.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a SQLiteStore over an opened, migrated database.
func NewSQLiteStore(conn *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: conn}
}

func (s *SQLiteStore) Snapshot(ctx context.Context) (Data, error) {
	schedules, err := s.recentSchedules(ctx)
	if err != nil {
		return Data{}, err
	}
	completions, err := s.recentCompletions(ctx)
	if err != nil {
		return Data{}, err
	}

	if len(schedules) == 0 && len(completions) == 0 {
		return NewSampleProvider().Snapshot(ctx)
	}
	return marshalData(schedules, completions)
}

func (s *SQLiteStore) recentSchedules(ctx context.Context) ([]ScheduleRecord, error) {
	query := `SELECT task, completed, duration, time_of_day
		FROM schedule_records ORDER BY recorded_at DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, snapshotLimit)
	if err != nil {
		return nil, fmt.Errorf("querying schedule records: %w", err)
	}
	defer rows.Close()

	var out []ScheduleRecord
	for rows.Next() {
		var r ScheduleRecord
		var completed int
		if err := rows.Scan(&r.Task, &completed, &r.Duration, &r.TimeOfDay); err != nil {
			return nil, fmt.Errorf("scanning schedule record: %w", err)
		}
		r.Completed = completed != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) recentCompletions(ctx context.Context) ([]CompletionRecord, error) {
	query := `SELECT task, time_taken, interruptions, feedback
		FROM completion_records ORDER BY recorded_at DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, snapshotLimit)
	if err != nil {
		return nil, fmt.Errorf("querying completion records: %w", err)
	}
	defer rows.Close()

	var out []CompletionRecord
	for rows.Next() {
		var r CompletionRecord
		if err := rows.Scan(&r.Task, &r.TimeTaken, &r.Interruptions, &r.Feedback); err != nil {
			return nil, fmt.Errorf("scanning completion record: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) RecordSchedule(ctx context.Context, at time.Time, records []ScheduleRecord) error {
	if len(records) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO schedule_records (id, task, completed, duration, time_of_day, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	ts := at.UTC().Format(time.RFC3339)
	for _, r := range records {
		completed := 0
		if r.Completed {
			completed = 1
		}
		if _, err := tx.ExecContext(ctx, query, uuid.NewString(), r.Task, completed, r.Duration, r.TimeOfDay, ts); err != nil {
			return fmt.Errorf("inserting schedule record: %w", err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) RecordCompletion(ctx context.Context, at time.Time, records []CompletionRecord) error {
	if len(records) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO completion_records (id, task, time_taken, interruptions, feedback, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	ts := at.UTC().Format(time.RFC3339)
	for _, r := range records {
		if _, err := tx.ExecContext(ctx, query, uuid.NewString(), r.Task, r.TimeTaken, r.Interruptions, r.Feedback, ts); err != nil {
			return fmt.Errorf("inserting completion record: %w", err)
		}
	}
	return tx.Commit()
}

// RecordedSchedule is one persisted outcome row, for the history listing.
type RecordedSchedule struct {
	Task       string
	Completed  bool
	Duration   string
	TimeOfDay  string
	RecordedAt time.Time
}

// ListSchedules returns persisted schedule outcomes, newest first.
func (s *SQLiteStore) ListSchedules(ctx context.Context, limit int) ([]RecordedSchedule, error) {
	query := `SELECT task, completed, duration, time_of_day, recorded_at
		FROM schedule_records ORDER BY recorded_at DESC, id LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying schedule records: %w", err)
	}
	defer rows.Close()

	var out []RecordedSchedule
	for rows.Next() {
		var r RecordedSchedule
		var completed int
		var ts string
		if err := rows.Scan(&r.Task, &completed, &r.Duration, &r.TimeOfDay, &ts); err != nil {
			return nil, fmt.Errorf("scanning schedule record: %w", err)
		}
		r.Completed = completed != 0
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			r.RecordedAt = t
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
