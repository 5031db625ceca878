package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/ewhitmore/dayweaver/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	conn, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewSQLiteStore(conn)
}

func TestSQLiteStore_EmptyFallsBackToSample(t *testing.T) {
	store := testStore(t)

	data, err := store.Snapshot(context.Background())
	require.NoError(t, err)

	sample, err := NewSampleProvider().Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sample, data)
	assert.Contains(t, data.ScheduleData, "Write Q3 report")
}

func TestSQLiteStore_RecordAndSnapshot(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	err := store.RecordSchedule(ctx, now, []ScheduleRecord{
		{Task: "Plan sprint", Completed: true, Duration: "1h", TimeOfDay: "morning"},
	})
	require.NoError(t, err)

	err = store.RecordCompletion(ctx, now, []CompletionRecord{
		{Task: "Plan sprint", TimeTaken: "50m", Interruptions: 2, Feedback: "Ran long"},
	})
	require.NoError(t, err)

	data, err := store.Snapshot(ctx)
	require.NoError(t, err)

	var schedules []ScheduleRecord
	require.NoError(t, json.Unmarshal([]byte(data.ScheduleData), &schedules))
	require.Len(t, schedules, 1)
	assert.Equal(t, "Plan sprint", schedules[0].Task)
	assert.True(t, schedules[0].Completed)

	var completions []CompletionRecord
	require.NoError(t, json.Unmarshal([]byte(data.TaskCompletionData), &completions))
	require.Len(t, completions, 1)
	assert.Equal(t, 2, completions[0].Interruptions)
	assert.Equal(t, "Ran long", completions[0].Feedback)

	// Real data replaces the sample entirely.
	assert.NotContains(t, data.ScheduleData, "Write Q3 report")
}

func TestSQLiteStore_SnapshotIsValidJSON(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.RecordSchedule(context.Background(), time.Now(), []ScheduleRecord{
		{Task: `Quote "me" \ properly`, TimeOfDay: "evening"},
	}))

	data, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(data.ScheduleData)))
	assert.True(t, json.Valid([]byte(data.TaskCompletionData)))
}

func TestSQLiteStore_RecordEmptyIsNoop(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.RecordSchedule(context.Background(), time.Now(), nil))
	require.NoError(t, store.RecordCompletion(context.Background(), time.Now(), nil))

	records, err := store.ListSchedules(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSQLiteStore_ListSchedules(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	older := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.RecordSchedule(ctx, older, []ScheduleRecord{
		{Task: "Old task", Duration: "1h", TimeOfDay: "morning"},
	}))
	require.NoError(t, store.RecordSchedule(ctx, newer, []ScheduleRecord{
		{Task: "New task", Completed: true, Duration: "30m", TimeOfDay: "afternoon"},
	}))

	records, err := store.ListSchedules(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "New task", records[0].Task)
	assert.True(t, records[0].Completed)
	assert.Equal(t, newer, records[0].RecordedAt)
	assert.Equal(t, "Old task", records[1].Task)

	limited, err := store.ListSchedules(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "New task", limited[0].Task)
}

func TestSampleProvider_Shape(t *testing.T) {
	data, err := NewSampleProvider().Snapshot(context.Background())
	require.NoError(t, err)

	var schedules []ScheduleRecord
	require.NoError(t, json.Unmarshal([]byte(data.ScheduleData), &schedules))
	require.Len(t, schedules, 2)

	var completions []CompletionRecord
	require.NoError(t, json.Unmarshal([]byte(data.TaskCompletionData), &completions))
	require.Len(t, completions, 2)
	assert.Equal(t, "Felt focused", completions[0].Feedback)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	conn, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, db.Migrate(conn))
	require.NoError(t, db.Migrate(conn))

	assertTableExists(t, conn, "schedule_records")
	assertTableExists(t, conn, "completion_records")
}

func assertTableExists(t *testing.T, conn *sql.DB, name string) {
	t.Helper()
	var got string
	err := conn.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", name).Scan(&got)
	require.NoError(t, err)
	assert.Equal(t, name, got)
}
