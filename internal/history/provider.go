// Package history supplies past-schedule and task-completion data to the
// factor-analysis stage, and records new outcomes so future analyses see
// real data instead of the built-in sample.
package history

import (
	"context"
	"time"
)

// Data holds the two JSON blobs the factor-analysis service consumes.
type Data struct {
	ScheduleData       string
	TaskCompletionData string
}

// ScheduleRecord is one past schedule outcome.
type ScheduleRecord struct {
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
	Duration  string `json:"duration"`
	TimeOfDay string `json:"timeOfDay"`
}

// CompletionRecord is one past task-completion observation.
type CompletionRecord struct {
	Task          string `json:"task"`
	TimeTaken     string `json:"timeTaken"`
	Interruptions int    `json:"interruptions"`
	Feedback      string `json:"feedback"`
}

// Provider supplies historical data for factor analysis.
type Provider interface {
	Snapshot(ctx context.Context) (Data, error)
}

// Recorder persists schedule outcomes as they are produced.
type Recorder interface {
	RecordSchedule(ctx context.Context, at time.Time, records []ScheduleRecord) error
	RecordCompletion(ctx context.Context, at time.Time, records []CompletionRecord) error
}
