package history

import (
	"context"
	"encoding/json"
	"fmt"
)

// sampleScheduleRecords and sampleCompletionRecords stand in for real history
// until the user has generated at least one schedule.
var sampleScheduleRecords = []ScheduleRecord{
	{Task: "Write Q3 report", Completed: true, Duration: "2 hours", TimeOfDay: "morning"},
	{Task: "Team meeting", Completed: true, Duration: "1 hour", TimeOfDay: "afternoon"},
}

var sampleCompletionRecords = []CompletionRecord{
	{Task: "Write Q3 report", TimeTaken: "1.5 hours", Interruptions: 1, Feedback: "Felt focused"},
	{Task: "Team meeting", TimeTaken: "1 hour", Interruptions: 0, Feedback: "Productive discussion"},
}

// SampleProvider serves a fixed set of example records. It is the default
// Provider when no history database is configured.
type SampleProvider struct{}

// NewSampleProvider returns a Provider backed by the built-in sample records.
func NewSampleProvider() SampleProvider {
	return SampleProvider{}
}

func (SampleProvider) Snapshot(context.Context) (Data, error) {
	return marshalData(sampleScheduleRecords, sampleCompletionRecords)
}

func marshalData(schedules []ScheduleRecord, completions []CompletionRecord) (Data, error) {
	sd, err := json.Marshal(schedules)
	if err != nil {
		return Data{}, fmt.Errorf("marshaling schedule records: %w", err)
	}
	cd, err := json.Marshal(completions)
	if err != nil {
		return Data{}, fmt.Errorf("marshaling completion records: %w", err)
	}
	return Data{ScheduleData: string(sd), TaskCompletionData: string(cd)}, nil
}
