// Package orchestrator sequences the two model calls behind schedule
// generation: historical factor analysis, then schedule generation seeded
// with the analysis recommendations.
package orchestrator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/ewhitmore/dayweaver/internal/domain"
	"github.com/ewhitmore/dayweaver/internal/history"
	"github.com/ewhitmore/dayweaver/internal/intelligence"
	"github.com/ewhitmore/dayweaver/internal/schedule"
)

// FailureMessage is the single user-facing message for any pipeline failure.
// The underlying cause is logged, not surfaced: the user can't act on a
// schema violation, only retry.
const FailureMessage = "Failed to generate schedule. Please try again."

// fallbackPriorities seeds schedule generation when factor analysis produces
// no recommendations.
const fallbackPriorities = "I perform best on complex tasks in the morning. " +
	"I prefer to have a lunch break around 1 PM. " +
	"Shorter tasks and meetings are better for the afternoon."

var (
	// ErrNoTasks is returned when generation is requested with an empty task
	// list. Rejected before any model call.
	ErrNoTasks = errors.New("at least one task is required to generate a schedule")

	// ErrGenerationFailed is returned for every downstream failure. Callers
	// present FailureMessage; diagnostics go to the log.
	ErrGenerationFailed = errors.New("schedule generation failed")
)

// Result is a successful pipeline outcome.
type Result struct {
	Schedule []intelligence.ScheduleEntry

	// Factors carries the factor-analysis output that seeded the schedule,
	// for display or diagnostics.
	Factors intelligence.FactorAnalysisResult
}

// Service runs the generation pipeline. The history provider is injected so
// a persistent store can replace the built-in sample without touching the
// pipeline.
type Service struct {
	provider  history.Provider
	factors   intelligence.FactorAnalysisService
	schedules intelligence.ScheduleGenerationService
	recorder  history.Recorder // nil disables outcome recording
	log       *slog.Logger
}

// New creates a pipeline Service. recorder may be nil; logW may be nil to
// discard diagnostics.
func New(provider history.Provider, factors intelligence.FactorAnalysisService, schedules intelligence.ScheduleGenerationService, recorder history.Recorder, logW io.Writer) *Service {
	if logW == nil {
		logW = io.Discard
	}
	return &Service{
		provider:  provider,
		factors:   factors,
		schedules: schedules,
		recorder:  recorder,
		log:       slog.New(slog.NewTextHandler(logW, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

// GenerateSchedule runs the full pipeline for the given tasks. It returns
// either a schedule or an error, never both. If factor analysis fails, the
// schedule service is never invoked.
func (s *Service) GenerateSchedule(ctx context.Context, tasks []domain.Task) (*Result, error) {
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}

	data, err := s.provider.Snapshot(ctx)
	if err != nil {
		s.log.Error("pipeline_failed", "stage", "history", "error", err.Error())
		return nil, ErrGenerationFailed
	}

	factors, err := s.factors.Determine(ctx, intelligence.FactorAnalysisInput{
		ScheduleData:       data.ScheduleData,
		TaskCompletionData: data.TaskCompletionData,
	})
	if err != nil {
		s.log.Error("pipeline_failed", "stage", "factor_analysis", "error", err.Error())
		return nil, ErrGenerationFailed
	}

	userPriorities := factors.Recommendations
	if userPriorities == "" {
		userPriorities = fallbackPriorities
	}

	req := intelligence.ScheduleRequest{
		Tasks:          mapTasks(tasks),
		UserPriorities: userPriorities,
	}

	result, err := s.schedules.Generate(ctx, req)
	if err != nil {
		s.log.Error("pipeline_failed", "stage", "schedule_generation", "error", err.Error())
		return nil, ErrGenerationFailed
	}

	s.recordOutcome(ctx, result.Schedule)

	s.log.Info("pipeline_complete",
		"tasks", len(tasks),
		"entries", len(result.Schedule),
		"factors", len(factors.SignificantFactors))

	return &Result{Schedule: result.Schedule, Factors: *factors}, nil
}

func mapTasks(tasks []domain.Task) []intelligence.TaskDescriptor {
	out := make([]intelligence.TaskDescriptor, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, intelligence.TaskDescriptor{
			Description: t.Description,
			Deadline:    t.DeadlineText(),
			Priority:    string(t.Priority),
		})
	}
	return out
}

// recordOutcome persists the generated schedule so future factor analyses
// see real data. Recording is best-effort: a storage failure is logged and
// never fails a generation the user already has in hand.
func (s *Service) recordOutcome(ctx context.Context, entries []intelligence.ScheduleEntry) {
	if s.recorder == nil || len(entries) == 0 {
		return
	}

	now := time.Now()
	records := make([]history.ScheduleRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, history.ScheduleRecord{
			Task:      e.Task,
			Completed: false,
			Duration:  entryDuration(e),
			TimeOfDay: timeOfDay(e.StartTime),
		})
	}

	if err := s.recorder.RecordSchedule(ctx, now, records); err != nil {
		s.log.Error("record_outcome_failed", "error", err.Error())
	}
}

// entryDuration formats the span of a schedule entry, e.g. "1h 30m".
// Unparseable or inverted times yield an empty duration.
func entryDuration(e intelligence.ScheduleEntry) string {
	start, errS := time.Parse("15:04", e.StartTime)
	end, errE := time.Parse("15:04", e.EndTime)
	if errS != nil || errE != nil || !end.After(start) {
		return ""
	}
	return schedule.FormatDuration(int(end.Sub(start).Minutes()))
}

func timeOfDay(startTime string) string {
	t, err := time.Parse("15:04", startTime)
	if err != nil {
		return ""
	}
	switch {
	case t.Hour() < 12:
		return "morning"
	case t.Hour() < 17:
		return "afternoon"
	default:
		return "evening"
	}
}
