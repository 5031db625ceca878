package cli

import "github.com/ewhitmore/dayweaver/internal/intelligence"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Schedule is the current generated schedule, or nil before generation.
	// Each successful generation replaces it wholesale.
	Schedule []intelligence.ScheduleEntry

	// Generating is true while a pipeline run is outstanding. It gates the
	// generate action so only one pipeline runs at a time.
	Generating bool

	// Terminal dimensions.
	Width  int
	Height int
}

// ResetSession clears both the schedule and the task list, returning the
// session to the empty state.
func (s *SharedState) ResetSession() {
	s.Schedule = nil
	s.App.Store.Reset()
}
