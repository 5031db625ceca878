package intelligence

// FactorAnalysisInput carries the two opaque JSON blobs describing past
// outcomes. Both are interpolated verbatim into the analysis prompt.
type FactorAnalysisInput struct {
	// ScheduleData is a JSON array of past schedule records: task details,
	// deadlines, priorities, completion status, notes.
	ScheduleData string `json:"scheduleData"`

	// TaskCompletionData is a JSON array of completion records: time taken,
	// interruptions, user feedback.
	TaskCompletionData string `json:"taskCompletionData"`
}

// FactorAnalysisResult is the structured output of factor analysis.
// Produced fresh per generation request; never cached.
type FactorAnalysisResult struct {
	// SignificantFactors lists the variables most correlated with past
	// productivity, most significant first.
	SignificantFactors []string `json:"significantFactors"`

	// Recommendations is free text advising how to optimize future schedules.
	Recommendations string `json:"recommendations"`
}

// TaskDescriptor is the scheduling model's view of one task.
type TaskDescriptor struct {
	Description string `json:"description"`
	Deadline    string `json:"deadline"` // "2006-01-02 15:04"
	Priority    string `json:"priority"` // "low" | "medium" | "high"
}

// ScheduleRequest is the input to schedule generation.
type ScheduleRequest struct {
	Tasks          []TaskDescriptor `json:"tasks"`
	UserPriorities string           `json:"userPriorities"`
}

// ScheduleEntry is one (task, start, end) assignment in a generated schedule.
// The task text is expected to echo a request descriptor's description; the
// presentation layer matches on it. Times are "HH:MM" 24-hour text.
//
// Entries are untrusted with respect to ordering and overlap: the model is
// asked to avoid conflicts but nothing downstream may assume it succeeded.
type ScheduleEntry struct {
	Task      string `json:"task"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ScheduleResult is the structured output of schedule generation.
// Each generation replaces any prior schedule wholesale.
type ScheduleResult struct {
	Schedule []ScheduleEntry `json:"schedule"`
}
