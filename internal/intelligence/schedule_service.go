package intelligence

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ewhitmore/dayweaver/internal/domain"
	"github.com/ewhitmore/dayweaver/internal/llm"
)

// deadlineLayout is the wire format for task deadlines in schedule requests.
const deadlineLayout = "2006-01-02 15:04"

var clockTimeRe = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)

// ScheduleGenerationService produces a daily schedule for a task list.
type ScheduleGenerationService interface {
	// Generate makes a single model attempt to schedule the given tasks.
	// Fails with llm.ErrValidation, llm.ErrService, or llm.ErrSchemaViolation.
	// The returned entries are not guaranteed sorted or conflict-free.
	Generate(ctx context.Context, req ScheduleRequest) (*ScheduleResult, error)
}

type scheduleGenerationService struct {
	client llm.Client
}

// NewScheduleGenerationService creates a ScheduleGenerationService backed by
// an LLM client.
func NewScheduleGenerationService(client llm.Client) ScheduleGenerationService {
	return &scheduleGenerationService{client: client}
}

func (s *scheduleGenerationService) Generate(ctx context.Context, req ScheduleRequest) (*ScheduleResult, error) {
	if err := validateScheduleRequest(req); err != nil {
		return nil, err
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskScheduleGen,
		SystemPrompt: scheduleGenSystemPrompt,
		UserPrompt:   buildSchedulePrompt(req),
	})
	if err != nil {
		return nil, fmt.Errorf("schedule generation: %w", err)
	}

	result, err := llm.ExtractJSON[ScheduleResult](resp.Text, validateScheduleResult)
	if err != nil {
		return nil, fmt.Errorf("schedule generation: %w", err)
	}
	return &result, nil
}

func validateScheduleRequest(req ScheduleRequest) error {
	if len(req.Tasks) == 0 {
		return fmt.Errorf("%w: at least one task is required", llm.ErrValidation)
	}
	for i, t := range req.Tasks {
		if strings.TrimSpace(t.Description) == "" {
			return fmt.Errorf("%w: tasks[%d] description is required", llm.ErrValidation, i)
		}
		if _, err := time.Parse(deadlineLayout, t.Deadline); err != nil {
			return fmt.Errorf("%w: tasks[%d] deadline %q is not in YYYY-MM-DD HH:MM format", llm.ErrValidation, i, t.Deadline)
		}
		if _, err := domain.ParsePriority(t.Priority); err != nil {
			return fmt.Errorf("%w: tasks[%d]: %v", llm.ErrValidation, i, err)
		}
	}
	return nil
}

// buildSchedulePrompt iterates the task list into a bulleted prompt section,
// mirroring the instruction template's wording.
func buildSchedulePrompt(req ScheduleRequest) string {
	var b strings.Builder

	b.WriteString("Tasks:\n")
	for _, t := range req.Tasks {
		fmt.Fprintf(&b, "- Description: %s, Deadline: %s, Priority: %s\n", t.Description, t.Deadline, t.Priority)
	}

	b.WriteString("\nUser Priorities: ")
	b.WriteString(req.UserPriorities)

	b.WriteString("\n\nOutput the schedule as a JSON object.")

	return b.String()
}

func validateScheduleResult(r ScheduleResult) error {
	if r.Schedule == nil {
		return fmt.Errorf("schedule field is required")
	}
	for i, e := range r.Schedule {
		if strings.TrimSpace(e.Task) == "" {
			return fmt.Errorf("schedule[%d] task is empty", i)
		}
		if !clockTimeRe.MatchString(e.StartTime) {
			return fmt.Errorf("schedule[%d] startTime %q is not HH:MM", i, e.StartTime)
		}
		if !clockTimeRe.MatchString(e.EndTime) {
			return fmt.Errorf("schedule[%d] endTime %q is not HH:MM", i, e.EndTime)
		}
	}
	return nil
}
