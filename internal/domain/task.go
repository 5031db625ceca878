package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DescriptionMinLen and DescriptionMaxLen bound the task description,
	// measured in runes so multi-byte input is not over-counted.
	DescriptionMinLen = 3
	DescriptionMaxLen = 200
)

var (
	ErrDescriptionTooShort = errors.New("description must be at least 3 characters")
	ErrDescriptionTooLong  = errors.New("description must be less than 200 characters")
	ErrDeadlineInPast      = errors.New("deadline must not be in the past")
)

// Task is a user-defined unit of work to schedule.
//
// Recurrence and ReminderOn are captured by the form but not consumed by the
// scheduling pipeline; they are carried so a future reminder/recurrence layer
// can read them without a data-model change.
type Task struct {
	ID          string
	Description string
	Deadline    time.Time
	Priority    Priority
	Category    Category
	Recurrence  Recurrence
	ReminderOn  bool
	CreatedAt   time.Time
}

// NewTask validates the given fields and returns a Task with a fresh ID.
// The deadline must not fall before the start of "today" at creation time.
func NewTask(description string, deadline time.Time, priority Priority, category Category, recurrence Recurrence, reminderOn bool) (*Task, error) {
	now := time.Now()
	t := &Task{
		ID:          uuid.NewString(),
		Description: strings.TrimSpace(description),
		Deadline:    deadline,
		Priority:    priority,
		Category:    category,
		Recurrence:  recurrence,
		ReminderOn:  reminderOn,
		CreatedAt:   now,
	}
	if err := t.Validate(now); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the task's invariants against the given reference time.
func (t *Task) Validate(now time.Time) error {
	n := len([]rune(t.Description))
	if n < DescriptionMinLen {
		return ErrDescriptionTooShort
	}
	if n > DescriptionMaxLen {
		return ErrDescriptionTooLong
	}
	if !ValidPriorities[t.Priority] {
		return fmt.Errorf("unknown priority %q", t.Priority)
	}
	if !ValidCategories[t.Category] {
		return fmt.Errorf("unknown category %q", t.Category)
	}
	if !ValidRecurrences[t.Recurrence] {
		return fmt.Errorf("unknown recurrence %q", t.Recurrence)
	}
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if t.Deadline.Before(startOfToday) {
		return ErrDeadlineInPast
	}
	return nil
}

// DeadlineText formats the deadline the way the scheduling model expects it.
func (t *Task) DeadlineText() string {
	return t.Deadline.Format("2006-01-02 15:04")
}
