package domain

import "fmt"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[Priority]bool{
	PriorityLow: true, PriorityMedium: true, PriorityHigh: true,
}

// ParsePriority converts s into a Priority, rejecting unknown values.
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !ValidPriorities[p] {
		return "", fmt.Errorf("unknown priority %q", s)
	}
	return p, nil
}

type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryLearning Category = "learning"
	CategoryFitness  Category = "fitness"
	CategoryChore    Category = "chore"
)

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[Category]bool{
	CategoryWork: true, CategoryPersonal: true, CategoryLearning: true,
	CategoryFitness: true, CategoryChore: true,
}

// ParseCategory converts s into a Category, rejecting unknown values.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !ValidCategories[c] {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

type Recurrence string

const (
	RecurrenceNone   Recurrence = "none"
	RecurrenceDaily  Recurrence = "daily"
	RecurrenceWeekly Recurrence = "weekly"
)

// ValidRecurrences is the canonical set of accepted recurrence strings.
var ValidRecurrences = map[Recurrence]bool{
	RecurrenceNone: true, RecurrenceDaily: true, RecurrenceWeekly: true,
}

// ParseRecurrence converts s into a Recurrence, rejecting unknown values.
func ParseRecurrence(s string) (Recurrence, error) {
	r := Recurrence(s)
	if !ValidRecurrences[r] {
		return "", fmt.Errorf("unknown recurrence %q", s)
	}
	return r, nil
}
