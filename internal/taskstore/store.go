// Package taskstore holds the tasks entered during the current session.
//
// The store is deliberately in-memory only: tasks live for one planning
// session and are discarded wholesale on reset. Persistence is the history
// layer's job, not this one's.
package taskstore

import (
	"sync"

	"github.com/ewhitmore/dayweaver/internal/domain"
)

// Store is an ordered, append-only list of session tasks.
// Insertion order is render order.
type Store struct {
	mu    sync.Mutex
	tasks []domain.Task
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// Add appends the task, preserving the order of existing tasks.
func (s *Store) Add(t domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, t)
}

// Tasks returns a copy of the current task list in insertion order.
func (s *Store) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len reports the number of stored tasks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// FindByDescription returns the first task whose description equals desc.
// Duplicate descriptions resolve to the earliest insertion.
func (s *Store) FindByDescription(desc string) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.Description == desc {
			return t, true
		}
	}
	return domain.Task{}, false
}

// Reset discards all tasks, returning the store to the empty state.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = nil
}
