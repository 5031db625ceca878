// Package schedule turns a generated schedule into positioned blocks for the
// day grid. The math lives here, away from the TUI, so it can be tested
// without a terminal.
//
// Model output is untrusted: entries may be unsorted, may overlap, and may
// name tasks the user never entered. Unmatched entries are dropped silently;
// overlapping entries are placed in side-by-side lanes rather than rejected.
package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/ewhitmore/dayweaver/internal/domain"
	"github.com/ewhitmore/dayweaver/internal/intelligence"
)

// Window is the visible day span of the grid, in whole hours.
type Window struct {
	StartHour int
	EndHour   int
}

// DefaultWindow covers the waking day shown by the grid.
var DefaultWindow = Window{StartHour: 7, EndHour: 22}

// Minutes reports the window's span in minutes.
func (w Window) Minutes() int {
	return (w.EndHour - w.StartHour) * 60
}

// Block is one schedule entry resolved against the task store and positioned
// relative to the window origin.
type Block struct {
	Entry intelligence.ScheduleEntry
	Task  domain.Task

	// StartMin and EndMin are minutes since the window's start hour. They may
	// be negative or exceed the window span; rendering clamps them.
	StartMin int
	EndMin   int

	// Lane separates overlapping blocks horizontally. Non-overlapping blocks
	// all get lane 0.
	Lane int
}

// DurationMin reports the block's length in minutes.
func (b Block) DurationMin() int {
	return b.EndMin - b.StartMin
}

// FormatDuration renders a minute count as "1h 30m", "45m", or "2h".
// Shared by the grid cards and the history rows so the two never drift.
func FormatDuration(minutes int) string {
	h, m := minutes/60, minutes%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// InWindow reports whether any part of the block falls inside the window.
func (b Block) InWindow(w Window) bool {
	return b.EndMin > 0 && b.StartMin < w.Minutes()
}

// Layout resolves entries against tasks and computes block positions.
//
// Entries whose task text matches no stored task description are omitted, as
// are entries with unparseable times or an end at/before the start. Duplicate
// task descriptions resolve to the first match, deterministically. Input
// order is preserved in the returned slice.
func Layout(entries []intelligence.ScheduleEntry, tasks []domain.Task, w Window) []Block {
	byDesc := make(map[string]domain.Task, len(tasks))
	for _, t := range tasks {
		if _, ok := byDesc[t.Description]; !ok {
			byDesc[t.Description] = t
		}
	}

	origin := w.StartHour * 60
	blocks := make([]Block, 0, len(entries))
	for _, e := range entries {
		task, ok := byDesc[e.Task]
		if !ok {
			continue
		}
		start, okS := parseClock(e.StartTime)
		end, okE := parseClock(e.EndTime)
		if !okS || !okE || end <= start {
			continue
		}
		blocks = append(blocks, Block{
			Entry:    e,
			Task:     task,
			StartMin: start - origin,
			EndMin:   end - origin,
		})
	}

	assignLanes(blocks)
	return blocks
}

// assignLanes gives each block the lowest lane that has no time overlap with
// an earlier-starting block in that lane.
func assignLanes(blocks []Block) {
	order := make([]int, len(blocks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return blocks[order[a]].StartMin < blocks[order[b]].StartMin
	})

	var laneEnds []int // current end minute per lane
	for _, idx := range order {
		b := &blocks[idx]
		placed := false
		for lane, end := range laneEnds {
			if b.StartMin >= end {
				b.Lane = lane
				laneEnds[lane] = b.EndMin
				placed = true
				break
			}
		}
		if !placed {
			b.Lane = len(laneEnds)
			laneEnds = append(laneEnds, b.EndMin)
		}
	}
}

// parseClock parses "HH:MM" into minutes since midnight.
func parseClock(s string) (int, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
