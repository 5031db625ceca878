package schedule

import (
	"testing"
	"time"

	"github.com/ewhitmore/dayweaver/internal/domain"
	"github.com/ewhitmore/dayweaver/internal/intelligence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func task(t *testing.T, desc string) domain.Task {
	t.Helper()
	tk, err := domain.NewTask(desc, time.Now().AddDate(0, 0, 1), domain.PriorityMedium, domain.CategoryWork, domain.RecurrenceNone, false)
	require.NoError(t, err)
	return *tk
}

func entry(taskText, start, end string) intelligence.ScheduleEntry {
	return intelligence.ScheduleEntry{Task: taskText, StartTime: start, EndTime: end}
}

func TestWindow_Minutes(t *testing.T) {
	assert.Equal(t, 900, DefaultWindow.Minutes())
	assert.Equal(t, 480, Window{StartHour: 9, EndHour: 17}.Minutes())
}

func TestLayout_PositionsRelativeToWindow(t *testing.T) {
	tasks := []domain.Task{task(t, "Write report")}
	entries := []intelligence.ScheduleEntry{entry("Write report", "09:00", "10:30")}

	blocks := Layout(entries, tasks, DefaultWindow)
	require.Len(t, blocks, 1)

	b := blocks[0]
	assert.Equal(t, 120, b.StartMin) // 09:00 is 2h after the 07:00 origin
	assert.Equal(t, 210, b.EndMin)
	assert.Equal(t, 90, b.DurationMin())
	assert.Equal(t, 0, b.Lane)
	assert.True(t, b.InWindow(DefaultWindow))
	assert.Equal(t, "Write report", b.Task.Description)
}

func TestLayout_DropsUnmatchedEntries(t *testing.T) {
	tasks := []domain.Task{task(t, "Real task")}
	entries := []intelligence.ScheduleEntry{
		entry("Real task", "09:00", "10:00"),
		entry("Invented by the model", "10:00", "11:00"),
	}

	blocks := Layout(entries, tasks, DefaultWindow)
	require.Len(t, blocks, 1)
	assert.Equal(t, "Real task", blocks[0].Entry.Task)
}

func TestLayout_DropsMalformedEntries(t *testing.T) {
	tasks := []domain.Task{task(t, "Good task")}
	entries := []intelligence.ScheduleEntry{
		entry("Good task", "9am", "10:00"),    // bad start
		entry("Good task", "09:00", "late"),   // bad end
		entry("Good task", "10:00", "10:00"),  // zero length
		entry("Good task", "11:00", "10:00"),  // inverted
		entry("Good task", "09:00", "10:00"),  // the one survivor
	}

	blocks := Layout(entries, tasks, DefaultWindow)
	require.Len(t, blocks, 1)
	assert.Equal(t, 120, blocks[0].StartMin)
}

func TestLayout_DuplicateDescriptionsResolveToFirstTask(t *testing.T) {
	first := task(t, "Repeated")
	second := task(t, "Repeated")
	entries := []intelligence.ScheduleEntry{entry("Repeated", "08:00", "09:00")}

	blocks := Layout(entries, []domain.Task{first, second}, DefaultWindow)
	require.Len(t, blocks, 1)
	assert.Equal(t, first.ID, blocks[0].Task.ID)
}

func TestLayout_PreservesEntryOrder(t *testing.T) {
	tasks := []domain.Task{task(t, "Task A"), task(t, "Task B")}
	entries := []intelligence.ScheduleEntry{
		entry("Task B", "14:00", "15:00"),
		entry("Task A", "08:00", "09:00"),
	}

	blocks := Layout(entries, tasks, DefaultWindow)
	require.Len(t, blocks, 2)
	assert.Equal(t, "Task B", blocks[0].Entry.Task)
	assert.Equal(t, "Task A", blocks[1].Entry.Task)
}

func TestLayout_OverlapGetsLanes(t *testing.T) {
	tasks := []domain.Task{task(t, "Task A"), task(t, "Task B"), task(t, "Task C")}
	entries := []intelligence.ScheduleEntry{
		entry("Task A", "09:00", "11:00"),
		entry("Task B", "10:00", "12:00"), // overlaps A
		entry("Task C", "11:00", "12:00"), // A has ended; reuses lane 0
	}

	blocks := Layout(entries, tasks, DefaultWindow)
	require.Len(t, blocks, 3)

	byTask := map[string]Block{}
	for _, b := range blocks {
		byTask[b.Entry.Task] = b
	}
	assert.Equal(t, 0, byTask["Task A"].Lane)
	assert.Equal(t, 1, byTask["Task B"].Lane)
	assert.Equal(t, 0, byTask["Task C"].Lane)
}

func TestLayout_UnsortedEntriesLaneCorrectly(t *testing.T) {
	tasks := []domain.Task{task(t, "Task A"), task(t, "Task B")}
	entries := []intelligence.ScheduleEntry{
		entry("Task B", "10:00", "12:00"),
		entry("Task A", "09:00", "11:00"),
	}

	blocks := Layout(entries, tasks, DefaultWindow)
	require.Len(t, blocks, 2)

	// Lanes are assigned in start-time order regardless of input order.
	byTask := map[string]Block{}
	for _, b := range blocks {
		byTask[b.Entry.Task] = b
	}
	assert.Equal(t, 0, byTask["Task A"].Lane)
	assert.Equal(t, 1, byTask["Task B"].Lane)
}

func TestBlock_InWindow(t *testing.T) {
	w := Window{StartHour: 7, EndHour: 22}

	before := Block{StartMin: -120, EndMin: -60} // 05:00-06:00
	assert.False(t, before.InWindow(w))

	spanning := Block{StartMin: -30, EndMin: 30}
	assert.True(t, spanning.InWindow(w))

	after := Block{StartMin: w.Minutes(), EndMin: w.Minutes() + 60}
	assert.False(t, after.InWindow(w))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1h 30m", FormatDuration(90))
	assert.Equal(t, "2h", FormatDuration(120))
	assert.Equal(t, "45m", FormatDuration(45))
	assert.Equal(t, "0m", FormatDuration(0))
}

func TestLayout_EmptyInputs(t *testing.T) {
	assert.Empty(t, Layout(nil, nil, DefaultWindow))
	assert.Empty(t, Layout([]intelligence.ScheduleEntry{entry("Task X", "09:00", "10:00")}, nil, DefaultWindow))
	assert.Empty(t, Layout(nil, []domain.Task{task(t, "Task X")}, DefaultWindow))
}
