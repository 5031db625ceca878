package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/ewhitmore/dayweaver/internal/cli/formatter"
	"github.com/ewhitmore/dayweaver/internal/domain"
)

// taskFormFields holds form-bound values for the add-task wizard.
type taskFormFields struct {
	description  string
	deadlineDate string
	deadlineTime string
	priority     string
	category     string
	recurrence   string
	reminderOn   bool
}

// newTaskFormView creates the add-task wizard. Defaults mirror the form the
// user sees on first launch: medium priority, personal category, reminder on,
// deadline tomorrow.
func newTaskFormView(state *SharedState) View {
	f := &taskFormFields{
		deadlineDate: time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		priority:     string(domain.PriorityMedium),
		category:     string(domain.CategoryPersonal),
		recurrence:   string(domain.RecurrenceNone),
		reminderOn:   true,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Placeholder("e.g., Finish the quarterly report").
				Value(&f.description).
				Validate(validateDescription),
			huh.NewInput().
				Title("Deadline (YYYY-MM-DD)").
				Placeholder(f.deadlineDate).
				Value(&f.deadlineDate).
				Validate(validateDeadlineDate),
			huh.NewInput().
				Title("Deadline Time (HH:MM, blank for end of day)").
				Placeholder("17:00").
				Value(&f.deadlineTime).
				Validate(validateOptionalClock),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("High", string(domain.PriorityHigh)),
					huh.NewOption("Medium", string(domain.PriorityMedium)),
					huh.NewOption("Low", string(domain.PriorityLow)),
				).
				Value(&f.priority),
			huh.NewSelect[string]().
				Title("Category").
				Options(
					huh.NewOption("Work", string(domain.CategoryWork)),
					huh.NewOption("Personal", string(domain.CategoryPersonal)),
					huh.NewOption("Learning", string(domain.CategoryLearning)),
					huh.NewOption("Fitness", string(domain.CategoryFitness)),
					huh.NewOption("Chore", string(domain.CategoryChore)),
				).
				Value(&f.category),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Recurrence").
				Options(
					huh.NewOption("None", string(domain.RecurrenceNone)),
					huh.NewOption("Daily", string(domain.RecurrenceDaily)),
					huh.NewOption("Weekly", string(domain.RecurrenceWeekly)),
				).
				Value(&f.recurrence),
			huh.NewConfirm().
				Title("Reminders").
				Description("Get notifications for this task.").
				Affirmative("On").
				Negative("Off").
				Value(&f.reminderOn),
		),
	).WithTheme(dayweaverHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg { return submitTask(state, f) }
	}

	return newWizardView(state, "Add Task", form, done)
}

// submitTask builds the Task from the form fields and appends it to the
// session store. Validation already ran field by field; the constructor is
// the backstop against anything the form let through.
func submitTask(state *SharedState, f *taskFormFields) tea.Msg {
	deadline, err := parseDeadline(f.deadlineDate, f.deadlineTime)
	if err != nil {
		return noticeMsg{text: err.Error(), isError: true}
	}

	task, err := domain.NewTask(
		f.description,
		deadline,
		domain.Priority(f.priority),
		domain.Category(f.category),
		domain.Recurrence(f.recurrence),
		f.reminderOn,
	)
	if err != nil {
		return noticeMsg{text: err.Error(), isError: true}
	}

	state.App.Store.Add(*task)
	return noticeMsg{text: fmt.Sprintf("%s Added: %s", formatter.StyleGreen.Render("✔"), formatter.Bold(task.Description))}
}

// parseDeadline combines the date and optional time fields. A blank time
// means end of day.
func parseDeadline(date, clock string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("deadline: use YYYY-MM-DD format")
	}
	if clock == "" {
		return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 0, 0, time.Local), nil
	}
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("deadline time: use HH:MM (24-hour)")
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
}
