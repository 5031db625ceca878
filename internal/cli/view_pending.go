package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ewhitmore/dayweaver/internal/cli/formatter"
	"github.com/ewhitmore/dayweaver/internal/orchestrator"
)

// scheduleGeneratedMsg delivers the pipeline outcome back to the TUI.
type scheduleGeneratedMsg struct {
	result *orchestrator.Result
	err    error
}

// pendingView lists the tasks waiting to be scheduled and drives generation.
type pendingView struct {
	state *SharedState
	spin  spinner.Model
}

func newPendingView(state *SharedState) *pendingView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(formatter.ColorPurple)
	return &pendingView{state: state, spin: sp}
}

func (v *pendingView) ID() ViewID    { return ViewPending }
func (v *pendingView) Title() string { return "My Day" }

func (v *pendingView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate schedule")),
	}
}

func (v *pendingView) Init() tea.Cmd {
	return nil
}

func (v *pendingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case spinner.TickMsg:
		if !v.state.Generating {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case scheduleGeneratedMsg:
		v.state.Generating = false
		if msg.err != nil {
			// The task list is left intact; the user can retry.
			return v, notifyError(failureText(msg.err))
		}
		v.state.Schedule = msg.result.Schedule
		return v, tea.Batch(
			replaceView(newScheduleView(v.state)),
			notify("Your personalized schedule is ready!"),
		)

	case tea.KeyMsg:
		switch msg.String() {
		case "a":
			if v.state.Generating {
				return v, nil
			}
			return v, pushView(newTaskFormView(v.state))
		case "g":
			return v, v.generate()
		}
	}

	return v, nil
}

// generate starts the pipeline unless one is already in flight or there is
// nothing to schedule.
func (v *pendingView) generate() tea.Cmd {
	if v.state.Generating {
		return nil
	}
	if v.state.App.Store.Len() == 0 {
		return notifyError("Add at least one task before generating a schedule.")
	}

	v.state.Generating = true
	pipeline := v.state.App.Pipeline
	tasks := v.state.App.Store.Tasks()

	run := func() tea.Msg {
		result, err := pipeline.GenerateSchedule(context.Background(), tasks)
		return scheduleGeneratedMsg{result: result, err: err}
	}

	return tea.Batch(v.spin.Tick, run)
}

func (v *pendingView) View() string {
	var b strings.Builder

	tasks := v.state.App.Store.Tasks()

	b.WriteString("\n")
	if len(tasks) == 0 {
		b.WriteString("  " + formatter.Bold("Ready to weave your day?") + "\n\n")
		b.WriteString("  " + formatter.Dim("Add tasks with 'a' and let the model craft your schedule.") + "\n")
	} else {
		b.WriteString("  " + formatter.Header("Tasks to Schedule") + "\n")
		for _, t := range tasks {
			fmt.Fprintf(&b, "  %s %s  %s %s\n",
				formatter.CategorySwatch(t.Category),
				t.Description,
				formatter.PriorityBadge(t.Priority),
				formatter.Dim("due "+t.Deadline.Format("Jan 2 15:04")))
		}
		fmt.Fprintf(&b, "\n  %s\n", formatter.Dim(fmt.Sprintf("%d task(s) ready.", len(tasks))))
	}

	if v.state.Generating {
		b.WriteString("\n  " + v.spin.View() + formatter.Dim(" Generating...") + "\n")
	}

	return b.String()
}

// failureText maps a pipeline error to its user-facing message.
func failureText(err error) string {
	if errors.Is(err, orchestrator.ErrNoTasks) {
		return "Add at least one task before generating a schedule."
	}
	return orchestrator.FailureMessage
}
