package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ewhitmore/dayweaver/internal/cli/formatter"
	"github.com/ewhitmore/dayweaver/internal/schedule"
)

// scheduleView renders the generated schedule as an hour-by-hour day grid.
type scheduleView struct {
	state  *SharedState
	window schedule.Window
}

func newScheduleView(state *SharedState) *scheduleView {
	return &scheduleView{state: state, window: schedule.DefaultWindow}
}

func (v *scheduleView) ID() ViewID    { return ViewSchedule }
func (v *scheduleView) Title() string { return "Schedule" }

func (v *scheduleView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "start over")),
	}
}

func (v *scheduleView) Init() tea.Cmd {
	return nil
}

func (v *scheduleView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "r" {
		v.state.ResetSession()
		return v, tea.Batch(
			replaceView(newPendingView(v.state)),
			notify("Session cleared. Add tasks for a fresh schedule."),
		)
	}
	return v, nil
}

func (v *scheduleView) View() string {
	blocks := schedule.Layout(v.state.Schedule, v.state.App.Store.Tasks(), v.window)

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Your Day") + "\n")

	if len(blocks) == 0 {
		b.WriteString("  " + formatter.Dim("The model produced no entries that match your tasks.") + "\n")
		return b.String()
	}

	for hour := v.window.StartHour; hour < v.window.EndHour; hour++ {
		label := formatter.Dim(fmt.Sprintf("%02d:00", hour))
		cards := v.cardsStartingAt(blocks, hour)

		if len(cards) == 0 {
			fmt.Fprintf(&b, "  %s %s\n", label, formatter.Dim("│"))
			continue
		}

		row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
		for i, line := range strings.Split(row, "\n") {
			if i == 0 {
				fmt.Fprintf(&b, "  %s %s %s\n", label, formatter.Dim("│"), line)
			} else {
				fmt.Fprintf(&b, "  %s %s %s\n", strings.Repeat(" ", 5), formatter.Dim("│"), line)
			}
		}
	}

	return b.String()
}

// cardsStartingAt renders a card per block whose start falls within the given
// hour, ordered by lane so overlapping blocks sit side by side.
func (v *scheduleView) cardsStartingAt(blocks []schedule.Block, hour int) []string {
	hourStart := (hour - v.window.StartHour) * 60
	hourEnd := hourStart + 60

	byLane := make(map[int]schedule.Block)
	maxLane := -1
	for _, blk := range blocks {
		if !blk.InWindow(v.window) {
			continue
		}
		// A start before the window clamps to the first row so entries
		// spanning the window edge stay visible.
		start := blk.StartMin
		if start < 0 {
			start = 0
		}
		if start >= hourStart && start < hourEnd {
			byLane[blk.Lane] = blk
			if blk.Lane > maxLane {
				maxLane = blk.Lane
			}
		}
	}

	var cards []string
	for lane := 0; lane <= maxLane; lane++ {
		blk, ok := byLane[lane]
		if !ok {
			continue
		}
		cards = append(cards, v.renderCard(blk))
	}
	return cards
}

func (v *scheduleView) renderCard(blk schedule.Block) string {
	title := fmt.Sprintf("%s %s %s",
		formatter.CategorySwatch(blk.Task.Category),
		formatter.Bold(blk.Task.Description),
		formatter.PriorityBadge(blk.Task.Priority))
	detail := fmt.Sprintf("  %s",
		formatter.Dim(fmt.Sprintf("%s–%s (%s)", blk.Entry.StartTime, blk.Entry.EndTime, schedule.FormatDuration(blk.DurationMin()))))

	card := title + "\n" + detail
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(formatter.CategoryColor(blk.Task.Category)).
		PaddingRight(2).
		Render(card)
}
