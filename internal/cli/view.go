package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewPending ViewID = iota
	ViewSchedule
	ViewForm
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// ── navigation and notification messages ─────────────────────────────────────

// pushViewMsg pushes a view onto the stack.
type pushViewMsg struct{ view View }

// popViewMsg pops the top view off the stack.
type popViewMsg struct{}

// replaceViewMsg swaps the top of the stack for a new view.
type replaceViewMsg struct{ view View }

// noticeMsg displays a transient message in the footer. Cleared on the next
// keypress.
type noticeMsg struct {
	text    string
	isError bool
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

func notify(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text} }
}

func notifyError(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text, isError: true} }
}
