// Package formatter holds the shared color palette and small text helpers
// used across the TUI.
package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ewhitmore/dayweaver/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorOrange).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// categoryColors maps each task category to its block/swatch color.
// Color is determined solely by the category enum, never by schedule content.
var categoryColors = map[domain.Category]lipgloss.Color{
	domain.CategoryWork:     ColorBlue,
	domain.CategoryPersonal: ColorPurple,
	domain.CategoryLearning: ColorGreen,
	domain.CategoryFitness:  ColorOrange,
	domain.CategoryChore:    ColorAqua,
}

// CategoryColor returns the color assigned to the given category.
func CategoryColor(c domain.Category) lipgloss.Color {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return ColorDim
}

// CategorySwatch returns a colored bar used to tag rows and blocks.
func CategorySwatch(c domain.Category) string {
	return lipgloss.NewStyle().Foreground(CategoryColor(c)).Render("▍")
}

// PriorityBadge returns a colored priority label such as "HIGH".
// Text and color depend only on the priority enum.
func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("HIGH")
	case domain.PriorityMedium:
		return StyleYellow.Render("MED")
	case domain.PriorityLow:
		return StyleGreen.Render("LOW")
	default:
		return StyleDim.Render(strings.ToUpper(string(p)))
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
