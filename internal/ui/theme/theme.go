package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Rule = lipgloss.NewStyle().
		Foreground(Border)
)

// Skill statuses
var (
	Locked = lipgloss.NewStyle().
		Foreground(TextDim)

	Unlocked = lipgloss.NewStyle().
			Foreground(Secondary)

	InProgress = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	Completed = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)
)

// Roadmap
var (
	Preparation = lipgloss.NewStyle().
			Foreground(TextDim)

	Core = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// Painter renders text with a style, or leaves it untouched when colour is off.
type Painter struct {
	Color bool
}

// Paint renders s with style when colour is enabled.
func (p Painter) Paint(style lipgloss.Style, s string) string {
	if !p.Color {
		return s
	}
	return style.Render(s)
}
