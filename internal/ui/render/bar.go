package render

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/ui/theme"
)

var (
	barFilled = lipgloss.NewStyle().Foreground(theme.Secondary)
	barEmpty  = lipgloss.NewStyle().Foreground(theme.Border)
)

// xpBar draws percent (0-100) as a fixed-width bar.
func xpBar(painter theme.Painter, percent, width int) string {
	if width < 4 {
		width = 4
	}
	filled := min(max(percent*width/100, 0), width)
	return painter.Paint(barFilled, strings.Repeat("█", filled)) +
		painter.Paint(barEmpty, strings.Repeat("░", width-filled))
}
