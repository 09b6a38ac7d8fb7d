// Package render prints catalog listings and analysis results as terminal
// text for the CLI.
package render

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/abhisek/pathwise/internal/career"
	"github.com/abhisek/pathwise/internal/gap"
	"github.com/abhisek/pathwise/internal/progress"
	"github.com/abhisek/pathwise/internal/roadmap"
	"github.com/abhisek/pathwise/internal/skillgraph"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

const (
	ruleChar = "─"
	barWidth = 12
)

// Printer writes rendered output to W.
type Printer struct {
	W       io.Writer
	Painter theme.Painter
}

// New creates a Printer. color toggles ANSI styling.
func New(w io.Writer, color bool) *Printer {
	return &Printer{W: w, Painter: theme.Painter{Color: color}}
}

func (p *Printer) paint(style lipgloss.Style, s string) string {
	return p.Painter.Paint(style, s)
}

func (p *Printer) rule(width int) {
	fmt.Fprintln(p.W, p.paint(theme.Rule, strings.Repeat(ruleChar, width)))
}

// Skills prints a skill table.
func (p *Printer) Skills(skills []skillgraph.Skill) {
	fmt.Fprintf(p.W, "%-24s  %-32s  %6s  %s\n", "ID", "Name", "XP", "Prerequisites")
	p.rule(90)
	for _, s := range skills {
		fmt.Fprintf(p.W, "%-24s  %-32s  %6d  %s\n",
			s.ID, truncate(s.Name, 32), s.RequiredXP, strings.Join(s.Prerequisites, ", "))
	}
	fmt.Fprintf(p.W, "\n%d skills\n", len(skills))
}

// Roles prints every role with its requirements in catalog order.
func (p *Printer) Roles(roles []skillgraph.Role) {
	for i, r := range roles {
		if i > 0 {
			fmt.Fprintln(p.W)
		}
		title := r.Name
		if r.Senior {
			title += " (senior)"
		}
		fmt.Fprintf(p.W, "%s  %s\n", p.paint(theme.Heading, title), p.paint(theme.Hint, r.ID))
		for _, req := range r.Requirements {
			fmt.Fprintf(p.W, "  %-24s  %.2f\n", req.SkillID, req.Importance)
		}
	}
}

// Status prints per-skill XP and status.
func (p *Printer) Status(states *orderedmap.OrderedMap[string, progress.SkillState]) {
	fmt.Fprintf(p.W, "%-32s  %-11s  %-9s  %s\n", "Skill", "Status", "XP", "Progress")
	p.rule(76)
	for pair := states.Oldest(); pair != nil; pair = pair.Next() {
		st := pair.Value
		label := fmt.Sprintf("%-11s", st.Status.Label())
		fmt.Fprintf(p.W, "%-32s  %s  %4d/%-4d  %s %3d%%\n",
			truncate(st.Name, 32), p.paint(statusStyle(st.Status), label), st.XP, st.RequiredXP,
			xpBar(p.Painter, st.Percent(), barWidth), st.Percent())
	}
}

// Transitions prints status changes, e.g. after awarding XP.
func (p *Printer) Transitions(ts []progress.Transition) {
	if len(ts) == 0 {
		fmt.Fprintln(p.W, p.paint(theme.Hint, "No status changes."))
		return
	}
	for _, tr := range ts {
		fmt.Fprintf(p.W, "%s %s: %s -> %s\n",
			tr.To.Icon(), tr.SkillName, tr.From.Label(), p.paint(statusStyle(tr.To), tr.To.Label()))
	}
}

// Content prints recommended content items.
func (p *Printer) Content(items []skillgraph.ContentItem) {
	if len(items) == 0 {
		fmt.Fprintln(p.W, p.paint(theme.Hint, "No recommendations: nothing unlocked for this role yet."))
		return
	}
	for i, it := range items {
		fmt.Fprintf(p.W, "%2d. %-6s %-8s %s  %s\n", i+1, it.ID, it.Kind, it.Title, p.paint(theme.Hint, "("+it.SkillID+")"))
	}
}

// Gaps prints a gap list.
func (p *Printer) Gaps(gaps []gap.Entry) {
	if len(gaps) == 0 {
		fmt.Fprintln(p.W, "No gaps.")
		return
	}
	for _, e := range gaps {
		fmt.Fprintf(p.W, "  %-32s  %.2f\n", e.Name, e.Importance)
	}
}

// Roadmap prints ordered steps and the total duration.
func (p *Printer) Roadmap(steps []roadmap.Step) {
	if len(steps) == 0 {
		fmt.Fprintln(p.W, "No steps.")
		return
	}
	for i, s := range steps {
		style := theme.Core
		if s.Type == roadmap.StepPreparation {
			style = theme.Preparation
		}
		fmt.Fprintf(p.W, "%2d. %s  %dw  %s\n",
			i+1, p.paint(style, fmt.Sprintf("%-32s", s.Step)), s.DurationWeeks, s.Reason)
		if s.Resource != "" {
			fmt.Fprintf(p.W, "    %s\n", p.paint(theme.Hint, s.Resource))
		}
	}
	fmt.Fprintf(p.W, "\nTotal: %d weeks\n", roadmap.TotalWeeks(steps))
}

// Report prints a full analysis.
func (p *Printer) Report(r *career.Report) {
	fmt.Fprintln(p.W, p.paint(theme.Title, "Career path: "+r.TargetRole))
	if !r.RoleFound {
		fmt.Fprintln(p.W, p.paint(theme.Warning, r.Narrative))
		return
	}

	fmt.Fprintf(p.W, "Detected: %s\n", strings.Join(r.DetectedNames, ", "))

	p.section("Gaps")
	p.Gaps(r.Gaps)

	p.section("Roadmap")
	p.Roadmap(r.Roadmap)

	p.section("Recommended next")
	p.Content(r.Recommendations)

	fmt.Fprintln(p.W)
	fmt.Fprintln(p.W, p.paint(theme.Card, r.Narrative))
}

func (p *Printer) section(title string) {
	fmt.Fprintln(p.W)
	fmt.Fprintln(p.W, p.paint(theme.Heading, title))
}

func statusStyle(s progress.Status) lipgloss.Style {
	switch s {
	case progress.StatusUnlocked:
		return theme.Unlocked
	case progress.StatusInProgress:
		return theme.InProgress
	case progress.StatusCompleted:
		return theme.Completed
	default:
		return theme.Locked
	}
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	if len(r) > width-3 {
		r = r[:width-3]
	}
	return string(r) + "..."
}
