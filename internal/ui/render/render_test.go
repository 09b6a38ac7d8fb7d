package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathwise/internal/career"
	"github.com/abhisek/pathwise/internal/progress"
	"github.com/abhisek/pathwise/internal/roadmap"
	"github.com/abhisek/pathwise/internal/skillgraph"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

func TestSkills(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Skills(skillgraph.Default().AllSkills())

	out := buf.String()
	assert.Contains(t, out, "python")
	assert.Contains(t, out, "\n14 skills\n")
	assert.NotContains(t, out, "\x1b[", "no ANSI codes without colour")
}

func TestStatus(t *testing.T) {
	var buf bytes.Buffer
	g := skillgraph.Default()
	New(&buf, false).Status(progress.Snapshot(g, map[string]int{"python": 100}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2+len(g.AllSkills()))
	assert.Contains(t, lines[2], "Completed")
	assert.Contains(t, lines[2], "100/100")
	assert.Contains(t, lines[2], "████████████ 100%")
}

func TestXPBar(t *testing.T) {
	plain := theme.Painter{}
	assert.Equal(t, "██████░░░░░░", xpBar(plain, 50, 12))
	assert.Equal(t, "░░░░", xpBar(plain, -5, 2), "width has a floor")
	assert.Equal(t, "████", xpBar(plain, 250, 4))
}

func TestTransitions(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Transitions([]progress.Transition{
		{SkillID: "pandas", SkillName: "Pandas for Data Analysis", From: progress.StatusLocked, To: progress.StatusUnlocked},
	})
	assert.Equal(t, "🔓 Pandas for Data Analysis: Locked -> Unlocked\n", buf.String())

	buf.Reset()
	New(&buf, false).Transitions(nil)
	assert.Equal(t, "No status changes.\n", buf.String())
}

func TestRoadmap(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Roadmap([]roadmap.Step{
		{Step: "Learn Python", SkillID: "python", Type: roadmap.StepPreparation, DurationWeeks: 2, Reason: "prerequisite for ML Basics"},
		{Step: "Learn ML Basics", SkillID: "ml-basics", Type: roadmap.StepCore, DurationWeeks: 3, Reason: "core requirement for Data Scientist", Resource: "Course: ML Basics"},
	})

	out := buf.String()
	assert.Contains(t, out, " 1. Learn Python")
	assert.Contains(t, out, "    Course: ML Basics")
	assert.Contains(t, out, "Total: 5 weeks")
}

func TestReport(t *testing.T) {
	svc := career.NewService(skillgraph.Default(), career.Options{
		Roadmap: roadmap.DefaultOptions(),
		Logger:  zerolog.Nop(),
	})

	report, err := svc.Analyze(context.Background(), career.Request{TargetRole: "data-analyst", Skills: []string{"sql"}})
	require.NoError(t, err)

	var buf bytes.Buffer
	New(&buf, false).Report(report)
	out := buf.String()
	assert.Contains(t, out, "Career path: Data Analyst")
	assert.Contains(t, out, "Detected: SQL\n")
	assert.Contains(t, out, "Gaps")
	assert.Contains(t, out, "Roadmap")
	assert.Contains(t, out, report.Narrative)

	missing, err := svc.Analyze(context.Background(), career.Request{TargetRole: "Astronaut"})
	require.NoError(t, err)
	buf.Reset()
	New(&buf, false).Report(missing)
	assert.Contains(t, buf.String(), `Role "Astronaut" not found`)
	assert.NotContains(t, buf.String(), "Roadmap")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
