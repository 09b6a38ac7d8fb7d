package xp

import (
	"math"
	"testing"

	"github.com/abhisek/pathwise/internal/skillgraph"
)

func TestEstimate(t *testing.T) {
	skill := skillgraph.Skill{ID: "python", RequiredXP: 100}
	tests := []struct {
		name string
		ev   Evidence
		want int
	}{
		{"no evidence", Evidence{}, 0},
		{"one year", Evidence{YearsExperience: 1}, 20},
		{"half year truncates", Evidence{YearsExperience: 0.5}, 10},
		{"years capped", Evidence{YearsExperience: 10}, 50},
		{"projects", Evidence{NumProjects: 2}, 20},
		{"projects capped", Evidence{NumProjects: 9}, 30},
		{"cert only", Evidence{HasCert: true}, 20},
		{"everything", Evidence{YearsExperience: 1, NumProjects: 2, HasCert: false}, 40},
		{"all caps", Evidence{YearsExperience: 5, NumProjects: 5, HasCert: true}, 100},
		{"negatives treated as zero", Evidence{YearsExperience: -3, NumProjects: -2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Estimate(skill, tt.ev); got != tt.want {
				t.Errorf("Estimate(%+v) = %d, want %d", tt.ev, got, tt.want)
			}
		})
	}
}

func TestEstimate_ClampedToRequirement(t *testing.T) {
	skill := skillgraph.Skill{ID: "excel", RequiredXP: 60}
	got := Estimate(skill, Evidence{YearsExperience: 5, NumProjects: 5, HasCert: true})
	if got != 60 {
		t.Errorf("got %d, want 60 (skill requirement)", got)
	}
}

func TestEstimate_BoundsAndMonotonicity(t *testing.T) {
	for _, required := range []int{1, 60, 80, 100, 120} {
		skill := skillgraph.Skill{ID: "s", RequiredXP: required}
		for years := 0.0; years <= 4; years += 0.25 {
			for projects := 0; projects <= 5; projects++ {
				for _, cert := range []bool{false, true} {
					ev := Evidence{YearsExperience: years, NumProjects: projects, HasCert: cert}
					got := Estimate(skill, ev)
					if got < 0 || got > required {
						t.Fatalf("Estimate(%+v) = %d out of [0, %d]", ev, got, required)
					}

					moreYears := ev
					moreYears.YearsExperience += 0.25
					moreProjects := ev
					moreProjects.NumProjects++
					withCert := ev
					withCert.HasCert = true

					for _, next := range []Evidence{moreYears, moreProjects, withCert} {
						if n := Estimate(skill, next); n < got {
							t.Fatalf("increasing evidence %+v -> %+v decreased XP %d -> %d", ev, next, got, n)
						}
					}
				}
			}
		}
	}
}

func TestEstimate_LargeInputs(t *testing.T) {
	skill := skillgraph.Skill{ID: "s", RequiredXP: 100}
	base := Estimate(skill, Evidence{YearsExperience: 1, NumProjects: 3})

	tests := []struct {
		name string
		ev   Evidence
		want int
	}{
		{"projects near overflow", Evidence{NumProjects: math.MaxInt / 10}, 30},
		{"projects just past overflow", Evidence{NumProjects: math.MaxInt/10 + 1}, 30},
		{"max projects", Evidence{NumProjects: math.MaxInt}, 30},
		{"max years", Evidence{YearsExperience: math.MaxFloat64}, 50},
		{"everything maxed", Evidence{YearsExperience: math.MaxFloat64, NumProjects: math.MaxInt, HasCert: true}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(skill, tt.ev)
			if got != tt.want {
				t.Errorf("Estimate(%+v) = %d, want %d", tt.ev, got, tt.want)
			}
		})
	}

	more := Evidence{YearsExperience: 1, NumProjects: math.MaxInt}
	if got := Estimate(skill, more); got < base {
		t.Errorf("more projects decreased XP %d -> %d", base, got)
	}
}

func TestEstimateAll(t *testing.T) {
	g := skillgraph.Default()
	evidence := map[string]Evidence{
		"python":  {YearsExperience: 1, NumProjects: 2},
		"pandas":  {YearsExperience: 0.5, NumProjects: 1},
		"unknown": {YearsExperience: 10},
	}
	got := EstimateAll(g, evidence)

	if len(got) != len(g.AllSkills()) {
		t.Fatalf("got %d entries, want one per catalog skill (%d)", len(got), len(g.AllSkills()))
	}
	if got["python"] != 40 {
		t.Errorf("python = %d, want 40", got["python"])
	}
	if got["pandas"] != 20 {
		t.Errorf("pandas = %d, want 20", got["pandas"])
	}
	if got["sql"] != 0 {
		t.Errorf("sql = %d, want 0 for missing evidence", got["sql"])
	}
	if _, ok := got["unknown"]; ok {
		t.Error("evidence for unknown skills should be ignored")
	}
}

func TestAward(t *testing.T) {
	g := skillgraph.Default()
	before := map[string]int{"python": 90}

	after := Award(g, before, "python", 25)
	if after["python"] != 100 {
		t.Errorf("python = %d, want 100 (clamped)", after["python"])
	}
	if before["python"] != 90 {
		t.Error("Award must not mutate its input")
	}

	if got := Award(g, before, "python", -50); got["python"] != 90 {
		t.Errorf("negative delta changed XP to %d", got["python"])
	}
	if got := Award(g, before, "nonexistent", 10); len(got) != 1 {
		t.Errorf("unknown skill should leave map unchanged, got %v", got)
	}
	if got := Award(g, nil, "sql", 30); got["sql"] != 30 {
		t.Errorf("sql = %d, want 30", got["sql"])
	}
}

func TestAward_NeverDecreases(t *testing.T) {
	g := skillgraph.Default()
	for _, start := range []int{0, 1, 50, 99, 100} {
		for _, delta := range []int{1, 1000, math.MaxInt - 1, math.MaxInt} {
			got := Award(g, map[string]int{"python": start}, "python", delta)["python"]
			if got < start {
				t.Fatalf("Award(%d, +%d) decreased XP to %d", start, delta, got)
			}
			if got > 100 {
				t.Fatalf("Award(%d, +%d) = %d, above requirement", start, delta, got)
			}
			if delta >= 100 && got != 100 {
				t.Errorf("Award(%d, +%d) = %d, want 100", start, delta, got)
			}
		}
	}
}

func TestEvidenceValidate(t *testing.T) {
	if err := (Evidence{YearsExperience: 1, NumProjects: 1}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (Evidence{YearsExperience: -1}).Validate(); err == nil {
		t.Error("expected error for negative years")
	}
	if err := (Evidence{NumProjects: -1}).Validate(); err == nil {
		t.Error("expected error for negative projects")
	}
}
