// Package roadmap turns role skill gaps into an ordered learning plan.
//
// For each gap the scheduler walks the prerequisite closure, emits a
// preparation step for every prerequisite the learner lacks and a core step
// for the gap itself, then orders all steps by a pluggable Scorer. A final
// pass keeps every step after the scheduled prerequisites it depends on.
package roadmap

import (
	"math/rand/v2"
	"sort"

	"github.com/abhisek/pathwise/internal/gap"
	"github.com/abhisek/pathwise/internal/skillgraph"
)

// StepType distinguishes prerequisite work from the gap skills themselves.
type StepType string

const (
	StepPreparation StepType = "preparation"
	StepCore        StepType = "core"
)

// Step durations in weeks.
const (
	PreparationWeeks = 2
	CoreWeeks        = 3
)

// PrereqImportanceFactor scales a gap's importance for prerequisites the role
// does not itself require.
const PrereqImportanceFactor = 0.7

// DefaultNoise bounds the tie-break jitter added to step scores.
const DefaultNoise = 0.01

// Step is one scheduled unit of learning work.
type Step struct {
	Step          string   `json:"step"`
	SkillID       string   `json:"skill_id"`
	Type          StepType `json:"type"`
	DurationWeeks int      `json:"duration_weeks"`
	Reason        string   `json:"reason"`
	Resource      string   `json:"resource,omitempty"`
	Score         float64  `json:"score"`
}

// Result is the outcome of Build.
type Result struct {
	Role      skillgraph.Role `json:"role"`
	RoleFound bool            `json:"role_found"`
	Steps     []Step          `json:"steps"`
}

// TotalWeeks sums the durations of the result's steps.
func (r Result) TotalWeeks() int {
	return TotalWeeks(r.Steps)
}

// TotalWeeks sums step durations.
func TotalWeeks(steps []Step) int {
	total := 0
	for _, s := range steps {
		total += s.DurationWeeks
	}
	return total
}

// Options configures a Scheduler.
type Options struct {
	// Scorer ranks steps. Nil selects the tiny network.
	Scorer Scorer
	// Seed feeds the tie-break jitter source. Equal seeds give equal orderings.
	Seed uint64
	// Noise is the exclusive upper bound of the jitter. Zero disables it.
	Noise float64
}

// DefaultOptions returns the tiny network scorer with the default noise bound.
func DefaultOptions() Options {
	return Options{
		Scorer: NewTinyNetwork(),
		Noise:  DefaultNoise,
	}
}

// Scheduler builds roadmaps against one catalog. It keeps no per-call state
// and is safe for concurrent use.
type Scheduler struct {
	graph  *skillgraph.Graph
	scorer Scorer
	seed   uint64
	noise  float64
}

// NewScheduler creates a Scheduler for the given catalog.
func NewScheduler(g *skillgraph.Graph, opts Options) *Scheduler {
	scorer := opts.Scorer
	if scorer == nil {
		scorer = NewTinyNetwork()
	}
	return &Scheduler{
		graph:  g,
		scorer: scorer,
		seed:   opts.Seed,
		noise:  max(0, opts.Noise),
	}
}

// Scorer returns the scheduler's scoring strategy.
func (s *Scheduler) Scorer() Scorer {
	return s.scorer
}

type candidate struct {
	step     Step
	features Features
}

// Build schedules steps for gaps, which should be ordered by descending
// importance. roleKey is a role ID or name; detected holds the catalog skill
// IDs the learner already has. An unknown role yields an empty result with
// RoleFound unset.
func (s *Scheduler) Build(gaps []gap.Entry, roleKey string, detected []string) Result {
	role, ok := s.graph.FindRole(roleKey)
	if !ok {
		return Result{Role: skillgraph.Role{Name: roleKey}, Steps: []Step{}}
	}

	have := make(map[string]bool, len(detected))
	for _, id := range detected {
		have[id] = true
	}
	scheduled := make(map[string]bool)

	var candidates []candidate
	for _, entry := range gaps {
		gapName := s.skillName(entry.SkillID, entry.Name)

		for i, p := range Closure(s.graph, entry.SkillID) {
			if have[p] || scheduled[p] {
				continue
			}
			importance := entry.Importance * PrereqImportanceFactor
			if req, ok := role.Requirement(p); ok {
				importance = req.Importance
			}
			candidates = append(candidates, candidate{
				step: Step{
					Step:          s.skillName(p, p),
					SkillID:       p,
					Type:          StepPreparation,
					DurationWeeks: PreparationWeeks,
					Reason:        "prerequisite for " + gapName,
					Resource:      s.graph.ResourceFor(p),
				},
				features: NewFeatures(importance, true, i+1, PreparationWeeks, role.Senior),
			})
			scheduled[p] = true
		}

		if scheduled[entry.SkillID] {
			continue
		}
		candidates = append(candidates, candidate{
			step: Step{
				Step:          gapName,
				SkillID:       entry.SkillID,
				Type:          StepCore,
				DurationWeeks: CoreWeeks,
				Reason:        "core requirement for " + role.Name,
				Resource:      s.graph.ResourceFor(entry.SkillID),
			},
			features: NewFeatures(entry.Importance, false, 0, CoreWeeks, role.Senior),
		})
		scheduled[entry.SkillID] = true
	}

	rng := rand.New(rand.NewPCG(s.seed, s.seed^0x9e3779b97f4a7c15))
	for i := range candidates {
		score := s.scorer.Score(candidates[i].features)
		if s.noise > 0 {
			score += rng.Float64() * s.noise
		}
		candidates[i].step.Score = score
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i].step, candidates[j].step
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.SkillID < b.SkillID
	})

	steps := make([]Step, len(candidates))
	for i, c := range candidates {
		steps[i] = c.step
	}
	return Result{
		Role:      role,
		RoleFound: true,
		Steps:     s.dependencyOrder(steps),
	}
}

// dependencyOrder reorders priority-sorted steps so that no step comes before
// a scheduled skill in its prerequisite closure. Among the steps that are
// ready, the highest-priority one goes first.
func (s *Scheduler) dependencyOrder(steps []Step) []Step {
	inPlan := make(map[string]bool, len(steps))
	for _, st := range steps {
		inPlan[st.SkillID] = true
	}
	deps := make([][]string, len(steps))
	for i, st := range steps {
		for _, p := range Closure(s.graph, st.SkillID) {
			if inPlan[p] {
				deps[i] = append(deps[i], p)
			}
		}
	}

	done := make(map[string]bool, len(steps))
	emitted := make([]bool, len(steps))
	result := make([]Step, 0, len(steps))
	for len(result) < len(steps) {
		progressed := false
		for i, st := range steps {
			if emitted[i] || !allDone(deps[i], done) {
				continue
			}
			emitted[i] = true
			done[st.SkillID] = true
			result = append(result, st)
			progressed = true
			break
		}
		if !progressed {
			// Unreachable for a validated catalog; keep the remaining
			// priority order rather than looping.
			for i, st := range steps {
				if !emitted[i] {
					result = append(result, st)
				}
			}
			break
		}
	}
	return result
}

func allDone(ids []string, done map[string]bool) bool {
	for _, id := range ids {
		if !done[id] {
			return false
		}
	}
	return true
}

func (s *Scheduler) skillName(id, fallback string) string {
	if sk, err := s.graph.GetSkill(id); err == nil {
		return sk.Name
	}
	if fallback != "" {
		return fallback
	}
	return id
}
