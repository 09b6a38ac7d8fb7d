// Package xp converts CV evidence into bounded per-skill experience points.
package xp

import (
	"fmt"

	"github.com/abhisek/pathwise/internal/skillgraph"
)

// Category caps. Each evidence category contributes independently up to
// its cap before the total is clamped to the skill's requirement.
const (
	YearsXPPerYear   = 20
	YearsXPCap       = 50
	ProjectXPPerItem = 10
	ProjectXPCap     = 30
	CertificationXP  = 20
)

// Evidence is what a CV says about one skill.
type Evidence struct {
	YearsExperience float64 `json:"years_experience"`
	NumProjects     int     `json:"num_projects"`
	HasCert         bool    `json:"has_cert"`
}

// Validate rejects negative evidence values.
func (e Evidence) Validate() error {
	if e.YearsExperience < 0 {
		return fmt.Errorf("years_experience must be >= 0, got %g", e.YearsExperience)
	}
	if e.NumProjects < 0 {
		return fmt.Errorf("num_projects must be >= 0, got %d", e.NumProjects)
	}
	return nil
}

// Estimate returns the initial XP for a skill, in [0, skill.RequiredXP].
func Estimate(skill skillgraph.Skill, ev Evidence) int {
	years := max(0, ev.YearsExperience)
	// Cap the count before multiplying so huge inputs cannot wrap.
	projects := min(max(0, ev.NumProjects), ProjectXPCap/ProjectXPPerItem)

	total := min(YearsXPCap, years*YearsXPPerYear) +
		float64(min(ProjectXPCap, projects*ProjectXPPerItem))
	if ev.HasCert {
		total += CertificationXP
	}
	return clamp(int(total), 0, skill.RequiredXP)
}

// EstimateAll estimates XP for every catalog skill. Skills without evidence
// get 0; evidence for skills the catalog does not know is ignored.
func EstimateAll(g *skillgraph.Graph, evidence map[string]Evidence) map[string]int {
	skills := g.AllSkills()
	result := make(map[string]int, len(skills))
	for _, s := range skills {
		ev, ok := evidence[s.ID]
		if !ok {
			result[s.ID] = 0
			continue
		}
		result[s.ID] = Estimate(s, ev)
	}
	return result
}

// Award returns a copy of xpBySkill with delta XP added to skillID, clamped
// to the skill's requirement. Negative deltas and unknown skills leave the
// map unchanged, so XP only ever moves forward.
func Award(g *skillgraph.Graph, xpBySkill map[string]int, skillID string, delta int) map[string]int {
	result := make(map[string]int, len(xpBySkill)+1)
	for id, v := range xpBySkill {
		result[id] = v
	}

	skill, err := g.GetSkill(skillID)
	if err != nil || delta <= 0 {
		return result
	}
	current := clamp(result[skillID], 0, skill.RequiredXP)
	result[skillID] = current + min(delta, skill.RequiredXP-current)
	return result
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
