// Package progress derives per-skill unlock status from XP.
//
// Statuses are recomputed from scratch on every call. Nothing here keeps
// state between calls, so the functions are safe for concurrent use.
package progress

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/abhisek/pathwise/internal/skillgraph"
)

// UnlockPercent is the share of a prerequisite's required XP a learner needs
// before dependent skills open up. The boundary is inclusive.
const UnlockPercent = 70

// SkillState is one skill's XP and status for a session.
type SkillState struct {
	SkillID    string `json:"skill_id"`
	Name       string `json:"name"`
	XP         int    `json:"xp"`
	RequiredXP int    `json:"required_xp"`
	Status     Status `json:"status"`
}

// Percent returns XP progress towards completion in [0, 100].
func (s SkillState) Percent() int {
	if s.RequiredXP <= 0 {
		return 0
	}
	return min(100, s.XP*100/s.RequiredXP)
}

// ComputeStatuses returns a status for every catalog skill. Skills missing
// from xpBySkill count as 0 XP.
func ComputeStatuses(g *skillgraph.Graph, xpBySkill map[string]int) map[string]Status {
	skills := g.AllSkills()
	result := make(map[string]Status, len(skills))
	for _, s := range skills {
		result[s.ID] = statusFor(g, s, xpBySkill)
	}
	return result
}

// PrerequisitesMet reports whether every direct prerequisite of the skill has
// reached UnlockPercent of its required XP. Skills with no prerequisites are
// always eligible.
func PrerequisitesMet(g *skillgraph.Graph, skillID string, xpBySkill map[string]int) bool {
	for _, p := range g.Prerequisites(skillID) {
		if !AtLeastPercent(xpBySkill[p.ID], p.RequiredXP, UnlockPercent) {
			return false
		}
	}
	return true
}

func statusFor(g *skillgraph.Graph, s skillgraph.Skill, xpBySkill map[string]int) Status {
	xp := xpBySkill[s.ID]
	switch {
	case xp >= s.RequiredXP:
		return StatusCompleted
	case PrerequisitesMet(g, s.ID, xpBySkill):
		if xp > 0 {
			return StatusInProgress
		}
		return StatusUnlocked
	default:
		return StatusLocked
	}
}

// States returns the full per-skill state in catalog order.
func States(g *skillgraph.Graph, xpBySkill map[string]int) []SkillState {
	skills := g.AllSkills()
	statuses := ComputeStatuses(g, xpBySkill)
	result := make([]SkillState, 0, len(skills))
	for _, s := range skills {
		result = append(result, SkillState{
			SkillID:    s.ID,
			Name:       s.Name,
			XP:         xpBySkill[s.ID],
			RequiredXP: s.RequiredXP,
			Status:     statuses[s.ID],
		})
	}
	return result
}

// Snapshot returns skill ID -> state keyed in catalog order. The ordered map
// marshals to a JSON object that keeps that order for UI rendering.
func Snapshot(g *skillgraph.Graph, xpBySkill map[string]int) *orderedmap.OrderedMap[string, SkillState] {
	om := orderedmap.New[string, SkillState]()
	for _, st := range States(g, xpBySkill) {
		om.Set(st.SkillID, st)
	}
	return om
}

// AtLeastPercent reports xp >= pct% of required, in integer arithmetic so
// boundaries such as 70 of 100 hold exactly.
func AtLeastPercent(xp, required, pct int) bool {
	return xp*100 >= required*pct
}
