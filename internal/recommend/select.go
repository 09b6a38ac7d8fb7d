// Package recommend picks learning content and next skills for a target role.
package recommend

import (
	"sort"

	"github.com/abhisek/pathwise/internal/progress"
	"github.com/abhisek/pathwise/internal/skillgraph"
)

// PracticePercent is the share of a skill's required XP at which content
// switches from instructional courses to practice projects.
const PracticePercent = 30

// Phase returns the content kind and tier suited to a learner's XP in a skill.
func Phase(xp, requiredXP int) (skillgraph.Kind, skillgraph.Tier) {
	if progress.AtLeastPercent(xp, requiredXP, PracticePercent) {
		return skillgraph.KindProject, skillgraph.TierAdvanced
	}
	return skillgraph.KindCourse, skillgraph.TierBeginner
}

// Select returns up to topK content items for skills that apply to roleID and
// are unlocked or in progress. Candidates follow catalog order; a skill with
// no content for its phase is skipped.
func Select(g *skillgraph.Graph, statuses map[string]progress.Status, xpBySkill map[string]int, roleID string, topK int) []skillgraph.ContentItem {
	if topK <= 0 {
		return nil
	}

	var result []skillgraph.ContentItem
	for _, s := range g.AllSkills() {
		if !s.AppliesTo(roleID) || !statuses[s.ID].Learnable() {
			continue
		}
		kind, tier := Phase(xpBySkill[s.ID], s.RequiredXP)
		item, ok := g.FindContent(s.ID, kind, tier)
		if !ok {
			continue
		}
		result = append(result, item)
		if len(result) == topK {
			break
		}
	}
	return result
}

// Candidate is a skill worth working on next.
type Candidate struct {
	SkillID     string          `json:"skill_id"`
	Name        string          `json:"name"`
	Status      progress.Status `json:"status"`
	RemainingXP int             `json:"remaining_xp"`
}

// NextSkills ranks the learnable skills of a role by remaining XP, largest
// gap first. Ties keep catalog order.
func NextSkills(g *skillgraph.Graph, statuses map[string]progress.Status, xpBySkill map[string]int, roleID string, topK int) []Candidate {
	if topK <= 0 {
		return nil
	}

	var candidates []Candidate
	for _, s := range g.AllSkills() {
		st := statuses[s.ID]
		if !s.AppliesTo(roleID) || !st.Learnable() {
			continue
		}
		remaining := s.RequiredXP - xpBySkill[s.ID]
		if remaining <= 0 {
			continue
		}
		candidates = append(candidates, Candidate{
			SkillID:     s.ID,
			Name:        s.Name,
			Status:      st,
			RemainingXP: remaining,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].RemainingXP > candidates[j].RemainingXP
	})

	if len(candidates) > topK {
		candidates = candidates[:topK]
	}
	return candidates
}
