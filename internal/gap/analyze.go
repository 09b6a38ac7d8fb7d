package gap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/abhisek/pathwise/internal/skillgraph"
)

// ErrUnknownRole is returned when a target role is not in the catalog.
var ErrUnknownRole = errors.New("role not found in skill catalog")

// Entry is a role-required skill the learner does not have yet.
type Entry struct {
	SkillID    string  `json:"skill_id"`
	Name       string  `json:"name"`
	Importance float64 `json:"importance"`
}

// Analyze returns the role's requirements that are missing from detected,
// most important first. Equal importance keeps requirement order.
// detected holds catalog skill IDs, usually the output of Normalize.
func Analyze(g *skillgraph.Graph, detected []string, roleKey string) ([]Entry, error) {
	role, ok := g.FindRole(roleKey)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, roleKey)
	}

	have := make(map[string]bool, len(detected))
	for _, id := range detected {
		have[id] = true
	}

	gaps := make([]Entry, 0, len(role.Requirements))
	for _, req := range role.Requirements {
		if have[req.SkillID] {
			continue
		}
		name := req.SkillID
		if s, err := g.GetSkill(req.SkillID); err == nil {
			name = s.Name
		}
		gaps = append(gaps, Entry{
			SkillID:    req.SkillID,
			Name:       name,
			Importance: req.Importance,
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Importance > gaps[j].Importance
	})
	return gaps, nil
}

// Names returns the display names of gap entries, in order.
func Names(gaps []Entry) []string {
	out := make([]string, len(gaps))
	for i, e := range gaps {
		out[i] = e.Name
	}
	return out
}
