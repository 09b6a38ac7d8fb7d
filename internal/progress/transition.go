package progress

import "github.com/abhisek/pathwise/internal/skillgraph"

// Transition records a status change between two computed status maps,
// used for "level up" style display. It is derived on demand, never stored.
type Transition struct {
	SkillID   string `json:"skill_id"`
	SkillName string `json:"skill_name"`
	From      Status `json:"from"`
	To        Status `json:"to"`
}

// Forward reports whether the transition moves along the lifecycle.
func (t Transition) Forward() bool {
	return t.To.Rank() > t.From.Rank()
}

// Diff lists the skills whose status differs between before and after, in
// catalog order. A skill absent from before is treated as locked.
func Diff(g *skillgraph.Graph, before, after map[string]Status) []Transition {
	var result []Transition
	for _, s := range g.AllSkills() {
		from, ok := before[s.ID]
		if !ok {
			from = StatusLocked
		}
		to, ok := after[s.ID]
		if !ok || from == to {
			continue
		}
		result = append(result, Transition{
			SkillID:   s.ID,
			SkillName: s.Name,
			From:      from,
			To:        to,
		})
	}
	return result
}
