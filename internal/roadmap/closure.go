package roadmap

import "github.com/abhisek/pathwise/internal/skillgraph"

// Closure returns every transitive prerequisite of skillID in dependency-safe
// order: a skill never appears before one of its own prerequisites. The skill
// itself is excluded. A visited set bounds the walk, so malformed graphs
// still terminate.
func Closure(g *skillgraph.Graph, skillID string) []string {
	visited := make(map[string]bool)
	var order []string

	var visit func(id string)
	visit = func(id string) {
		if visited[id] {
			return
		}
		visited[id] = true
		for _, p := range g.Prerequisites(id) {
			visit(p.ID)
		}
		order = append(order, id)
	}
	visit(skillID)

	result := make([]string, 0, len(order))
	for _, id := range order {
		if id != skillID {
			result = append(result, id)
		}
	}
	return result
}
