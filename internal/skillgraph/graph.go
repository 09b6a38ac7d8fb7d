package skillgraph

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Graph holds the skill DAG, roles and content with precomputed indices.
// A Graph is immutable once built and safe for concurrent use.
type Graph struct {
	version        string
	skills         []Skill
	byID           map[string]*Skill
	roles          []Role
	roleByID       map[string]*Role
	content        []ContentItem
	contentBySkill map[string][]ContentItem
	roots          []Skill
	dependents     map[string][]string
	topoOrder      []Skill
}

// New validates the catalog and builds a Graph from it.
func New(c Catalog) (*Graph, error) {
	if err := validateCatalog(c); err != nil {
		return nil, err
	}
	return buildGraph(c), nil
}

// buildGraph constructs the graph from a validated catalog.
// It builds all indices including topological order (Kahn's algorithm).
func buildGraph(c Catalog) *Graph {
	skills := cloneSkills(c.Skills)
	gr := &Graph{
		version:        c.Version,
		skills:         skills,
		byID:           make(map[string]*Skill, len(skills)),
		roles:          cloneRoles(c.Roles),
		roleByID:       make(map[string]*Role, len(c.Roles)),
		content:        slices.Clone(c.Content),
		contentBySkill: make(map[string][]ContentItem),
		dependents:     make(map[string][]string),
	}

	for i := range gr.skills {
		gr.byID[gr.skills[i].ID] = &gr.skills[i]
	}
	for i := range gr.roles {
		gr.roleByID[gr.roles[i].ID] = &gr.roles[i]
	}
	for _, item := range gr.content {
		gr.contentBySkill[item.SkillID] = append(gr.contentBySkill[item.SkillID], item)
	}

	// Build reverse edges (dependents)
	for i := range gr.skills {
		for _, prereqID := range gr.skills[i].Prerequisites {
			gr.dependents[prereqID] = append(gr.dependents[prereqID], gr.skills[i].ID)
		}
	}

	// Topological sort (Kahn's algorithm)
	inDegree := make(map[string]int, len(skills))
	for i := range skills {
		inDegree[skills[i].ID] = len(skills[i].Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	// Sort initial queue for deterministic ordering
	sort.Strings(queue)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		gr.topoOrder = append(gr.topoOrder, *gr.byID[id])

		sorted := slices.Clone(gr.dependents[id])
		sort.Strings(sorted)
		for _, depID := range sorted {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	for i := range gr.skills {
		if len(gr.skills[i].Prerequisites) == 0 {
			gr.roots = append(gr.roots, gr.skills[i])
		}
	}

	return gr
}

// Version returns the catalog version string.
func (g *Graph) Version() string {
	return g.version
}

// GetSkill returns a skill by ID, or error if not found.
func (g *Graph) GetSkill(id string) (Skill, error) {
	s, ok := g.byID[id]
	if !ok {
		return Skill{}, fmt.Errorf("skill not found: %q", id)
	}
	return cloneSkill(*s), nil
}

// HasSkill reports whether the catalog defines the skill ID.
func (g *Graph) HasSkill(id string) bool {
	_, ok := g.byID[id]
	return ok
}

// AllSkills returns all skills in catalog declaration order.
func (g *Graph) AllSkills() []Skill {
	return cloneSkills(g.skills)
}

// RootSkills returns all skills with no prerequisites.
func (g *Graph) RootSkills() []Skill {
	return cloneSkills(g.roots)
}

// TopologicalOrder returns all skills in a valid topological order.
func (g *Graph) TopologicalOrder() []Skill {
	return cloneSkills(g.topoOrder)
}

// Prerequisites returns the direct prerequisite skills for a given skill ID.
func (g *Graph) Prerequisites(id string) []Skill {
	s, ok := g.byID[id]
	if !ok {
		return nil
	}
	result := make([]Skill, 0, len(s.Prerequisites))
	for _, prereqID := range s.Prerequisites {
		if p, ok := g.byID[prereqID]; ok {
			result = append(result, cloneSkill(*p))
		}
	}
	return result
}

// Dependents returns skills that directly depend on the given skill ID.
func (g *Graph) Dependents(id string) []Skill {
	depIDs := g.dependents[id]
	result := make([]Skill, 0, len(depIDs))
	for _, depID := range depIDs {
		if s, ok := g.byID[depID]; ok {
			result = append(result, cloneSkill(*s))
		}
	}
	return result
}

// ByRole returns the skills applicable to a role, in declaration order.
func (g *Graph) ByRole(roleID string) []Skill {
	var result []Skill
	for _, s := range g.skills {
		if s.AppliesTo(roleID) {
			result = append(result, cloneSkill(s))
		}
	}
	return result
}

// Roles returns all roles in declaration order.
func (g *Graph) Roles() []Role {
	return cloneRoles(g.roles)
}

// FindRole looks a role up by ID, or by display name ignoring case.
func (g *Graph) FindRole(key string) (Role, bool) {
	if r, ok := g.roleByID[key]; ok {
		return cloneRole(*r), true
	}
	key = strings.TrimSpace(key)
	for _, r := range g.roles {
		if strings.EqualFold(r.Name, key) || strings.EqualFold(r.ID, key) {
			return cloneRole(r), true
		}
	}
	return Role{}, false
}

// AllContent returns every content item in declaration order.
func (g *Graph) AllContent() []ContentItem {
	return slices.Clone(g.content)
}

// ContentFor returns the content items that train the given skill.
func (g *Graph) ContentFor(skillID string) []ContentItem {
	return slices.Clone(g.contentBySkill[skillID])
}

// FindContent returns the first content item for a skill with the given kind and tier.
func (g *Graph) FindContent(skillID string, kind Kind, tier Tier) (ContentItem, bool) {
	for _, item := range g.contentBySkill[skillID] {
		if item.Kind == kind && item.Tier == tier {
			return item, true
		}
	}
	return ContentItem{}, false
}

// ResourceFor returns a human-readable resource reference for a skill.
// An explicit catalog resource wins; otherwise the first content item is used.
func (g *Graph) ResourceFor(skillID string) string {
	s, ok := g.byID[skillID]
	if !ok {
		return ""
	}
	if s.Resource != "" {
		return s.Resource
	}
	items := g.contentBySkill[skillID]
	if len(items) == 0 {
		return ""
	}
	return items[0].Label()
}

// Label formats a content item as a resource reference, e.g. "Course: SQL Fundamentals".
func (c ContentItem) Label() string {
	switch c.Kind {
	case KindCourse:
		return "Course: " + c.Title
	case KindProject:
		return "Project: " + c.Title
	default:
		return c.Title
	}
}

func cloneSkill(s Skill) Skill {
	s.Prerequisites = slices.Clone(s.Prerequisites)
	s.Roles = slices.Clone(s.Roles)
	s.Aliases = slices.Clone(s.Aliases)
	return s
}

func cloneSkills(skills []Skill) []Skill {
	if skills == nil {
		return nil
	}
	out := make([]Skill, len(skills))
	for i, s := range skills {
		out[i] = cloneSkill(s)
	}
	return out
}

func cloneRole(r Role) Role {
	r.Requirements = slices.Clone(r.Requirements)
	return r
}

func cloneRoles(roles []Role) []Role {
	if roles == nil {
		return nil
	}
	out := make([]Role, len(roles))
	for i, r := range roles {
		out[i] = cloneRole(r)
	}
	return out
}
