package skillgraph

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// validateCatalog performs all structural checks on the given catalog.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(c Catalog) error {
	var errs []string

	if !semver.IsValid(c.Version) {
		errs = append(errs, fmt.Sprintf("catalog version %q is not a valid semantic version (want e.g. v1.2.0)", c.Version))
	}

	errs = append(errs, validateSkills(c.Skills)...)

	skillSet := make(map[string]*Skill, len(c.Skills))
	for i := range c.Skills {
		skillSet[c.Skills[i].ID] = &c.Skills[i]
	}

	// Roles
	roleSet := make(map[string]bool, len(c.Roles))
	for _, r := range c.Roles {
		if r.ID == "" {
			errs = append(errs, fmt.Sprintf("role %q has an empty ID", r.Name))
			continue
		}
		if roleSet[r.ID] {
			errs = append(errs, fmt.Sprintf("duplicate role ID: %q", r.ID))
		}
		roleSet[r.ID] = true

		if len(r.Requirements) == 0 {
			errs = append(errs, fmt.Sprintf("role %q has no requirements", r.ID))
		}
		seen := make(map[string]bool, len(r.Requirements))
		for _, req := range r.Requirements {
			if seen[req.SkillID] {
				errs = append(errs, fmt.Sprintf("role %q lists skill %q more than once", r.ID, req.SkillID))
			}
			seen[req.SkillID] = true

			s, ok := skillSet[req.SkillID]
			if !ok {
				errs = append(errs, fmt.Sprintf("role %q requires nonexistent skill %q", r.ID, req.SkillID))
				continue
			}
			if req.Importance < 0 || req.Importance > 1.0 {
				errs = append(errs, fmt.Sprintf("role %q skill %q: importance must be in [0, 1.0], got %f", r.ID, req.SkillID, req.Importance))
			}
			if !s.AppliesTo(r.ID) {
				errs = append(errs, fmt.Sprintf("role %q requires skill %q but the skill does not list the role", r.ID, req.SkillID))
			}
		}
	}

	for _, s := range c.Skills {
		for _, roleID := range s.Roles {
			if !roleSet[roleID] {
				errs = append(errs, fmt.Sprintf("skill %q references nonexistent role %q", s.ID, roleID))
			}
		}
	}

	// Content
	contentSet := make(map[string]bool, len(c.Content))
	for _, item := range c.Content {
		if contentSet[item.ID] {
			errs = append(errs, fmt.Sprintf("duplicate content ID: %q", item.ID))
		}
		contentSet[item.ID] = true

		if _, ok := skillSet[item.SkillID]; !ok {
			errs = append(errs, fmt.Sprintf("content %q targets nonexistent skill %q", item.ID, item.SkillID))
		}
		if item.Kind != KindCourse && item.Kind != KindProject {
			errs = append(errs, fmt.Sprintf("content %q: unknown kind %q", item.ID, item.Kind))
		}
		if item.Tier != TierBeginner && item.Tier != TierAdvanced {
			errs = append(errs, fmt.Sprintf("content %q: unknown tier %q", item.ID, item.Tier))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("skill catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// validateSkills checks skill identity, XP requirements and the prerequisite DAG.
func validateSkills(skills []Skill) []string {
	var errs []string

	idSet := make(map[string]bool, len(skills))

	// Check for duplicate IDs
	for _, s := range skills {
		if s.ID == "" {
			errs = append(errs, fmt.Sprintf("skill %q has an empty ID", s.Name))
		}
		if idSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate skill ID: %q", s.ID))
		}
		idSet[s.ID] = true

		if s.RequiredXP <= 0 {
			errs = append(errs, fmt.Sprintf("skill %q: RequiredXP must be > 0, got %d", s.ID, s.RequiredXP))
		}
	}

	// Check for dangling prerequisites
	for _, s := range skills {
		for _, prereqID := range s.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("skill %q references nonexistent prerequisite %q", s.ID, prereqID))
			}
		}
	}

	// Check for cycles using Kahn's algorithm
	inDegree := make(map[string]int, len(skills))
	adjList := make(map[string][]string)
	for _, s := range skills {
		for _, prereqID := range s.Prerequisites {
			if !idSet[prereqID] {
				continue // reported above as dangling
			}
			inDegree[s.ID]++
			adjList[prereqID] = append(adjList[prereqID], s.ID)
		}
	}

	var queue []string
	for _, s := range skills {
		if inDegree[s.ID] == 0 {
			queue = append(queue, s.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(idSet) {
		var cycleNodes []string
		for _, s := range skills {
			if inDegree[s.ID] > 0 {
				cycleNodes = append(cycleNodes, s.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving skills: %s", strings.Join(cycleNodes, ", ")))
	}

	// Check at least one root
	hasRoot := false
	for _, s := range skills {
		if len(s.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if !hasRoot {
		errs = append(errs, "no root skills found (at least one skill must have no prerequisites)")
	}

	return errs
}
