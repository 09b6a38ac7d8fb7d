package skillgraph

import (
	"strings"
	"testing"
)

func TestValidate_SeedCatalogPasses(t *testing.T) {
	gr, err := Load(seedYAML)
	if err != nil {
		t.Fatalf("seed catalog validation failed: %v", err)
	}
	if gr == nil {
		t.Fatal("expected a graph")
	}
}

func TestValidateCatalog_DetectsCycle(t *testing.T) {
	c := makeMinimalCatalog()
	c.Skills = append(c.Skills,
		Skill{ID: "x", Name: "X", RequiredXP: 10, Prerequisites: []string{"y"}},
		Skill{ID: "y", Name: "Y", RequiredXP: 10, Prerequisites: []string{"x"}},
	)
	_, err := New(c)
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention cycle, got: %v", err)
	}
}

func TestValidateCatalog_DetectsSelfPrerequisite(t *testing.T) {
	c := makeMinimalCatalog()
	c.Skills = append(c.Skills, Skill{ID: "loop", Name: "Loop", RequiredXP: 10, Prerequisites: []string{"loop"}})
	_, err := New(c)
	if err == nil || !strings.Contains(err.Error(), "cycle") {
		t.Fatalf("expected cycle error, got: %v", err)
	}
}

func TestValidateCatalog_DetectsDanglingPrereq(t *testing.T) {
	c := makeMinimalCatalog()
	c.Skills = append(c.Skills, Skill{ID: "c", Name: "C", RequiredXP: 10, Prerequisites: []string{"nonexistent"}})
	_, err := New(c)
	if err == nil {
		t.Fatal("expected error for dangling prerequisite, got nil")
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("error should mention the missing ID, got: %v", err)
	}
	if strings.Contains(err.Error(), "cycle") {
		t.Errorf("dangling prerequisite should not be reported as a cycle: %v", err)
	}
}

func TestValidateCatalog_DetectsDuplicateID(t *testing.T) {
	c := makeMinimalCatalog()
	c.Skills = append(c.Skills, c.Skills[0])
	_, err := New(c)
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateCatalog_RequiresPositiveXP(t *testing.T) {
	c := makeMinimalCatalog()
	c.Skills[0].RequiredXP = 0
	_, err := New(c)
	if err == nil || !strings.Contains(err.Error(), "RequiredXP") {
		t.Fatalf("expected RequiredXP error, got: %v", err)
	}
}

func TestValidateCatalog_InvalidVersion(t *testing.T) {
	c := makeMinimalCatalog()
	c.Version = "1.0"
	_, err := New(c)
	if err == nil || !strings.Contains(err.Error(), "semantic version") {
		t.Fatalf("expected version error, got: %v", err)
	}
}

func TestValidateCatalog_ImportanceOutOfRange(t *testing.T) {
	c := makeMinimalCatalog()
	c.Roles[0].Requirements[0].Importance = 1.5
	_, err := New(c)
	if err == nil || !strings.Contains(err.Error(), "importance") {
		t.Fatalf("expected importance error, got: %v", err)
	}
}

func TestValidateCatalog_RequirementMustMatchSkillRoles(t *testing.T) {
	c := makeMinimalCatalog()
	c.Skills[1].Roles = nil
	_, err := New(c)
	if err == nil || !strings.Contains(err.Error(), "does not list the role") {
		t.Fatalf("expected role mismatch error, got: %v", err)
	}
}

func TestValidateCatalog_UnknownRoleOnSkill(t *testing.T) {
	c := makeMinimalCatalog()
	c.Skills[0].Roles = append(c.Skills[0].Roles, "astronaut")
	_, err := New(c)
	if err == nil || !strings.Contains(err.Error(), "astronaut") {
		t.Fatalf("expected unknown role error, got: %v", err)
	}
}

func TestValidateCatalog_BadContent(t *testing.T) {
	c := makeMinimalCatalog()
	c.Content = append(c.Content,
		ContentItem{ID: "X1", Title: "Ghost", Kind: KindCourse, SkillID: "ghost", Tier: TierBeginner},
		ContentItem{ID: "X2", Title: "Odd", Kind: "video", SkillID: "a", Tier: "expert"},
	)
	_, err := New(c)
	if err == nil {
		t.Fatal("expected content errors, got nil")
	}
	for _, want := range []string{"ghost", `unknown kind "video"`, `unknown tier "expert"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q, got: %v", want, err)
		}
	}
}

func TestValidateCatalog_AggregatesErrors(t *testing.T) {
	c := makeMinimalCatalog()
	c.Version = ""
	c.Skills[0].RequiredXP = -1
	_, err := New(c)
	if err == nil {
		t.Fatal("expected error")
	}
	if strings.Count(err.Error(), "\n  ") < 2 {
		t.Errorf("expected multiple problems listed, got: %v", err)
	}
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	data := []byte(`
version: v1.0.0
skills:
  - id: a
    name: A
    required_xp: 10
    roles: [r]
    colour: blue
roles:
  - id: r
    name: R
    requirements:
      - {skill: a, importance: 0.5}
`)
	if _, err := Load(data); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoad_MinimalYAML(t *testing.T) {
	data := []byte(`
version: v0.1.0
skills:
  - id: a
    name: A
    required_xp: 100
    roles: [r]
  - id: b
    name: B
    required_xp: 80
    prerequisites: [a]
    roles: [r]
roles:
  - id: r
    name: R
    requirements:
      - {skill: b, importance: 0.9}
`)
	gr, err := Load(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gr.AllSkills()) != 2 {
		t.Errorf("got %d skills, want 2", len(gr.AllSkills()))
	}
	if deps := gr.Dependents("a"); len(deps) != 1 || deps[0].ID != "b" {
		t.Errorf("Dependents(a) = %v", deps)
	}
}

// makeMinimalCatalog returns a small valid catalog: a <- b, one role requiring both.
func makeMinimalCatalog() Catalog {
	return Catalog{
		Version: "v1.0.0",
		Skills: []Skill{
			{ID: "a", Name: "A", RequiredXP: 100, Roles: []string{"r"}},
			{ID: "b", Name: "B", RequiredXP: 80, Prerequisites: []string{"a"}, Roles: []string{"r"}},
		},
		Roles: []Role{
			{ID: "r", Name: "R", Requirements: []Requirement{
				{SkillID: "b", Importance: 0.9},
				{SkillID: "a", Importance: 0.5},
			}},
		},
		Content: []ContentItem{
			{ID: "C1", Title: "A Course", Kind: KindCourse, SkillID: "a", Tier: TierBeginner},
		},
	}
}
