package skillgraph

import (
	"testing"
)

func TestGetSkill_Exists(t *testing.T) {
	s, err := Default().GetSkill("deep-learning")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "Deep Learning" {
		t.Errorf("got name %q, want %q", s.Name, "Deep Learning")
	}
	if s.RequiredXP != 120 {
		t.Errorf("got required XP %d, want 120", s.RequiredXP)
	}
}

func TestGetSkill_NotFound(t *testing.T) {
	_, err := Default().GetSkill("nonexistent")
	if err == nil {
		t.Fatal("expected error for nonexistent skill, got nil")
	}
}

func TestAllSkills_Count(t *testing.T) {
	all := Default().AllSkills()
	if len(all) != 14 {
		t.Errorf("got %d skills, want 14", len(all))
	}
	if all[0].ID != "python" {
		t.Errorf("AllSkills should keep declaration order, first = %q", all[0].ID)
	}
}

func TestRootSkills(t *testing.T) {
	roots := Default().RootSkills()
	if len(roots) != 6 {
		t.Errorf("got %d roots, want 6", len(roots))
	}
	for _, s := range roots {
		if len(s.Prerequisites) != 0 {
			t.Errorf("root skill %q has prerequisites: %v", s.ID, s.Prerequisites)
		}
	}
}

func TestPrerequisites(t *testing.T) {
	prereqs := Default().Prerequisites("deep-learning")
	if len(prereqs) != 2 {
		t.Fatalf("deep-learning: got %d prereqs, want 2", len(prereqs))
	}
	if prereqs[0].ID != "ml-basics" || prereqs[1].ID != "linear-algebra" {
		t.Errorf("deep-learning prereqs: got %q, %q", prereqs[0].ID, prereqs[1].ID)
	}

	if got := Default().Prerequisites("python"); len(got) != 0 {
		t.Errorf("python: got %d prereqs, want 0", len(got))
	}
	if got := Default().Prerequisites("nonexistent"); got != nil {
		t.Errorf("nonexistent: got %v, want nil", got)
	}
}

func TestDependents(t *testing.T) {
	deps := Default().Dependents("python")
	depIDs := map[string]bool{}
	for _, d := range deps {
		depIDs[d.ID] = true
	}
	for _, id := range []string{"rest-apis", "pandas", "data-analysis", "ml-basics"} {
		if !depIDs[id] {
			t.Errorf("python missing dependent %q", id)
		}
	}
}

func TestTopologicalOrder(t *testing.T) {
	topo := Default().TopologicalOrder()
	if len(topo) != 14 {
		t.Fatalf("got %d skills in topo order, want 14", len(topo))
	}

	posMap := make(map[string]int, len(topo))
	for i, s := range topo {
		posMap[s.ID] = i
	}
	for _, s := range topo {
		for _, prereqID := range s.Prerequisites {
			if posMap[prereqID] >= posMap[s.ID] {
				t.Errorf("skill %q (pos %d) appears before prerequisite %q (pos %d)",
					s.ID, posMap[s.ID], prereqID, posMap[prereqID])
			}
		}
	}
}

func TestByRole(t *testing.T) {
	skills := Default().ByRole("data-analyst")
	ids := map[string]bool{}
	for _, s := range skills {
		ids[s.ID] = true
	}
	for _, id := range []string{"python", "sql", "excel", "pandas", "data-analysis", "data-viz"} {
		if !ids[id] {
			t.Errorf("data-analyst should include %q", id)
		}
	}
	if ids["deep-learning"] {
		t.Error("data-analyst should not include deep-learning")
	}
}

func TestFindRole(t *testing.T) {
	tests := []struct {
		key    string
		wantID string
		found  bool
	}{
		{"ml-engineer", "ml-engineer", true},
		{"Machine Learning Engineer", "ml-engineer", true},
		{"  data analyst ", "data-analyst", true},
		{"DATA-SCIENTIST", "data-scientist", true},
		{"Astronaut", "", false},
	}
	for _, tt := range tests {
		r, ok := Default().FindRole(tt.key)
		if ok != tt.found {
			t.Errorf("FindRole(%q): found = %v, want %v", tt.key, ok, tt.found)
			continue
		}
		if ok && r.ID != tt.wantID {
			t.Errorf("FindRole(%q) = %q, want %q", tt.key, r.ID, tt.wantID)
		}
	}
}

func TestRoleRequirement(t *testing.T) {
	r, _ := Default().FindRole("senior-ml-engineer")
	if !r.Senior {
		t.Error("senior-ml-engineer should be flagged senior")
	}
	req, ok := r.Requirement("docker")
	if !ok || req.Importance != 0.6 {
		t.Errorf("docker requirement = %+v, %v", req, ok)
	}
	if _, ok := r.Requirement("excel"); ok {
		t.Error("senior-ml-engineer should not require excel")
	}
}

func TestFindContent(t *testing.T) {
	item, ok := Default().FindContent("pandas", KindProject, TierAdvanced)
	if !ok {
		t.Fatal("expected an advanced pandas project")
	}
	if item.ID != "P102" {
		t.Errorf("got %q, want P102", item.ID)
	}

	if _, ok := Default().FindContent("sql", KindProject, TierAdvanced); ok {
		t.Error("sql has no advanced project in the seed catalog")
	}
}

func TestResourceFor(t *testing.T) {
	tests := []struct {
		skill string
		want  string
	}{
		{"model-deployment", "Project: Deploy a model with Docker + FastAPI"},
		{"deep-learning", "Course: Deep Learning Specialization"},
		{"sql", "Course: SQL Fundamentals"},
		{"nonexistent", ""},
	}
	for _, tt := range tests {
		if got := Default().ResourceFor(tt.skill); got != tt.want {
			t.Errorf("ResourceFor(%q) = %q, want %q", tt.skill, got, tt.want)
		}
	}
}

func TestAllSkills_ReturnsCopy(t *testing.T) {
	a := Default().AllSkills()
	a[0].Name = "MUTATED"
	a[0].Prerequisites = append(a[0].Prerequisites, "x")
	c := Default().AllSkills()
	if c[0].Name == "MUTATED" {
		t.Error("AllSkills returned the internal slice")
	}
	if len(c[0].Prerequisites) != 0 {
		t.Error("AllSkills shares prerequisite slices with the graph")
	}
}

func TestVersion(t *testing.T) {
	if v := Default().Version(); v != "v1.0.0" {
		t.Errorf("Version() = %q, want v1.0.0", v)
	}
}
