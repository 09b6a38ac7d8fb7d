package skillgraph

// Kind is the format of a learning content item.
type Kind string

const (
	KindCourse  Kind = "course"
	KindProject Kind = "project"
)

// Tier is the difficulty tier of a learning content item.
type Tier string

const (
	TierBeginner Tier = "beginner" // Instructional material for skills with little XP
	TierAdvanced Tier = "advanced" // Practice material once the basics are in place
)

// Skill represents a single skill node in the graph.
type Skill struct {
	ID            string   `yaml:"id" json:"id"`
	Name          string   `yaml:"name" json:"name"`
	Description   string   `yaml:"description" json:"description,omitempty"`
	RequiredXP    int      `yaml:"required_xp" json:"required_xp"`
	Prerequisites []string `yaml:"prerequisites" json:"prerequisites"`
	Roles         []string `yaml:"roles" json:"roles"`
	Aliases       []string `yaml:"aliases" json:"aliases,omitempty"`
	Resource      string   `yaml:"resource" json:"resource,omitempty"`
}

// AppliesTo reports whether the skill is relevant for the given role ID.
func (s Skill) AppliesTo(roleID string) bool {
	for _, r := range s.Roles {
		if r == roleID {
			return true
		}
	}
	return false
}

// Requirement is a skill a role needs, weighted by how much it matters.
type Requirement struct {
	SkillID    string  `yaml:"skill" json:"skill"`
	Importance float64 `yaml:"importance" json:"importance"`
}

// Role is a target job role and the skills it requires.
type Role struct {
	ID           string        `yaml:"id" json:"id"`
	Name         string        `yaml:"name" json:"name"`
	Senior       bool          `yaml:"senior" json:"senior"`
	Requirements []Requirement `yaml:"requirements" json:"requirements"`
}

// Requirement returns the role's requirement for a skill, if any.
func (r Role) Requirement(skillID string) (Requirement, bool) {
	for _, req := range r.Requirements {
		if req.SkillID == skillID {
			return req, true
		}
	}
	return Requirement{}, false
}

// ContentItem is a course or project that trains a single skill.
type ContentItem struct {
	ID      string `yaml:"id" json:"id"`
	Title   string `yaml:"title" json:"title"`
	Kind    Kind   `yaml:"kind" json:"kind"`
	SkillID string `yaml:"skill" json:"skill"`
	Tier    Tier   `yaml:"tier" json:"tier"`
}

// Catalog is the raw, unvalidated catalog definition.
type Catalog struct {
	Version string        `yaml:"version" json:"version"`
	Skills  []Skill       `yaml:"skills" json:"skills"`
	Roles   []Role        `yaml:"roles" json:"roles"`
	Content []ContentItem `yaml:"content" json:"content"`
}
