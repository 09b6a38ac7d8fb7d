package capability

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/pathwise/internal/career"
	"github.com/abhisek/pathwise/internal/roadmap"
	"github.com/abhisek/pathwise/internal/xp"
)

// Built-in capability names.
const (
	NameEstimateXP  = "estimate-xp"
	NameSkillStatus = "skill-status"
	NameRecommend   = "recommend"
	NameGapAnalysis = "gap-analysis"
	NameRoadmap     = "roadmap"
	NameAnalyze     = "analyze"
	NameAwardXP     = "award-xp"
)

var evidenceSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"years_experience": map[string]any{"type": "number", "minimum": 0},
		"num_projects":     map[string]any{"type": "integer", "minimum": 0},
		"has_cert":         map[string]any{"type": "boolean"},
	},
	"additionalProperties": false,
}

var evidenceMapSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": evidenceSchema,
}

var xpMapSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": map[string]any{"type": "integer", "minimum": 0},
}

var roleSchema = map[string]any{"type": "string", "minLength": 1}

var skillsSchema = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

func objectSchema(required []string, props map[string]any) map[string]any {
	s := map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// RoadmapOutput is the result of the roadmap capability.
type RoadmapOutput struct {
	TargetRole     string         `json:"target_role"`
	RoleFound      bool           `json:"role_found"`
	DetectedSkills []string       `json:"detected_skills"`
	Steps          []roadmap.Step `json:"steps"`
	TotalWeeks     int            `json:"total_weeks"`
	Narrative      string         `json:"narrative"`
}

// Defaults returns a registry with every built-in capability bound to svc.
func Defaults(svc *career.Service) *Registry {
	r := NewRegistry()
	r.MustRegister(
		New(NameEstimateXP,
			"Estimate per-skill XP from CV evidence.",
			objectSchema([]string{"evidence"}, map[string]any{"evidence": evidenceMapSchema}),
			func(_ context.Context, raw json.RawMessage) (any, error) {
				var in struct {
					Evidence map[string]xp.Evidence `json:"evidence"`
				}
				if err := decode(NameEstimateXP, raw, &in); err != nil {
					return nil, err
				}
				return svc.EstimateXP(in.Evidence)
			}),

		New(NameSkillStatus,
			"Compute locked/unlocked/in_progress/completed for every skill from XP.",
			objectSchema(nil, map[string]any{"xp": xpMapSchema}),
			func(_ context.Context, raw json.RawMessage) (any, error) {
				var in struct {
					XP map[string]int `json:"xp"`
				}
				if err := decode(NameSkillStatus, raw, &in); err != nil {
					return nil, err
				}
				return svc.Status(in.XP), nil
			}),

		New(NameAwardXP,
			"Award XP to one skill and report the status changes it causes.",
			objectSchema([]string{"skill", "amount"}, map[string]any{
				"xp":     xpMapSchema,
				"skill":  map[string]any{"type": "string", "minLength": 1},
				"amount": map[string]any{"type": "integer", "minimum": 1},
			}),
			func(_ context.Context, raw json.RawMessage) (any, error) {
				var in struct {
					XP     map[string]int `json:"xp"`
					Skill  string         `json:"skill"`
					Amount int            `json:"amount"`
				}
				if err := decode(NameAwardXP, raw, &in); err != nil {
					return nil, err
				}
				return svc.Award(in.XP, in.Skill, in.Amount)
			}),

		New(NameRecommend,
			"Recommend courses and projects for a target role.",
			objectSchema([]string{"target_role"}, map[string]any{
				"target_role": roleSchema,
				"xp":          xpMapSchema,
				"evidence":    evidenceMapSchema,
				"top_k":       map[string]any{"type": "integer", "minimum": 0},
			}),
			func(_ context.Context, raw json.RawMessage) (any, error) {
				var in struct {
					TargetRole string                 `json:"target_role"`
					XP         map[string]int         `json:"xp"`
					Evidence   map[string]xp.Evidence `json:"evidence"`
					TopK       int                    `json:"top_k"`
				}
				if err := decode(NameRecommend, raw, &in); err != nil {
					return nil, err
				}
				xpBySkill := in.XP
				if len(in.Evidence) > 0 {
					estimated, err := svc.EstimateXP(in.Evidence)
					if err != nil {
						return nil, err
					}
					xpBySkill = mergeXP(in.XP, estimated)
				}
				return svc.Recommend(in.TargetRole, xpBySkill, in.TopK)
			}),

		New(NameGapAnalysis,
			"List a role's required skills missing from a skill list, most important first.",
			objectSchema([]string{"target_role"}, map[string]any{
				"target_role": roleSchema,
				"skills":      skillsSchema,
			}),
			func(_ context.Context, raw json.RawMessage) (any, error) {
				var in struct {
					TargetRole string   `json:"target_role"`
					Skills     []string `json:"skills"`
				}
				if err := decode(NameGapAnalysis, raw, &in); err != nil {
					return nil, err
				}
				return svc.Gaps(in.TargetRole, in.Skills)
			}),

		New(NameRoadmap,
			"Build an ordered learning roadmap for a target role.",
			objectSchema([]string{"target_role"}, map[string]any{
				"target_role": roleSchema,
				"skills":      skillsSchema,
				"resume_text": map[string]any{"type": "string"},
			}),
			func(ctx context.Context, raw json.RawMessage) (any, error) {
				var in struct {
					TargetRole string   `json:"target_role"`
					Skills     []string `json:"skills"`
					ResumeText string   `json:"resume_text"`
				}
				if err := decode(NameRoadmap, raw, &in); err != nil {
					return nil, err
				}
				report, err := svc.Analyze(ctx, career.Request{
					TargetRole: in.TargetRole,
					ResumeText: in.ResumeText,
					Skills:     in.Skills,
				})
				if err != nil {
					return nil, err
				}
				return RoadmapOutput{
					TargetRole:     report.TargetRole,
					RoleFound:      report.RoleFound,
					DetectedSkills: report.DetectedSkills,
					Steps:          report.Roadmap,
					TotalWeeks:     report.TotalWeeks,
					Narrative:      report.Narrative,
				}, nil
			}),

		New(NameAnalyze,
			"Run the full analysis: detection, XP, statuses, recommendations, gaps and roadmap.",
			objectSchema([]string{"target_role"}, map[string]any{
				"target_role": roleSchema,
				"resume_text": map[string]any{"type": "string"},
				"skills":      skillsSchema,
				"evidence":    evidenceMapSchema,
				"top_k":       map[string]any{"type": "integer", "minimum": 0},
			}),
			func(ctx context.Context, raw json.RawMessage) (any, error) {
				var req career.Request
				if err := decode(NameAnalyze, raw, &req); err != nil {
					return nil, err
				}
				return svc.Analyze(ctx, req)
			}),
	)
	return r
}

func decode(name string, raw json.RawMessage, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return &InvalidInputError{Capability: name, Err: fmt.Errorf("decode input: %w", err)}
	}
	return nil
}

// mergeXP keeps the higher of explicit and estimated XP per skill.
func mergeXP(explicit, estimated map[string]int) map[string]int {
	out := make(map[string]int, len(explicit)+len(estimated))
	for k, v := range estimated {
		out[k] = v
	}
	for k, v := range explicit {
		out[k] = max(out[k], v)
	}
	return out
}
