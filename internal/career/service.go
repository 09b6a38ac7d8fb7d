// Package career composes the skill engine into a single analysis: detect a
// learner's skills, estimate XP, derive statuses and recommendations, find
// gaps for a target role and schedule a roadmap.
package career

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/abhisek/pathwise/internal/gap"
	"github.com/abhisek/pathwise/internal/progress"
	"github.com/abhisek/pathwise/internal/recommend"
	"github.com/abhisek/pathwise/internal/roadmap"
	"github.com/abhisek/pathwise/internal/skillgraph"
	"github.com/abhisek/pathwise/internal/xp"
)

// DefaultTopK caps recommendation lists when neither the request nor the
// service options set a limit.
const DefaultTopK = 5

// Request is the input to Analyze.
type Request struct {
	TargetRole string                 `json:"target_role"`
	ResumeText string                 `json:"resume_text,omitempty"`
	Skills     []string               `json:"skills,omitempty"`
	Evidence   map[string]xp.Evidence `json:"evidence,omitempty"`
	TopK       int                    `json:"top_k,omitempty"`
}

// Report is the full result of an analysis. It lives for one request.
type Report struct {
	SessionID       string                                              `json:"session_id"`
	TargetRole      string                                              `json:"target_role"`
	RoleFound       bool                                                `json:"role_found"`
	DetectedSkills  []string                                            `json:"detected_skills"`
	DetectedNames   []string                                            `json:"detected_skill_names"`
	Gaps            []gap.Entry                                         `json:"gaps"`
	Roadmap         []roadmap.Step                                      `json:"roadmap"`
	TotalWeeks      int                                                 `json:"total_weeks"`
	Narrative       string                                              `json:"narrative"`
	Skills          *orderedmap.OrderedMap[string, progress.SkillState] `json:"skills"`
	Recommendations []skillgraph.ContentItem                            `json:"recommendations"`
	NextSkills      []recommend.Candidate                               `json:"next_skills"`
}

// Options configures a Service.
type Options struct {
	Roadmap roadmap.Options
	TopK    int
	Logger  zerolog.Logger
	// Registerer receives the operation counters. Nil keeps them private.
	Registerer prometheus.Registerer
}

// Service runs analyses against one catalog. It holds no per-request state
// and is safe for concurrent use.
type Service struct {
	graph     *skillgraph.Graph
	scheduler *roadmap.Scheduler
	topK      int
	log       zerolog.Logger
	metrics   *Metrics
}

// NewService creates a Service for the given catalog.
func NewService(g *skillgraph.Graph, opts Options) *Service {
	topK := opts.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Service{
		graph:     g,
		scheduler: roadmap.NewScheduler(g, opts.Roadmap),
		topK:      topK,
		log:       opts.Logger.With().Str("component", "career").Logger(),
		metrics:   NewMetrics(opts.Registerer),
	}
}

// Graph returns the catalog the service works against.
func (s *Service) Graph() *skillgraph.Graph { return s.graph }

// Metrics returns the service's operation counters.
func (s *Service) Metrics() *Metrics { return s.metrics }

// Analyze runs the full pipeline. An unknown target role is not an error:
// the report comes back with RoleFound unset, no gaps or roadmap, and a
// narrative saying so.
func (s *Service) Analyze(ctx context.Context, req Request) (*Report, error) {
	const op = "analyze"
	start := time.Now()

	if err := ctx.Err(); err != nil {
		s.metrics.Observe(op, OutcomeError)
		return nil, err
	}
	if err := s.validate(req); err != nil {
		s.metrics.Observe(op, OutcomeInvalid)
		return nil, err
	}

	sessionID := uuid.NewString()
	log := s.log.With().Str("session_id", sessionID).Str("role", req.TargetRole).Logger()
	log.Debug().Int("resume_chars", len(req.ResumeText)).Int("skills", len(req.Skills)).Msg("analysis started")

	evidence := s.resolveEvidence(req.Evidence)
	xpBySkill := xp.EstimateAll(s.graph, evidence)
	detected := s.detect(req, xpBySkill)
	statuses := progress.ComputeStatuses(s.graph, xpBySkill)

	report := &Report{
		SessionID:      sessionID,
		TargetRole:     req.TargetRole,
		DetectedSkills: detected,
		DetectedNames:  s.skillNames(detected),
		Gaps:           []gap.Entry{},
		Roadmap:        []roadmap.Step{},
		Skills:         progress.Snapshot(s.graph, xpBySkill),
	}

	role, ok := s.graph.FindRole(req.TargetRole)
	if !ok {
		report.Narrative = roadmap.RoleNotFound(req.TargetRole)
		report.Recommendations = []skillgraph.ContentItem{}
		report.NextSkills = []recommend.Candidate{}
		s.metrics.Observe(op, OutcomeRoleNotFound)
		log.Info().Dur("took", time.Since(start)).Msg("target role not in catalog")
		return report, nil
	}

	topK := s.topKFor(req.TopK)
	report.RoleFound = true
	report.TargetRole = role.Name
	report.Recommendations = orEmpty(recommend.Select(s.graph, statuses, xpBySkill, role.ID, topK))
	report.NextSkills = orEmpty(recommend.NextSkills(s.graph, statuses, xpBySkill, role.ID, topK))

	gaps, err := gap.Analyze(s.graph, detected, role.ID)
	if err != nil {
		s.metrics.Observe(op, OutcomeError)
		return nil, err
	}
	plan := s.scheduler.Build(gaps, role.ID, detected)

	report.Gaps = gaps
	report.Roadmap = plan.Steps
	report.TotalWeeks = plan.TotalWeeks()
	report.Narrative = roadmap.Narrative(role.Name, gaps)

	s.metrics.Observe(op, OutcomeOK)
	log.Info().
		Int("detected", len(detected)).
		Int("gaps", len(gaps)).
		Int("steps", len(plan.Steps)).
		Int("total_weeks", report.TotalWeeks).
		Dur("took", time.Since(start)).
		Msg("analysis complete")
	return report, nil
}

// EstimateXP converts per-skill evidence into XP for every catalog skill.
func (s *Service) EstimateXP(evidence map[string]xp.Evidence) (map[string]int, error) {
	const op = "estimate_xp"
	for id, ev := range evidence {
		if err := ev.Validate(); err != nil {
			s.metrics.Observe(op, OutcomeInvalid)
			return nil, &InputError{Field: "evidence[" + id + "]", Err: err}
		}
	}
	s.metrics.Observe(op, OutcomeOK)
	return xp.EstimateAll(s.graph, s.resolveEvidence(evidence)), nil
}

// Status returns the ordered per-skill state for an XP map.
func (s *Service) Status(xpBySkill map[string]int) *orderedmap.OrderedMap[string, progress.SkillState] {
	s.metrics.Observe("skill_status", OutcomeOK)
	return progress.Snapshot(s.graph, s.clampXP(xpBySkill))
}

// AwardResult is the outcome of Award.
type AwardResult struct {
	XP          map[string]int        `json:"xp"`
	Transitions []progress.Transition `json:"transitions"`
}

// Award adds XP to one skill and reports the status changes it causes,
// including skills it unlocks.
func (s *Service) Award(xpBySkill map[string]int, skill string, amount int) (AwardResult, error) {
	const op = "award_xp"
	id, ok := gap.Resolve(s.graph, skill)
	if !ok {
		s.metrics.Observe(op, OutcomeInvalid)
		return AwardResult{}, &InputError{Field: "skill", Err: fmt.Errorf("unknown skill %q", skill)}
	}
	if amount <= 0 {
		s.metrics.Observe(op, OutcomeInvalid)
		return AwardResult{}, &InputError{Field: "amount", Err: errors.New("must be > 0")}
	}

	before := s.clampXP(xpBySkill)
	after := xp.Award(s.graph, before, id, amount)
	transitions := progress.Diff(s.graph,
		progress.ComputeStatuses(s.graph, before),
		progress.ComputeStatuses(s.graph, after))

	s.metrics.Observe(op, OutcomeOK)
	s.log.Debug().Str("skill", id).Int("amount", amount).Int("transitions", len(transitions)).Msg("xp awarded")
	return AwardResult{XP: after, Transitions: orEmpty(transitions)}, nil
}

// Recommend returns content for a role given current XP.
func (s *Service) Recommend(roleKey string, xpBySkill map[string]int, topK int) ([]skillgraph.ContentItem, error) {
	const op = "recommend"
	role, ok := s.graph.FindRole(roleKey)
	if !ok {
		s.metrics.Observe(op, OutcomeRoleNotFound)
		return nil, &InputError{Field: "target_role", Err: fmt.Errorf("%w: %q", gap.ErrUnknownRole, roleKey)}
	}
	if topK < 0 {
		s.metrics.Observe(op, OutcomeInvalid)
		return nil, &InputError{Field: "top_k", Err: errors.New("must be >= 0")}
	}
	xpBySkill = s.clampXP(xpBySkill)
	statuses := progress.ComputeStatuses(s.graph, xpBySkill)
	s.metrics.Observe(op, OutcomeOK)
	return orEmpty(recommend.Select(s.graph, statuses, xpBySkill, role.ID, s.topKFor(topK))), nil
}

// Gaps normalises raw skill names and returns the role's missing skills.
func (s *Service) Gaps(roleKey string, skills []string) ([]gap.Entry, error) {
	const op = "gap_analysis"
	gaps, err := gap.Analyze(s.graph, gap.Normalize(s.graph, skills), roleKey)
	if err != nil {
		s.metrics.Observe(op, OutcomeRoleNotFound)
		return nil, &InputError{Field: "target_role", Err: err}
	}
	s.metrics.Observe(op, OutcomeOK)
	return gaps, nil
}

// Roadmap schedules a plan for a role from raw skill names. An unknown role
// yields an empty, not-found result.
func (s *Service) Roadmap(roleKey string, skills []string) roadmap.Result {
	const op = "roadmap"
	detected := gap.Normalize(s.graph, skills)
	gaps, err := gap.Analyze(s.graph, detected, roleKey)
	if err != nil {
		s.metrics.Observe(op, OutcomeRoleNotFound)
		return s.scheduler.Build(nil, roleKey, detected)
	}
	s.metrics.Observe(op, OutcomeOK)
	return s.scheduler.Build(gaps, roleKey, detected)
}

func (s *Service) validate(req Request) error {
	if strings.TrimSpace(req.TargetRole) == "" {
		return &InputError{Field: "target_role", Err: errors.New("required")}
	}
	if req.TopK < 0 {
		return &InputError{Field: "top_k", Err: errors.New("must be >= 0")}
	}
	for id, ev := range req.Evidence {
		if err := ev.Validate(); err != nil {
			return &InputError{Field: "evidence[" + id + "]", Err: err}
		}
	}
	return nil
}

// resolveEvidence rekeys evidence by catalog skill ID, so "Python" and
// "python" land on the same skill. Unresolvable keys are dropped.
func (s *Service) resolveEvidence(evidence map[string]xp.Evidence) map[string]xp.Evidence {
	keys := make([]string, 0, len(evidence))
	for k := range evidence {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]xp.Evidence, len(evidence))
	for _, k := range keys {
		id, ok := gap.Resolve(s.graph, k)
		if !ok {
			s.log.Debug().Str("skill", k).Msg("ignoring evidence for unknown skill")
			continue
		}
		if _, dup := out[id]; dup {
			continue
		}
		out[id] = evidence[k]
	}
	return out
}

// detect merges skills found in the resume text, listed explicitly, and
// backed by evidence. Text matches come first in ID order, then listed
// skills, then evidence, deduplicated.
// detect merges skills found in the resume text, explicit skills and skills
// whose evidence is worth some XP.
func (s *Service) detect(req Request, xpBySkill map[string]int) []string {
	names := gap.Detect(s.graph, req.ResumeText)
	names = append(names, req.Skills...)

	var fromEvidence []string
	for id, v := range xpBySkill {
		if v > 0 {
			fromEvidence = append(fromEvidence, id)
		}
	}
	sort.Strings(fromEvidence)
	names = append(names, fromEvidence...)

	return gap.Normalize(s.graph, names)
}

func (s *Service) skillNames(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if sk, err := s.graph.GetSkill(id); err == nil {
			out = append(out, sk.Name)
		}
	}
	return out
}

func (s *Service) clampXP(xpBySkill map[string]int) map[string]int {
	out := make(map[string]int, len(xpBySkill))
	for k, v := range xpBySkill {
		id, ok := gap.Resolve(s.graph, k)
		if !ok {
			continue
		}
		sk, err := s.graph.GetSkill(id)
		if err != nil {
			continue
		}
		out[id] = max(out[id], min(max(v, 0), sk.RequiredXP))
	}
	return out
}

func (s *Service) topKFor(requested int) int {
	if requested > 0 {
		return requested
	}
	return s.topK
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
