package server

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"github.com/abhisek/pathwise/internal/capability"
	"github.com/abhisek/pathwise/internal/career"
	"github.com/abhisek/pathwise/internal/skillgraph"
)

// Handler serves the catalog and analysis endpoints.
type Handler struct {
	svc  *career.Service
	caps *capability.Registry
}

func NewHandler(svc *career.Service, caps *capability.Registry) *Handler {
	return &Handler{svc: svc, caps: caps}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/skills", h.ListSkills)
	r.Get("/roles", h.ListRoles)
	r.Post("/analyze", h.Analyze)

	grp := r.Group("/capabilities")
	grp.Get("/", h.ListCapabilities)
	grp.Post("/:name", h.InvokeCapability)
}

// ListSkills returns the catalog skills, optionally narrowed with ?role=.
func (h *Handler) ListSkills(c fiber.Ctx) error {
	g := h.svc.Graph()
	roleKey := c.Query("role")
	if roleKey == "" {
		return success(c, g.AllSkills())
	}

	role, ok := g.FindRole(roleKey)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "role not found: "+roleKey)
	}
	skills := g.ByRole(role.ID)
	if skills == nil {
		skills = []skillgraph.Skill{}
	}
	return success(c, skills)
}

func (h *Handler) ListRoles(c fiber.Ctx) error {
	return success(c, h.svc.Graph().Roles())
}

// Analyze runs the full analysis. The body is validated against the analyze
// capability schema.
func (h *Handler) Analyze(c fiber.Ctx) error {
	out, err := h.caps.Invoke(c.Context(), capability.NameAnalyze, body(c))
	if err != nil {
		return err
	}
	return success(c, out)
}

func (h *Handler) ListCapabilities(c fiber.Ctx) error {
	return success(c, h.caps.List())
}

func (h *Handler) InvokeCapability(c fiber.Ctx) error {
	out, err := h.caps.Invoke(c.Context(), c.Params("name"), body(c))
	if err != nil {
		return err
	}
	return success(c, out)
}

// body copies the request body; fiber reuses the underlying buffer after
// the handler returns.
func body(c fiber.Ctx) json.RawMessage {
	b := c.Body()
	out := make(json.RawMessage, len(b))
	copy(out, b)
	return out
}
