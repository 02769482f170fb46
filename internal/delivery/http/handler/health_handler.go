package handler

import (
	"context"
	"time"

	"jobsync/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness and the state of named dependencies.
// Optional dependencies are reported but do not fail the check.
type HealthHandler struct {
	required map[string]Pinger
	optional map[string]Pinger
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{required: map[string]Pinger{}, optional: map[string]Pinger{}}
}

func (h *HealthHandler) Require(name string, p Pinger) *HealthHandler {
	if p != nil {
		h.required[name] = p
	}
	return h
}

func (h *HealthHandler) Optional(name string, p Pinger) *HealthHandler {
	if p != nil {
		h.optional[name] = p
	}
	return h
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Check)
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]string{}
	healthy := true
	for name, p := range h.required {
		if err := p.Ping(ctx); err != nil {
			checks[name] = "down"
			healthy = false
			continue
		}
		checks[name] = "up"
	}
	for name, p := range h.optional {
		if err := p.Ping(ctx); err != nil {
			checks[name] = "down"
			continue
		}
		checks[name] = "up"
	}

	if !healthy {
		return response.Error(c, fiber.StatusServiceUnavailable, "unhealthy", checks)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, checks)
}
