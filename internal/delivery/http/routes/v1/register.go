package v1

import (
	"jobsync/internal/delivery/http/handler"
	"jobsync/internal/delivery/http/middleware"
	"jobsync/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth    *middleware.AuthMiddleware
	Match   *handler.MatchHandler
	Insight *handler.InsightHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil || h.Auth == nil {
		return
	}

	protected := r.Group("", h.Auth.Middleware())

	// Role checks are per route: seeker and recruiter routes share prefixes.
	if h.Match != nil {
		h.Match.RegisterRoutes(protected, middleware.RequireRole(jwt.RoleSeeker))
	}
	if h.Insight != nil {
		h.Insight.RegisterRoutes(protected, middleware.RequireRole(jwt.RoleRecruiter))
	}
}
