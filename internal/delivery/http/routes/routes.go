package routes

import (
	"jobsync/internal/delivery/http/handler"
	"jobsync/internal/delivery/http/middleware"
	v1 "jobsync/internal/delivery/http/routes/v1"
	"jobsync/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	v1     v1.Handlers
	ws     fiber.Handler
}

func NewRegistry(health *handler.HealthHandler, api v1.Handlers, ws fiber.Handler) *Registry {
	if health == nil {
		health = handler.NewHealthHandler()
	}
	return &Registry{health: health, v1: api, ws: ws}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	// The insight feed carries applicant data; it is never served unauthenticated.
	if r.ws != nil && r.v1.Auth != nil {
		app.Get("/ws/insights", r.v1.Auth.WebSocket(), middleware.RequireRole(jwt.RoleRecruiter), r.ws)
	}

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.v1)
}
