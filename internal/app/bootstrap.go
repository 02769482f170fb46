package app

import (
	"fmt"
	"strings"

	"jobsync/internal/delivery/http/handler"
	"jobsync/internal/delivery/http/middleware"
	"jobsync/internal/delivery/http/routes"
	v1 "jobsync/internal/delivery/http/routes/v1"
	"jobsync/internal/pkg/jwt"
	"jobsync/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware(c.Logger)
	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	app.Use(accessMw.Middleware())
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(c.Config.JWT.AccessSecret, c.Config.JWT.AccessExpiresIn)

	health := handler.NewHealthHandler().
		Require("database", c.DB).
		Optional("redis", c.Cache)

	wsHandler := ws.NewHandler(c.Hub, c.Logger)

	routes.NewRegistry(health, v1.Handlers{
		Auth:    middleware.NewAuthMiddleware(jwtSvc),
		Match:   handler.NewMatchHandler(c.Matching),
		Insight: handler.NewInsightHandler(c.Matching),
	}, wsHandler.HandleInsightsWS).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
