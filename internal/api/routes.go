package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/dharavthjayanth/GUVI-HONEYPOT/internal/api/handlers"
	"github.com/dharavthjayanth/GUVI-HONEYPOT/internal/api/middleware"
	"github.com/dharavthjayanth/GUVI-HONEYPOT/internal/config"
	"github.com/dharavthjayanth/GUVI-HONEYPOT/internal/services"
)

// SetupRoutes configures all API routes.
func SetupRoutes(app *fiber.App, cfg *config.Config, svc *services.Services, log *logrus.Logger) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "honeypot",
		})
	})

	// Evaluator-facing endpoints, guarded by the shared API key
	api.Use(middleware.RequireAPIKey(cfg.Honeypot.APIKey))
	api.Post("/honeypot", handlers.Honeypot(svc.Honeypot, log))
	api.Get("/sessions/:id", handlers.GetSession(svc.Honeypot))
}
