package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dharavthjayanth/GUVI-HONEYPOT/internal/services"
)

// GetSession returns the read-only snapshot of one session for debugging:
// detection state, latest score and signals, callback progress, and the
// cumulative extracted intelligence.
func GetSession(svc *services.HoneypotService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, ok := svc.Snapshot(c.Params("id"))
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Session not found",
			})
		}
		return c.JSON(snap)
	}
}
