package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireAPIKey guards a route group with the static evaluator API key,
// passed in the x-api-key header.
func RequireAPIKey(apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := strings.TrimSpace(c.Get("x-api-key"))
		if key == "" || key != apiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized: invalid API key",
			})
		}
		return c.Next()
	}
}
