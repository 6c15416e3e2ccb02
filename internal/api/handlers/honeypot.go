package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/dharavthjayanth/GUVI-HONEYPOT/internal/api/models"
	"github.com/dharavthjayanth/GUVI-HONEYPOT/internal/services"
)

const fallbackReply = "Sorry, I didn't understand. Can you repeat that?"

// Honeypot handles the evaluator's inbound message. It always answers
// HTTP 200 with the stable {status, reply} shape: an unparseable body
// degrades to a generic reply instead of an error, so a malformed request
// never breaks the conversation loop.
func Honeypot(svc *services.HoneypotService, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.HoneypotRequest
		if err := c.BodyParser(&req); err != nil {
			log.WithError(err).Warn("unparseable honeypot request")
			return c.JSON(models.HoneypotResponse{Status: "error", Reply: fallbackReply})
		}

		sessionID := req.NormalizedSessionID()
		msg := req.NormalizedMessage()

		log.WithFields(logrus.Fields{
			"sessionId": sessionID,
			"sender":    msg.Sender,
			"text":      truncate(msg.Text, 120),
		}).Info("inbound message")

		res := svc.ProcessMessage(sessionID, msg, req.NormalizedHistory())

		return c.JSON(models.HoneypotResponse{Status: "success", Reply: res.Reply})
	}
}

// truncate shortens s to at most n runes for logging. Scam text is routinely
// non-ASCII, so cutting on a byte offset could split a character.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
