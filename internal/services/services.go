package services

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dharavthjayanth/GUVI-HONEYPOT/internal/callback"
	"github.com/dharavthjayanth/GUVI-HONEYPOT/internal/config"
	"github.com/dharavthjayanth/GUVI-HONEYPOT/internal/session"
)

// Services holds all service instances the adapter layer talks to.
type Services struct {
	Honeypot *HoneypotService
	Store    session.Store
}

// NewServices creates all service instances from config.
func NewServices(cfg *config.Config, log *logrus.Logger) *Services {
	store := session.NewMemoryStore()

	dispatcher := callback.NewDispatcher(
		cfg.Callback.URL,
		time.Duration(cfg.Callback.TimeoutSeconds)*time.Second,
		cfg.Callback.MaxRetries,
		log,
	)

	return &Services{
		Honeypot: NewHoneypotService(
			store,
			dispatcher,
			cfg.Honeypot.ScamThreshold,
			cfg.Honeypot.MinEngagementMessages,
			log,
		),
		Store: store,
	}
}
