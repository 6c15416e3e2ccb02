// Package metrics exposes the service's prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MessagesProcessed counts every inbound message run through the
	// scoring pipeline.
	MessagesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "honeypot_messages_processed_total",
		Help: "Inbound messages processed by the honeypot pipeline.",
	})

	// ScamsDetected counts sessions flipping to scam-detected, not
	// individual high-scoring messages.
	ScamsDetected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "honeypot_scams_detected_total",
		Help: "Sessions in which scam behavior was detected.",
	})

	// Callbacks counts final-report deliveries by outcome.
	Callbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "honeypot_callbacks_total",
		Help: "Final callback deliveries by result.",
	}, []string{"result"})

	// CallbackAttempts counts individual HTTP attempts, retries included,
	// so retry pressure is visible separately from delivery outcomes.
	CallbackAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "honeypot_callback_attempts_total",
		Help: "Individual callback HTTP attempts, including retries.",
	})
)
