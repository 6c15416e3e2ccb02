// Package callback delivers the consolidated session dossier to the external
// evaluator endpoint. Delivery retries with backoff; deciding *whether* and
// how often to deliver stays with the caller.
package callback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dharavthjayanth/GUVI-HONEYPOT/internal/extractor"
)

// DefaultURL is the evaluator endpoint reports go to unless configured
// otherwise.
const DefaultURL = "https://hackathon.guvi.in/api/updateHoneyPotFinalResult"

const (
	// DefaultTimeout bounds each individual delivery attempt.
	DefaultTimeout = 5 * time.Second
	// DefaultMaxRetries is how many times a failed attempt is retried.
	DefaultMaxRetries = 2

	maxBackoff = 4 * time.Second
)

// Report is the JSON document posted to the evaluator.
type Report struct {
	SessionID              string           `json:"sessionId"`
	ScamDetected           bool             `json:"scamDetected"`
	TotalMessagesExchanged int              `json:"totalMessagesExchanged"`
	ExtractedIntelligence  extractor.Bundle `json:"extractedIntelligence"`
	AgentNotes             string           `json:"agentNotes"`
}

// Dispatcher posts final reports to a fixed endpoint with bounded retries.
type Dispatcher struct {
	url        string
	maxRetries int
	client     *http.Client
	log        *logrus.Logger

	// sleep is swapped out in tests so retry backoff does not slow them.
	sleep func(time.Duration)
}

// NewDispatcher builds a dispatcher for the given endpoint. Zero values for
// timeout and maxRetries fall back to the package defaults.
func NewDispatcher(url string, timeout time.Duration, maxRetries int, log *logrus.Logger) *Dispatcher {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}
	return &Dispatcher{
		url:        url,
		maxRetries: maxRetries,
		client:     &http.Client{Timeout: timeout},
		log:        log,
		sleep:      time.Sleep,
	}
}

// Send posts the report. Any 2xx response counts as success and stops
// immediately. Failures are retried up to maxRetries times with backoff
// growing per attempt. It returns whether delivery succeeded and how many
// attempts were made; it never returns an error because exhausted delivery
// is non-fatal for the session.
func (d *Dispatcher) Send(ctx context.Context, r Report) (bool, int) {
	body, err := json.Marshal(r)
	if err != nil {
		// Report is plain strings and ints; this cannot happen in practice.
		d.log.WithField("sessionId", r.SessionID).WithError(err).Error("callback marshal failed")
		return false, 0
	}

	attempts := d.maxRetries + 1
	for attempt := 1; attempt <= attempts; attempt++ {
		err := d.post(ctx, body)
		if err == nil {
			d.log.WithFields(logrus.Fields{
				"sessionId": r.SessionID,
				"attempt":   attempt,
			}).Info("callback delivered")
			return true, attempt
		}
		d.log.WithFields(logrus.Fields{
			"sessionId": r.SessionID,
			"attempt":   attempt,
		}).WithError(err).Warn("callback delivery failed")

		if attempt < attempts {
			backoff := time.Duration(float64(attempt) * 1.5 * float64(time.Second))
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
			d.sleep(backoff)
		}
	}
	return false, attempts
}

func (d *Dispatcher) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
	return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(snippet))
}

// BuildAgentNotes produces the short human-readable summary attached to a
// report: the first few matched signal names plus presence flags for each
// artifact category. When nothing was extracted it falls back to a generic
// observation so the notes are never empty.
func BuildAgentNotes(signals []string, bundle extractor.Bundle) string {
	var parts []string
	if len(signals) > 0 {
		shown := signals
		if len(shown) > 8 {
			shown = shown[:8]
		}
		parts = append(parts, fmt.Sprintf("Signals: %s.", strings.Join(shown, ", ")))
	}
	if len(bundle.UPIIDs) > 0 {
		parts = append(parts, "UPI requested/shared.")
	}
	if len(bundle.PhishingLinks) > 0 {
		parts = append(parts, "Link(s) shared.")
	}
	if len(bundle.PhoneNumbers) > 0 {
		parts = append(parts, "Phone number shared.")
	}
	if len(bundle.BankAccounts) > 0 {
		parts = append(parts, "Bank account number shared.")
	}
	if len(parts) == 0 {
		parts = append(parts, "Scam behavior observed with urgency and verification prompts.")
	}
	return strings.Join(parts, " ")
}
