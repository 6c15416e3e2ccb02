// Package session owns the per-conversation state of the honeypot and the
// invariants around it: an append-only conversation, a sticky scam flag, a
// monotonically growing intelligence bundle, and an at-most-once callback.
package session

import (
	"time"

	"github.com/dharavthjayanth/GUVI-HONEYPOT/internal/extractor"
)

// Status is the lifecycle state of a session.
type Status string

const (
	// StatusActive means the conversation is still being worked.
	StatusActive Status = "ACTIVE"
	// StatusCompleted means the final callback was delivered. Terminal.
	StatusCompleted Status = "COMPLETED"
)

// Known senders. Anything else is normalized to SenderScammer at the
// adapter boundary before it reaches this package.
const (
	SenderScammer = "scammer"
	SenderUser    = "user"
)

// Message is one turn of the conversation. Immutable once appended.
type Message struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// Session is the full state of one honeypot conversation. All mutation goes
// through the reducer methods below, and callers must hold the store's
// per-session lock while calling them.
type Session struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	Conversation           []Message
	TotalMessagesExchanged int

	// RiskScore and MatchedSignals reflect only the most recently scored
	// message. History is carried by ScamDetected and Intelligence.
	RiskScore      int
	MatchedSignals []string
	ScamDetected   bool

	Intelligence extractor.Bundle

	Status           Status
	CallbackSent     bool
	CallbackAttempts int

	// dispatching guards against overlapping callback deliveries while one
	// is already in flight.
	dispatching bool
}

func newSession(id string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:             id,
		CreatedAt:      now,
		UpdatedAt:      now,
		Conversation:   []Message{},
		MatchedSignals: []string{},
		Intelligence:   extractor.NewBundle(),
		Status:         StatusActive,
	}
}

// Append adds one message to the conversation. Messages are never removed
// or reordered.
func (s *Session) Append(msg Message) {
	s.Conversation = append(s.Conversation, msg)
	s.TotalMessagesExchanged++
	s.UpdatedAt = time.Now().UTC()
}

// RecordScore overwrites the transient per-turn score fields and keeps
// ScamDetected sticky: once true it never resets, however low later
// messages score.
func (s *Session) RecordScore(score int, signals []string, threshold int) {
	s.RiskScore = score
	s.MatchedSignals = signals
	if score >= threshold {
		s.ScamDetected = true
	}
	s.UpdatedAt = time.Now().UTC()
}

// MergeIntelligence unions a freshly extracted bundle into the session's
// cumulative one. Per category: exact-string dedupe, first-seen order
// preserved. Merging the same bundle twice is a no-op the second time.
func (s *Session) MergeIntelligence(b extractor.Bundle) {
	s.Intelligence.BankAccounts = unionInto(s.Intelligence.BankAccounts, b.BankAccounts)
	s.Intelligence.UPIIDs = unionInto(s.Intelligence.UPIIDs, b.UPIIDs)
	s.Intelligence.PhishingLinks = unionInto(s.Intelligence.PhishingLinks, b.PhishingLinks)
	s.Intelligence.PhoneNumbers = unionInto(s.Intelligence.PhoneNumbers, b.PhoneNumbers)
	s.Intelligence.SuspiciousKeywords = unionInto(s.Intelligence.SuspiciousKeywords, b.SuspiciousKeywords)
	s.UpdatedAt = time.Now().UTC()
}

// ShouldFinalize reports whether the session has gathered enough evidence to
// report: scam confirmed, at least one actionable artifact, and the scammer
// kept engaged for at least minMessages turns. The engagement floor is
// deliberate: after detection the honeypot stays in the conversation at
// least one more turn to harvest additional intelligence.
func (s *Session) ShouldFinalize(minMessages int) bool {
	if s.CallbackSent || !s.ScamDetected {
		return false
	}
	if s.TotalMessagesExchanged < minMessages {
		return false
	}
	return len(s.Intelligence.UPIIDs) > 0 ||
		len(s.Intelligence.PhishingLinks) > 0 ||
		len(s.Intelligence.PhoneNumbers) > 0 ||
		len(s.Intelligence.BankAccounts) > 0
}

// BeginDispatch reserves the right to deliver the callback. It returns false
// when the callback was already sent or another delivery is in flight, so a
// burst of qualifying messages cannot fan out into duplicate sends.
func (s *Session) BeginDispatch() bool {
	if s.CallbackSent || s.dispatching {
		return false
	}
	s.dispatching = true
	return true
}

// EndDispatch releases the in-flight reservation taken by BeginDispatch.
func (s *Session) EndDispatch() {
	s.dispatching = false
}

// MarkCompleted records a successful callback delivery. This is the single
// place CallbackSent flips true; the transition is one-way.
func (s *Session) MarkCompleted() {
	s.CallbackSent = true
	s.Status = StatusCompleted
	s.UpdatedAt = time.Now().UTC()
}

// Snapshot is a read-only copy of the fields exposed for introspection.
type Snapshot struct {
	SessionID              string           `json:"sessionId"`
	Status                 Status           `json:"status"`
	ScamDetected           bool             `json:"scamDetected"`
	RiskScore              int              `json:"riskScore"`
	MatchedSignals         []string         `json:"matchedSignals"`
	TotalMessagesExchanged int              `json:"totalMessagesExchanged"`
	CallbackSent           bool             `json:"callbackSent"`
	CallbackAttempts       int              `json:"callbackAttempts"`
	ExtractedIntelligence  extractor.Bundle `json:"extractedIntelligence"`
	CreatedAt              time.Time        `json:"createdAt"`
	UpdatedAt              time.Time        `json:"updatedAt"`
}

// Snapshot copies the session's observable state. The copy shares nothing
// with the live session, so it stays valid after the lock is released.
func (s *Session) Snapshot() Snapshot {
	signals := make([]string, len(s.MatchedSignals))
	copy(signals, s.MatchedSignals)
	return Snapshot{
		SessionID:              s.ID,
		Status:                 s.Status,
		ScamDetected:           s.ScamDetected,
		RiskScore:              s.RiskScore,
		MatchedSignals:         signals,
		TotalMessagesExchanged: s.TotalMessagesExchanged,
		CallbackSent:           s.CallbackSent,
		CallbackAttempts:       s.CallbackAttempts,
		ExtractedIntelligence:  s.Intelligence.Clone(),
		CreatedAt:              s.CreatedAt,
		UpdatedAt:              s.UpdatedAt,
	}
}

func unionInto(existing, incoming []string) []string {
	for _, item := range incoming {
		if item == "" {
			continue
		}
		dup := false
		for _, have := range existing {
			if have == item {
				dup = true
				break
			}
		}
		if !dup {
			existing = append(existing, item)
		}
	}
	return existing
}
