// Package models holds the wire types of the honeypot API. The inbound
// request is deliberately tolerant: evaluators have been seen sending field
// aliases and partial messages, so every accepted spelling is normalized to
// the canonical internal types here, at the boundary, and the core only ever
// sees well-formed input.
package models

import (
	"github.com/google/uuid"

	"github.com/dharavthjayanth/GUVI-HONEYPOT/internal/session"
)

// DefaultTimestamp is the sentinel used when a message carries none.
const DefaultTimestamp = "1970-01-01T00:00:00Z"

// Message is one conversation turn as it appears on the wire.
type Message struct {
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// Metadata is optional channel information attached by the evaluator.
type Metadata struct {
	Channel  string `json:"channel,omitempty"`
	Language string `json:"language,omitempty"`
	Locale   string `json:"locale,omitempty"`
}

// HoneypotRequest is the inbound payload. Both sessionId/session_id and
// message/incomingMessage spellings are accepted.
type HoneypotRequest struct {
	SessionID    string `json:"sessionId"`
	SessionIDAlt string `json:"session_id"`

	Message         *Message `json:"message"`
	IncomingMessage *Message `json:"incomingMessage"`

	ConversationHistory []Message `json:"conversationHistory"`

	Metadata *Metadata `json:"metadata"`
}

// NormalizedSessionID resolves the accepted aliases, falling back to a fixed
// bucket rather than failing the request.
func (r *HoneypotRequest) NormalizedSessionID() string {
	if r.SessionID != "" {
		return r.SessionID
	}
	if r.SessionIDAlt != "" {
		return r.SessionIDAlt
	}
	return "unknown-session"
}

// NormalizedMessage resolves the message aliases and fills defaults so the
// core always receives a structurally complete message.
func (r *HoneypotRequest) NormalizedMessage() session.Message {
	if r.Message != nil {
		return canonicalize(*r.Message)
	}
	if r.IncomingMessage != nil {
		return canonicalize(*r.IncomingMessage)
	}
	return canonicalize(Message{})
}

// NormalizedHistory converts the prior conversation, oldest-first, applying
// the same defaults as the live message.
func (r *HoneypotRequest) NormalizedHistory() []session.Message {
	out := make([]session.Message, 0, len(r.ConversationHistory))
	for _, m := range r.ConversationHistory {
		out = append(out, canonicalize(m))
	}
	return out
}

func canonicalize(m Message) session.Message {
	sender := m.Sender
	if sender != session.SenderScammer && sender != session.SenderUser {
		sender = session.SenderScammer
	}
	ts := m.Timestamp
	if ts == "" {
		ts = DefaultTimestamp
	}
	return session.Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Text:      m.Text,
		Timestamp: ts,
	}
}

// HoneypotResponse is the stable reply shape. The evaluator always gets
// this, even when processing fails internally.
type HoneypotResponse struct {
	Status string `json:"status"`
	Reply  string `json:"reply"`
}
