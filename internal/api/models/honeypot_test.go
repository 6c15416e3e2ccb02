package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharavthjayanth/GUVI-HONEYPOT/internal/session"
)

func TestNormalizedSessionID(t *testing.T) {
	tests := []struct {
		name string
		req  HoneypotRequest
		want string
	}{
		{"camelCase wins", HoneypotRequest{SessionID: "a", SessionIDAlt: "b"}, "a"},
		{"snake_case fallback", HoneypotRequest{SessionIDAlt: "b"}, "b"},
		{"neither present", HoneypotRequest{}, "unknown-session"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.NormalizedSessionID())
		})
	}
}

func TestNormalizedMessage_Aliases(t *testing.T) {
	direct := HoneypotRequest{Message: &Message{Sender: "user", Text: "hi", Timestamp: "ts"}}
	got := direct.NormalizedMessage()
	assert.Equal(t, session.SenderUser, got.Sender)
	assert.Equal(t, "hi", got.Text)
	assert.Equal(t, "ts", got.Timestamp)
	assert.NotEmpty(t, got.ID)

	aliased := HoneypotRequest{IncomingMessage: &Message{Sender: "scammer", Text: "pay up"}}
	got = aliased.NormalizedMessage()
	assert.Equal(t, session.SenderScammer, got.Sender)
	assert.Equal(t, "pay up", got.Text)
	assert.Equal(t, DefaultTimestamp, got.Timestamp)
}

func TestNormalizedMessage_Defaults(t *testing.T) {
	// No message at all still yields a structurally complete one.
	got := (&HoneypotRequest{}).NormalizedMessage()
	assert.Equal(t, session.SenderScammer, got.Sender)
	assert.Equal(t, "", got.Text)
	assert.Equal(t, DefaultTimestamp, got.Timestamp)

	// Unknown sender collapses to scammer.
	req := HoneypotRequest{Message: &Message{Sender: "bot", Text: "x"}}
	assert.Equal(t, session.SenderScammer, req.NormalizedMessage().Sender)
}

func TestNormalizedHistory_PreservesOrder(t *testing.T) {
	req := HoneypotRequest{ConversationHistory: []Message{
		{Sender: "scammer", Text: "first"},
		{Sender: "user", Text: "second"},
		{Sender: "scammer", Text: "third"},
	}}

	got := req.NormalizedHistory()
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Text)
	assert.Equal(t, "second", got[1].Text)
	assert.Equal(t, "third", got[2].Text)
}
