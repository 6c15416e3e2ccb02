package detector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_KnownScamMessage(t *testing.T) {
	text := "Your account will be blocked today, verify KYC by clicking http://bit.ly/xyz and share OTP"

	score, signals := Score(text)

	assert.GreaterOrEqual(t, score, 60)
	assert.Contains(t, signals, "account_blocked")
	assert.Contains(t, signals, "urgent_pressure")
	assert.Contains(t, signals, "verify_kyc")
	assert.Contains(t, signals, "otp_pin")
	assert.Contains(t, signals, SignalLink)

	isScam, detectScore, detectSignals := Detect(text, 60)
	assert.True(t, isScam)
	assert.Equal(t, score, detectScore)
	assert.Equal(t, signals, detectSignals)
}

func TestScore_EmptyText(t *testing.T) {
	score, signals := Score("")
	assert.Equal(t, 0, score)
	assert.Empty(t, signals)
}

func TestScore_BenignText(t *testing.T) {
	score, _ := Score("See you at dinner tomorrow")
	assert.Less(t, score, DefaultThreshold)
}

func TestScore_ClampedAt100(t *testing.T) {
	// Trip every category plus both structural signals.
	text := "URGENT account blocked today: verify kyc, share OTP pin cvv, " +
		"pay via upi to claim your lottery prize, call hdfc bank customer care 9876543210 " +
		"or click http://bit.ly/xyz"

	score, signals := Score(text)

	assert.Equal(t, 100, score)
	assert.Contains(t, signals, SignalLink)
	assert.Contains(t, signals, SignalPhone)
}

func TestScore_CategoryCountsOnce(t *testing.T) {
	// Several phrases of the same category must contribute points once.
	single, _ := Score("otp")
	multi, _ := Score("otp pin password cvv")
	assert.Equal(t, single, multi)
}

func TestScore_CaseInsensitive(t *testing.T) {
	lowerScore, lowerSignals := Score("verify kyc now")
	upperScore, upperSignals := Score(strings.ToUpper("verify kyc now"))
	assert.Equal(t, lowerScore, upperScore)
	assert.Equal(t, lowerSignals, upperSignals)
}

func TestScore_PhoneSignal(t *testing.T) {
	score, signals := Score("call me on 9876543210")
	assert.Contains(t, signals, SignalPhone)
	assert.GreaterOrEqual(t, score, 10)
}

func TestDetect_ThresholdBoundary(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		threshold int
		want      bool
	}{
		{
			name:      "high scoring text over default threshold",
			text:      "account blocked, share otp immediately",
			threshold: 60,
			want:      true,
		},
		{
			name:      "benign text under default threshold",
			text:      "hello there",
			threshold: 60,
			want:      false,
		},
		{
			name:      "caller supplied low threshold",
			text:      "please verify your kyc",
			threshold: 10,
			want:      true,
		},
		{
			name:      "zero threshold falls back to default",
			text:      "hello there",
			threshold: 0,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, _ := Detect(tt.text, tt.threshold)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScore_Deterministic(t *testing.T) {
	text := "urgent: verify kyc at http://example.com/login"
	s1, m1 := Score(text)
	s2, m2 := Score(text)
	assert.Equal(t, s1, s2)
	assert.Equal(t, m1, m2)
}
