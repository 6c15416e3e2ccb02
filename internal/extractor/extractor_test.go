package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_PhoneNormalization(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"bare ten digit", "call 9876543210 now", "+919876543210"},
		{"country code no plus", "call 919876543210 now", "+919876543210"},
		{"country code with plus", "call +919876543210 now", "+919876543210"},
		{"country code with space", "call +91 9876543210 now", "+919876543210"},
		{"country code with dash", "call 91-9876543210 now", "+919876543210"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Extract(tt.text)
			assert.Equal(t, []string{tt.want}, b.PhoneNumbers)
		})
	}
}

func TestExtract_PhoneNeverLeaksIntoBankAccounts(t *testing.T) {
	b := Extract("transfer to account, my number is 9876543210")

	assert.Contains(t, b.PhoneNumbers, "+919876543210")
	assert.NotContains(t, b.BankAccounts, "9876543210")
	for _, acct := range b.BankAccounts {
		assert.NotEqual(t, "9876543210", acct)
	}
}

func TestExtract_BankAccountExclusions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "real account length kept",
			text: "deposit into 123456789012345",
			want: []string{"123456789012345"},
		},
		{
			name: "ten digit run excluded as phone-like",
			text: "number 9876543210 given",
			want: []string{},
		},
		{
			name: "twelve digits with country prefix excluded",
			text: "use 919876543210 please",
			want: []string{},
		},
		{
			name: "twelve digits without country prefix kept",
			text: "use 129876543210 please",
			want: []string{"129876543210"},
		},
		{
			name: "nine digit minimum kept",
			text: "acct 123456789",
			want: []string{"123456789"},
		},
		{
			name: "short otp ignored",
			text: "otp is 482913",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Extract(tt.text)
			assert.Equal(t, tt.want, b.BankAccounts)
		})
	}
}

func TestExtract_PhishingLinks(t *testing.T) {
	b := Extract("click https://secure-bank.example/verify, or http://bit.ly/xyz).")

	assert.Contains(t, b.PhishingLinks, "https://secure-bank.example/verify")
	assert.Contains(t, b.PhishingLinks, "http://bit.ly/xyz")
	for _, link := range b.PhishingLinks {
		assert.NotContains(t, link, ",")
		assert.False(t, link[len(link)-1] == ')' || link[len(link)-1] == '.')
	}
}

func TestExtract_ShortenedLinkWithoutScheme(t *testing.T) {
	b := Extract("open bit.ly/freegift fast")
	assert.Equal(t, []string{"bit.ly/freegift"}, b.PhishingLinks)
}

func TestExtract_UPIHandlesLowercased(t *testing.T) {
	b := Extract("Send to Rahul.Verma@OKSBI immediately")
	assert.Contains(t, b.UPIIDs, "rahul.verma@oksbi")
}

func TestExtract_SuspiciousKeywords(t *testing.T) {
	b := Extract("URGENT: verify your KYC or account blocked")

	assert.Contains(t, b.SuspiciousKeywords, "urgent")
	assert.Contains(t, b.SuspiciousKeywords, "verify")
	assert.Contains(t, b.SuspiciousKeywords, "kyc")
	assert.Contains(t, b.SuspiciousKeywords, "account blocked")
}

func TestExtract_IFSCAddsSyntheticKeyword(t *testing.T) {
	b := Extract("account 123456789012 ifsc HDFC0001234")
	assert.Contains(t, b.SuspiciousKeywords, "ifsc_shared")

	b = Extract("no routing code here")
	assert.NotContains(t, b.SuspiciousKeywords, "ifsc_shared")
}

func TestExtract_DedupesWithinCall(t *testing.T) {
	b := Extract("9876543210 and again 9876543210, pay rahul@oksbi or rahul@oksbi")

	assert.Equal(t, []string{"+919876543210"}, b.PhoneNumbers)
	assert.Equal(t, 1, countOf(b.UPIIDs, "rahul@oksbi"))
}

func TestExtract_EmptyText(t *testing.T) {
	b := Extract("")

	assert.True(t, b.Empty())
	// All five categories must still be present (non-nil) for the callback JSON.
	assert.NotNil(t, b.BankAccounts)
	assert.NotNil(t, b.UPIIDs)
	assert.NotNil(t, b.PhishingLinks)
	assert.NotNil(t, b.PhoneNumbers)
	assert.NotNil(t, b.SuspiciousKeywords)
}

func TestBundle_CloneIsIndependent(t *testing.T) {
	b := Extract("call 9876543210")
	c := b.Clone()
	c.PhoneNumbers[0] = "tampered"

	assert.Equal(t, "+919876543210", b.PhoneNumbers[0])
}

func countOf(list []string, v string) int {
	n := 0
	for _, item := range list {
		if item == v {
			n++
		}
	}
	return n
}
