package extractor

import (
	"regexp"
	"strings"
)

// Bundle groups every artifact category pulled out of scammer text.
// Each slice is deduplicated and keeps first-seen order.
type Bundle struct {
	BankAccounts       []string `json:"bankAccounts"`
	UPIIDs             []string `json:"upiIds"`
	PhishingLinks      []string `json:"phishingLinks"`
	PhoneNumbers       []string `json:"phoneNumbers"`
	SuspiciousKeywords []string `json:"suspiciousKeywords"`
}

// NewBundle returns an empty bundle with all categories allocated, so the
// JSON form always carries all five keys.
func NewBundle() Bundle {
	return Bundle{
		BankAccounts:       []string{},
		UPIIDs:             []string{},
		PhishingLinks:      []string{},
		PhoneNumbers:       []string{},
		SuspiciousKeywords: []string{},
	}
}

// Clone returns a deep copy. Callers hand bundles to goroutines that outlive
// the session lock, so shared backing arrays are not safe.
func (b Bundle) Clone() Bundle {
	out := NewBundle()
	out.BankAccounts = append(out.BankAccounts, b.BankAccounts...)
	out.UPIIDs = append(out.UPIIDs, b.UPIIDs...)
	out.PhishingLinks = append(out.PhishingLinks, b.PhishingLinks...)
	out.PhoneNumbers = append(out.PhoneNumbers, b.PhoneNumbers...)
	out.SuspiciousKeywords = append(out.SuspiciousKeywords, b.SuspiciousKeywords...)
	return out
}

// Empty reports whether nothing was extracted in any category.
func (b Bundle) Empty() bool {
	return len(b.BankAccounts) == 0 &&
		len(b.UPIIDs) == 0 &&
		len(b.PhishingLinks) == 0 &&
		len(b.PhoneNumbers) == 0 &&
		len(b.SuspiciousKeywords) == 0
}

var (
	urlRE = regexp.MustCompile(`(?i)(https?://[^\s]+)|(\bbit\.ly/[^\s]+)|(\btinyurl\.com/[^\s]+)`)

	// Indian mobile: optional +91 prefix, 10 digits starting 6-9.
	phoneRE = regexp.MustCompile(`\b(\+?91[\s\-]?)?[6-9][0-9]{9}\b`)

	// UPI handle: name@provider.
	upiRE = regexp.MustCompile(`(?i)\b[a-z0-9._\-]{2,}@[a-z0-9]{2,}\b`)

	// 9 to 18 digit runs; the minimum length keeps 4-6 digit OTPs out.
	bankAcctRE = regexp.MustCompile(`\b[0-9]{9,18}\b`)

	// IFSC routing code, e.g. HDFC0001234.
	ifscRE = regexp.MustCompile(`(?i)\b[A-Z]{4}0[A-Z0-9]{6}\b`)

	nonDigitRE = regexp.MustCompile(`[^0-9]`)
)

var suspiciousKeywords = []string{
	"urgent",
	"immediately",
	"verify",
	"verification",
	"kyc",
	"otp",
	"pin",
	"password",
	"cvv",
	"account blocked",
	"blocked",
	"suspend",
	"suspended",
	"freeze",
	"upi",
	"upi id",
	"collect request",
	"payment",
	"refund",
	"click",
	"link",
	"download",
	"apk",
	"customer care",
	"support",
	"helpline",
}

// Extract pulls all recognizable artifacts from a single message text.
// It is pure: no state is kept between calls, and cross-message merging is
// the session store's job.
func Extract(text string) Bundle {
	b := NewBundle()

	for _, m := range urlRE.FindAllString(text, -1) {
		b.PhishingLinks = appendUnique(b.PhishingLinks, normalizeURL(m))
	}

	rawPhones := phoneRE.FindAllString(text, -1)
	phoneDigits := make(map[string]struct{}, len(rawPhones))
	for _, p := range rawPhones {
		phoneDigits[digitsOnly(p)] = struct{}{}
		b.PhoneNumbers = appendUnique(b.PhoneNumbers, NormalizePhone(p))
	}

	for _, m := range upiRE.FindAllString(text, -1) {
		b.UPIIDs = appendUnique(b.UPIIDs, strings.ToLower(m))
	}

	for _, m := range bankAcctRE.FindAllString(text, -1) {
		digits := digitsOnly(m)
		// Phone-shaped digit runs are near-certain misclassified phone
		// numbers, not account numbers.
		if _, seen := phoneDigits[digits]; seen {
			continue
		}
		if len(digits) == 10 {
			continue
		}
		if len(digits) == 12 && strings.HasPrefix(digits, "91") {
			continue
		}
		b.BankAccounts = appendUnique(b.BankAccounts, m)
	}

	lower := strings.ToLower(text)
	for _, kw := range suspiciousKeywords {
		if strings.Contains(lower, kw) {
			b.SuspiciousKeywords = appendUnique(b.SuspiciousKeywords, kw)
		}
	}
	if ifscRE.MatchString(text) {
		b.SuspiciousKeywords = appendUnique(b.SuspiciousKeywords, "ifsc_shared")
	}

	return b
}

// NormalizePhone collapses every accepted phone spelling to one canonical
// +91XXXXXXXXXX form so the same number shared twice dedupes to one entry.
func NormalizePhone(raw string) string {
	digits := digitsOnly(raw)
	if len(digits) == 12 && strings.HasPrefix(digits, "91") {
		return "+" + digits
	}
	if len(digits) == 10 {
		return "+91" + digits
	}
	return strings.TrimSpace(raw)
}

func normalizeURL(raw string) string {
	return strings.Trim(strings.TrimSpace(raw), `).,;]}>"'`)
}

func digitsOnly(s string) string {
	return nonDigitRE.ReplaceAllString(s, "")
}

func appendUnique(list []string, v string) []string {
	if v == "" {
		return list
	}
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
