// Package detector implements fast rule-based scam scoring. It is tuned for
// low latency and stable output: no state, no network, the same text always
// produces the same score.
package detector

import (
	"regexp"
	"strings"
)

// DefaultThreshold is the score at or above which a message counts as a scam.
const DefaultThreshold = 60

const (
	// SignalLink is reported when a message carries a URL.
	SignalLink = "contains_link"
	// SignalPhone is reported when a message carries a phone number.
	SignalPhone = "contains_phone"

	linkPoints  = 25
	phonePoints = 10
)

type rule struct {
	signal  string
	phrases []string
	points  int
}

// A category contributes its points once, no matter how many of its phrases
// appear. Slice order keeps the matched-signal list deterministic.
var rules = []rule{
	{"account_blocked", []string{"account blocked", "blocked today", "suspended", "freeze"}, 25},
	{"urgent_pressure", []string{"urgent", "immediately", "within", "today", "now"}, 15},
	{"verify_kyc", []string{"verify", "verification", "kyc", "update kyc"}, 15},
	{"otp_pin", []string{"otp", "pin", "password", "cvv"}, 30},
	{"upi_request", []string{"upi", "upi id", "collect request", "pay", "payment"}, 25},
	{"bank_impersonation", []string{"bank", "customer care", "support", "rbi", "sbi", "hdfc", "icici", "axis"}, 15},
	{"reward_offer", []string{"prize", "lottery", "cashback", "free offer", "gift"}, 15},
}

var (
	urlRE   = regexp.MustCompile(`(?i)(https?://\S+)|(\bbit\.ly/\S+)|(\btinyurl\.com/\S+)`)
	phoneRE = regexp.MustCompile(`\b(\+?91[\s\-]?)?[6-9][0-9]{9}\b`)
)

// Score rates a single message text and returns the clamped risk score in
// [0,100] together with the names of every triggered signal.
func Score(text string) (int, []string) {
	lower := strings.ToLower(text)
	score := 0
	matched := []string{}

	for _, r := range rules {
		for _, p := range r.phrases {
			if strings.Contains(lower, p) {
				score += r.points
				matched = append(matched, r.signal)
				break
			}
		}
	}

	// Links are high risk on their own.
	if urlRE.MatchString(lower) {
		score += linkPoints
		matched = append(matched, SignalLink)
	}

	// Scammers routinely share a callback number.
	if phoneRE.MatchString(lower) {
		score += phonePoints
		matched = append(matched, SignalPhone)
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score, matched
}

// Detect reports whether text scores at or above threshold. A threshold of
// zero or below falls back to DefaultThreshold.
func Detect(text string, threshold int) (bool, int, []string) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	score, matched := Score(text)
	return score >= threshold, score, matched
}
