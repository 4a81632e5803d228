// Package filter vetoes extracted candidates that are placeholders,
// documentation examples, or malformed values. Either of its two stages
// rejects independently: a lexical blacklist pass over the value and its
// surrounding content, then a per-kind shape check.
package filter

import (
	"strings"

	"github.com/leakhound/leakhound/internal/types"
	v "github.com/leakhound/leakhound/internal/validate"
)

// knownPlaceholders are canonical example secrets from vendor docs and
// tutorials, compared against the lowercased candidate value.
var knownPlaceholders = map[string]bool{
	"akiaiosfodnn7example":                     true,
	"wjalrxutnfemi/k7mdeng/bpxrficyexamplekey": true,
	"sg.sendgrid_api_key":                      true,
	"your-api-key-here":                        true,
	"insert_your_key_here":                     true,
	"replace_with_your_key":                    true,
	"example-key":                              true,
	"test-key":                                 true,
	"demo-key":                                 true,
	"sample-key":                               true,
}

// testKeywords reject a value that embeds an obvious test marker.
var testKeywords = []string{"demo", "fake", "test", "dummy", "sample", "example", "placeholder"}

// testContexts reject the whole blob when it reads like documentation or
// fixtures. Intentionally broad: missing a real hit in a README is cheaper
// than paging on one.
var testContexts = []string{"example", "test", "demo", "sample", "placeholder", "fake"}

// IsFalsePositive reports whether the candidate value should be discarded.
// Rejected candidates never reach the scorer.
func IsFalsePositive(value, content string, kind types.Kind) bool {
	if lexicalReject(value, content) {
		return true
	}
	return shapeReject(value, kind)
}

func lexicalReject(value, content string) bool {
	lv := strings.ToLower(value)
	if knownPlaceholders[lv] {
		return true
	}
	for _, kw := range testKeywords {
		if strings.Contains(lv, kw) {
			return true
		}
	}
	lc := strings.ToLower(content)
	for _, ctx := range testContexts {
		if strings.Contains(lc, ctx) {
			return true
		}
	}
	return false
}

func shapeReject(value string, kind types.Kind) bool {
	switch kind {
	case types.KindAWSAccessKey:
		return !v.LooksLikeAWSAccessKey(value)
	case types.KindAWSSecretKey:
		return !v.LooksLikeAWSSecretKey(value)
	case types.KindSendGridKey:
		return !v.LooksLikeSendGridKey(value)
	default:
		// Other kinds carry no shape rule; only the lexical stage applies.
		return false
	}
}
