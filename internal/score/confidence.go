// Package score turns surviving candidates into confidence values in
// [0,99] and maps them to ordinal severities. Both computations are pure
// functions of (kind, value, content); no state is carried between calls.
package score

import (
	"strings"

	"github.com/leakhound/leakhound/internal/extract"
	"github.com/leakhound/leakhound/internal/types"
	v "github.com/leakhound/leakhound/internal/validate"
)

const (
	baseScore      = 70.0
	keywordBonus   = 2.5
	crossBonus     = 10.0
	fileHintBonus  = 2.0
	maxConfidence  = 99.0
	awsAccessScore = 95.0
	awsSecretScore = 90.0
	jwtScore       = 85.0
	sendGridScore  = 80.0
)

// sensitiveKeywords each add keywordBonus when present in content.
var sensitiveKeywords = []string{"production", "prod", "key", "secret", "api", "credential"}

// fileHints mark content that smells like a config or secrets file.
var fileHints = []string{".env", "config", "credentials", "secrets"}

// Confidence computes the heuristic score for a candidate. The result is
// deterministic and capped at 99 so no finding ever claims certainty.
func Confidence(kind types.Kind, value, content string) float64 {
	score := baseScore

	switch kind {
	case types.KindAWSAccessKey:
		if v.LooksLikeAWSAccessKey(value) {
			score = awsAccessScore
		}
	case types.KindAWSSecretKey:
		if len(value) == 40 {
			score = awsSecretScore
		}
	case types.KindJWTToken:
		if v.DotCount(value) == 2 {
			score = jwtScore
		}
	case types.KindSendGridKey:
		if v.DotCount(value) == 4 {
			score = sendGridScore
		}
	}

	lc := strings.ToLower(content)
	for _, kw := range sensitiveKeywords {
		if strings.Contains(lc, kw) {
			score += keywordBonus
		}
	}

	// Cross-validation: the presence of the other half of an AWS pair in
	// the same blob corroborates both. The pattern checked per kind is
	// kept exactly as the historical behavior pairs them.
	switch kind {
	case types.KindAWSSecretKey:
		if extract.HasAccessKeyShape(content) {
			score += crossBonus
		}
	case types.KindAWSAccessKey:
		if extract.HasSecretKeyShape(content) {
			score += crossBonus
		}
	}

	for _, hint := range fileHints {
		if strings.Contains(lc, hint) {
			score += fileHintBonus
			break
		}
	}

	if score > maxConfidence {
		score = maxConfidence
	}
	return score
}
