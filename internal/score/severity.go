package score

import (
	"strings"

	"github.com/leakhound/leakhound/internal/types"
)

// productionMarkers flag content that appears to belong to a live
// deployment rather than a scratch environment.
var productionMarkers = []string{"production", "prod", "live", "main", "master"}

// highRiskKinds grant immediate service access when leaked.
var highRiskKinds = map[types.Kind]bool{
	types.KindAWSAccessKey: true,
	types.KindAWSSecretKey: true,
	types.KindSendGridKey:  true,
}

// Classify maps (kind, confidence, content) to a severity. First matching
// rule wins, evaluated top down.
func Classify(kind types.Kind, confidence float64, content string) types.Severity {
	isProduction := false
	lc := strings.ToLower(content)
	for _, m := range productionMarkers {
		if strings.Contains(lc, m) {
			isProduction = true
			break
		}
	}
	highRisk := highRiskKinds[kind]

	switch {
	case confidence >= 95.0 && (highRisk || isProduction):
		return types.SevCritical
	case confidence >= 85.0 && highRisk:
		return types.SevHigh
	case confidence >= 70.0:
		return types.SevMed
	default:
		return types.SevLow
	}
}
