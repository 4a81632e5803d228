package extract

import (
	"regexp"

	"github.com/leakhound/leakhound/internal/types"
)

// Entry associates a credential kind with its detection pattern. Group is
// the submatch index holding the secret value; 0 means the whole match is
// the value (the rest of the pattern, if any, is contextual boilerplate).
type Entry struct {
	Kind    types.Kind
	Pattern *regexp.Regexp
	Group   int
}

var (
	reAWSAccess   = regexp.MustCompile(`AKIA[0-9A-Z]{16}`)
	reAWSSecret   = regexp.MustCompile(`(?i)(?:secret.{0,20}|key.{0,20})["']([A-Za-z0-9/+=]{40})["']`)
	reSendGrid    = regexp.MustCompile(`SG\.[a-zA-Z0-9_-]{22,}\.[a-zA-Z0-9_-]{43,}`)
	reMailgun     = regexp.MustCompile(`key-[0-9a-zA-Z]{32}`)
	reMailjet     = regexp.MustCompile(`[a-f0-9]{32}`)
	reTwilio      = regexp.MustCompile(`SK[0-9a-f]{32}`)
	reBrevo       = regexp.MustCompile(`xkeysib-[a-z0-9]{64}`)
	reJWT         = regexp.MustCompile(`eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*`)
	reBearer      = regexp.MustCompile(`Bearer\s+([A-Za-z0-9_-]{20,})`)
	reGenericKey  = regexp.MustCompile(`(?i)api.?key["']?\s*[:=]\s*["']([A-Za-z0-9_-]{20,})["']`)
	reSecretLoose = regexp.MustCompile(`[A-Za-z0-9/+=]{40}`)
)

// catalog is the fixed pattern table. Order matters: extraction reports
// matches per pattern in this order, then in match order within a pattern.
var catalog = []Entry{
	{Kind: types.KindAWSAccessKey, Pattern: reAWSAccess},
	{Kind: types.KindAWSSecretKey, Pattern: reAWSSecret, Group: 1},
	{Kind: types.KindSendGridKey, Pattern: reSendGrid},
	{Kind: types.KindMailgunKey, Pattern: reMailgun},
	{Kind: types.KindMailjetKey, Pattern: reMailjet},
	{Kind: types.KindTwilioKey, Pattern: reTwilio},
	{Kind: types.KindBrevoKey, Pattern: reBrevo},
	{Kind: types.KindJWTToken, Pattern: reJWT},
	{Kind: types.KindBearerToken, Pattern: reBearer, Group: 1},
	{Kind: types.KindGenericAPIKey, Pattern: reGenericKey, Group: 1},
}

// Catalog returns the pattern table in iteration order.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// Kinds returns the catalog's kinds in iteration order.
func Kinds() []types.Kind {
	out := make([]types.Kind, 0, len(catalog))
	for _, e := range catalog {
		out = append(out, e.Kind)
	}
	return out
}

// HasAccessKeyShape reports whether content contains an AWS access key
// shaped substring. Used by the scorer's cross-validation bonus.
func HasAccessKeyShape(content string) bool {
	return reAWSAccess.MatchString(content)
}

// HasSecretKeyShape reports whether content contains a 40-character
// base64-alphabet substring. Used by the scorer's cross-validation bonus.
func HasSecretKeyShape(content string) bool {
	return reSecretLoose.MatchString(content)
}
