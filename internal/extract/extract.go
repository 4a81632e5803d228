package extract

import (
	"strings"

	"github.com/leakhound/leakhound/internal/types"
)

// Extract scans content against every catalog pattern and returns one
// candidate per non-overlapping match, in catalog order then match order.
// The extractor is kind-agnostic: adding a kind is a catalog change only.
func Extract(content, source string) []types.Candidate {
	var out []types.Candidate
	for _, e := range catalog {
		for _, loc := range e.Pattern.FindAllStringSubmatchIndex(content, -1) {
			value := content[loc[0]:loc[1]]
			if e.Group > 0 && loc[2*e.Group] >= 0 {
				value = content[loc[2*e.Group]:loc[2*e.Group+1]]
			}
			out = append(out, types.Candidate{
				Kind:   e.Kind,
				Value:  value,
				Source: source,
				Line:   lineAt(content, loc[0]),
			})
		}
	}
	return out
}

// Pair is an access key/secret key combination found in the same content.
type Pair struct {
	AccessKey string
	SecretKey string
}

// ExtractPairs returns the full cross product of access-key-shaped and
// secret-shaped matches in content. It deliberately does not correlate
// position: any access key may pair with any secret, and downstream
// verification rejects the combinations that are not real.
func ExtractPairs(content string) []Pair {
	accessKeys := reAWSAccess.FindAllString(content, -1)
	var secretKeys []string
	for _, m := range reAWSSecret.FindAllStringSubmatch(content, -1) {
		secretKeys = append(secretKeys, m[1])
	}
	var pairs []Pair
	for _, ak := range accessKeys {
		for _, sk := range secretKeys {
			pairs = append(pairs, Pair{AccessKey: ak, SecretKey: sk})
		}
	}
	return pairs
}

// lineAt returns the 1-based line number of byte offset off in content.
func lineAt(content string, off int) int {
	return strings.Count(content[:off], "\n") + 1
}
