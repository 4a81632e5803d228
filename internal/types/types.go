package types

import "time"

// Kind identifies a credential class in the pattern catalog.
type Kind string

const (
	KindAWSAccessKey  Kind = "aws_access_key"
	KindAWSSecretKey  Kind = "aws_secret_key"
	KindSendGridKey   Kind = "sendgrid_key"
	KindMailgunKey    Kind = "mailgun_key"
	KindMailjetKey    Kind = "mailjet_key"
	KindTwilioKey     Kind = "twilio_key"
	KindBrevoKey      Kind = "brevo_key"
	KindJWTToken      Kind = "jwt_token"
	KindBearerToken   Kind = "bearer_token"
	KindGenericAPIKey Kind = "api_key_generic"
)

// Severity is a coarse-grained risk level for a finding.
type Severity string

const (
	SevLow      Severity = "low"
	SevMed      Severity = "medium"
	SevHigh     Severity = "high"
	SevCritical Severity = "critical"
)

// Rank orders severities for threshold comparisons (fail-on, sorting).
func (s Severity) Rank() int {
	switch s {
	case SevCritical:
		return 3
	case SevHigh:
		return 2
	case SevMed:
		return 1
	default:
		return 0
	}
}

// Candidate is a raw pattern match not yet validated as a genuine secret.
// Candidates are immutable once produced by the extractor.
type Candidate struct {
	Kind   Kind   `json:"kind"`
	Value  string `json:"value"`
	Source string `json:"source"`
	Line   int    `json:"line"`
}

// Finding is a candidate that survived the false-positive filter, carrying
// its confidence in [0,99] and derived severity.
type Finding struct {
	Candidate
	Confidence   float64             `json:"confidence"`
	Severity     Severity            `json:"severity"`
	Verification *VerificationResult `json:"verification,omitempty"`
}

// VerificationResult records the outcome of a liveness check against the
// credential's originating service. Transport and parse failures are folded
// into Error; they never surface as Go errors across the pipeline boundary.
type VerificationResult struct {
	Verified     bool              `json:"verified"`
	Service      string            `json:"service,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	Capabilities []string          `json:"capabilities,omitempty"`
	Error        string            `json:"error,omitempty"`
}

// Alert is the outbound notification shape built just before transmission.
// Delivery is best-effort; alerts are neither retried nor persisted.
type Alert struct {
	HitID        int64               `json:"hit_id"`
	Kind         Kind                `json:"kind"`
	Severity     Severity            `json:"severity"`
	Confidence   float64             `json:"confidence"`
	Preview      string              `json:"preview"`
	Source       string              `json:"source"`
	CreatedAt    time.Time           `json:"created_at"`
	Verification *VerificationResult `json:"verification,omitempty"`
}
