// Package verify confirms candidate credentials against their originating
// services. Adapters never return Go errors across the pipeline boundary:
// transport, timeout and parse failures are folded into the result so one
// bad credential cannot abort a batch.
package verify

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/leakhound/leakhound/internal/types"
)

// Verifier is a per-service liveness check. secret carries the secret key
// for paired credentials and is empty for bearer-style API keys.
type Verifier interface {
	Verify(ctx context.Context, key, secret string) types.VerificationResult
}

// Options configure the adapter registry. Base URLs exist for tests; the
// zero value targets the real service endpoints.
type Options struct {
	Region          string
	Timeout         time.Duration
	Client          *http.Client
	SESBaseURL      string
	SendGridBaseURL string
}

// Registry routes a credential kind to its verifier, bounding every call
// with a per-call timeout.
type Registry struct {
	timeout time.Duration
	byKind  map[types.Kind]Verifier
}

// NewRegistry builds the default adapter set: SES for AWS key pairs,
// SendGrid for its API keys. Kinds without an adapter skip verification.
func NewRegistry(opts Options) *Registry {
	if opts.Region == "" {
		opts.Region = "us-east-1"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Client == nil {
		opts.Client = &http.Client{}
	}
	ses := &SES{Region: opts.Region, BaseURL: opts.SESBaseURL, Client: opts.Client}
	sg := &SendGrid{BaseURL: opts.SendGridBaseURL, Client: opts.Client}
	return &Registry{
		timeout: opts.Timeout,
		byKind: map[types.Kind]Verifier{
			types.KindAWSAccessKey: ses,
			types.KindSendGridKey:  sg,
		},
	}
}

// Supports reports whether kind has a verification adapter.
func (r *Registry) Supports(kind types.Kind) bool {
	_, ok := r.byKind[kind]
	return ok
}

// Verify runs the adapter for kind under the registry's timeout. Nil is
// returned for unsupported kinds: absence of a result is not an error.
func (r *Registry) Verify(ctx context.Context, kind types.Kind, key, secret string) *types.VerificationResult {
	v, ok := r.byKind[kind]
	if !ok {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	res := v.Verify(ctx, key, secret)
	if !res.Verified && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		res.Error = "timeout"
	}
	return &res
}
