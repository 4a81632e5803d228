// Package pipeline wires the detection stages together: extraction,
// false-positive filtering, scoring, severity classification, optional
// liveness verification and alert dispatch. Everything up to verification
// is pure computation over one content blob; only the dispatcher's hit
// counter and rate gate are shared across invocations.
package pipeline

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/leakhound/leakhound/internal/alert"
	"github.com/leakhound/leakhound/internal/extract"
	"github.com/leakhound/leakhound/internal/filter"
	"github.com/leakhound/leakhound/internal/score"
	"github.com/leakhound/leakhound/internal/types"
	"github.com/leakhound/leakhound/internal/verify"
)

// Input is one content blob with its origin label, supplied by whatever
// feeds the pipeline (file walker, crawler, test).
type Input struct {
	Content string
	Source  string
}

// Options assemble a pipeline. Verifiers and Dispatcher are optional:
// without them the pipeline is a pure detect-and-score function.
type Options struct {
	Verifiers  *verify.Registry
	Dispatcher *alert.Dispatcher
}

type Pipeline struct {
	verifiers  *verify.Registry
	dispatcher *alert.Dispatcher
}

func New(opts Options) *Pipeline {
	return &Pipeline{verifiers: opts.Verifiers, dispatcher: opts.Dispatcher}
}

// Run processes one content blob. Candidates rejected by the filter never
// reach the scorer. Verification calls run concurrently per candidate so a
// slow service stalls only its own finding, and every finding is handed to
// the dispatcher when one is configured.
func (p *Pipeline) Run(ctx context.Context, content, source string) []types.Finding {
	var findings []types.Finding
	for _, c := range extract.Extract(content, source) {
		if filter.IsFalsePositive(c.Value, content, c.Kind) {
			continue
		}
		conf := score.Confidence(c.Kind, c.Value, content)
		findings = append(findings, types.Finding{
			Candidate:  c,
			Confidence: conf,
			Severity:   score.Classify(c.Kind, conf, content),
		})
	}

	if p.verifiers != nil {
		p.verifyAll(ctx, content, findings)
	}
	if p.dispatcher != nil {
		for _, f := range findings {
			p.dispatcher.Dispatch(ctx, f)
		}
	}
	return findings
}

// verifyAll runs liveness checks for the findings that have an adapter.
// AWS access keys are verified with a co-located secret when one exists in
// the same blob; without one there is nothing to sign with.
func (p *Pipeline) verifyAll(ctx context.Context, content string, findings []types.Finding) {
	pairs := extract.ExtractPairs(content)
	var g errgroup.Group
	for i := range findings {
		f := &findings[i]
		if !p.verifiers.Supports(f.Kind) {
			continue
		}
		secret := ""
		if f.Kind == types.KindAWSAccessKey {
			secret = secretFor(f.Value, pairs)
			if secret == "" {
				continue
			}
		}
		g.Go(func() error {
			f.Verification = p.verifiers.Verify(ctx, f.Kind, f.Value, secret)
			return nil
		})
	}
	_ = g.Wait()
}

func secretFor(accessKey string, pairs []extract.Pair) string {
	for _, p := range pairs {
		if p.AccessKey == accessKey {
			return p.SecretKey
		}
	}
	return ""
}

// RunBatch processes inputs with at most width invocations in flight. The
// caller controls concurrency; the pipeline only enforces the bound.
func (p *Pipeline) RunBatch(ctx context.Context, inputs []Input, width int) []types.Finding {
	if width <= 0 {
		width = 1
	}
	var (
		mu  sync.Mutex
		out []types.Finding
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(width)
	for _, in := range inputs {
		in := in
		g.Go(func() error {
			fs := p.Run(ctx, in.Content, in.Source)
			mu.Lock()
			out = append(out, fs...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}
