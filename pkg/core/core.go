package core

import (
	"context"

	"github.com/leakhound/leakhound/internal/engine"
	"github.com/leakhound/leakhound/internal/extract"
	"github.com/leakhound/leakhound/internal/pipeline"
	"github.com/leakhound/leakhound/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type (
	Config  = engine.Config
	Finding = types.Finding
	Kind    = types.Kind
)

// Scan walks a directory tree and returns findings.
func Scan(ctx context.Context, cfg Config) ([]Finding, error) {
	res, err := engine.Scan(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return res.Findings, nil
}

// Inspect runs the detection pipeline over a single content blob without
// verification or alerting.
func Inspect(ctx context.Context, content, source string) []Finding {
	return pipeline.New(pipeline.Options{}).Run(ctx, content, source)
}

// Kinds returns the credential kinds in the pattern catalog.
func Kinds() []Kind { return extract.Kinds() }
