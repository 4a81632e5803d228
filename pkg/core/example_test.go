package core_test

import (
	"context"
	"fmt"
	"os"

	"github.com/leakhound/leakhound/pkg/core"
)

// ExampleScan demonstrates a simple scan of a directory.
func ExampleScan() {
	cfg := core.Config{
		Root:            ".",
		Threads:         4,
		IncludeGlobs:    "**/*.env,**/*.yml",
		MaxBytes:        1024 * 1024,
		DefaultExcludes: true,
	}

	findings, err := core.Scan(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scan failed: %v\n", err)
		return
	}

	if len(findings) == 0 {
		fmt.Println("No credentials found.")
	} else {
		fmt.Printf("Found %d credentials.\n", len(findings))
		_ = core.MarshalFindings(os.Stdout, findings)
	}
}

// ExampleInspect runs the detection pipeline over an in-memory blob, the
// entry point for callers that stream content from somewhere other than a
// filesystem.
func ExampleInspect() {
	findings := core.Inspect(context.Background(), "aws_access_key=AKIA1234567890ABCDEF", "paste-41")
	for _, f := range findings {
		fmt.Printf("%s at %s:%d (%.1f, %s)\n", f.Kind, f.Source, f.Line, f.Confidence, f.Severity)
	}
	// Output: aws_access_key at paste-41:1 (97.5, critical)
}
