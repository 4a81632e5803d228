// Package engine is the filesystem input layer: it selects eligible files
// under a root, skips content unchanged since the previous scan, and feeds
// the remainder through the detection pipeline in bounded chunks.
package engine

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	doublestar "github.com/bmatcuk/doublestar/v4"
	xxhash "github.com/cespare/xxhash/v2"

	"github.com/leakhound/leakhound/internal/cache"
	"github.com/leakhound/leakhound/internal/ignore"
	"github.com/leakhound/leakhound/internal/pipeline"
	"github.com/leakhound/leakhound/internal/types"
)

// Config controls scanning scope, performance and filtering.
type Config struct {
	Root            string
	IncludeGlobs    string
	ExcludeGlobs    string
	MaxBytes        int64
	Threads         int
	MinConfidence   float64
	NoCache         bool
	DefaultExcludes bool
	Progress        func()

	Pipeline *pipeline.Pipeline
}

// Result contains findings and basic scan statistics.
type Result struct {
	Findings     []types.Finding
	FilesScanned int
	Duration     time.Duration
}

// Scan walks cfg.Root and runs every eligible file through the pipeline.
func Scan(ctx context.Context, cfg Config) (Result, error) {
	var result Result
	if cfg.Pipeline == nil {
		cfg.Pipeline = pipeline.New(pipeline.Options{})
	}
	if cfg.Threads <= 0 {
		cfg.Threads = runtime.GOMAXPROCS(0)
	}

	var db cache.DB
	if !cfg.NoCache {
		db, _ = cache.Load(cfg.Root)
	} else {
		db.Entries = map[string]string{}
	}
	updated := map[string]string{}

	ign, _ := ignore.Load(filepath.Join(cfg.Root, ".leakhoundignore"))

	batchSize := batchSizeFor(cfg.Threads)
	queue := make([]pipeline.Input, 0, batchSize)
	started := time.Now()

	flush := func() {
		if len(queue) == 0 {
			return
		}
		fs := cfg.Pipeline.RunBatch(ctx, queue, cfg.Threads)
		result.Findings = append(result.Findings, filterByConfidence(fs, cfg.MinConfidence)...)
		result.FilesScanned += len(queue)
		if cfg.Progress != nil {
			for range queue {
				cfg.Progress()
			}
		}
		queue = queue[:0]
	}

	err := Walk(ctx, cfg, ign, func(p string, data []byte) {
		h := fastHash(data)
		if !cfg.NoCache && db.Entries != nil && db.Entries[p] == h {
			return
		}
		updated[p] = h
		queue = append(queue, pipeline.Input{Content: string(data), Source: p})
		if len(queue) >= batchSize {
			flush()
		}
	})
	if err != nil {
		return result, err
	}
	flush()
	result.Duration = time.Since(started)

	if !cfg.NoCache && len(updated) > 0 {
		if db.Entries == nil {
			db.Entries = map[string]string{}
		}
		for k, v := range updated {
			db.Entries[k] = v
		}
		_ = cache.Save(cfg.Root, db)
	}
	return result, nil
}

func batchSizeFor(threads int) int {
	if threads < 2 {
		threads = 2
	}
	if threads > 32 {
		threads = 32
	}
	return threads * 4
}

func fastHash(b []byte) string {
	if len(b) == 0 {
		return "0000000000000000"
	}
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}

func filterByConfidence(fs []types.Finding, min float64) []types.Finding {
	if min <= 0 {
		return fs
	}
	var out []types.Finding
	for _, f := range fs {
		if f.Confidence >= min {
			out = append(out, f)
		}
	}
	return out
}

// allowedByGlobs returns true if the given path is allowed by the
// include/exclude glob configuration. Includes, when present, act as a
// positive filter; excludes are subtracted last.
func allowedByGlobs(relPath string, cfg Config) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	includes := parseGlobsList(cfg.IncludeGlobs)
	excludes := parseGlobsList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
