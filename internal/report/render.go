package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/leakhound/leakhound/internal/types"
)

type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
}

// PrintTable writes findings sorted by source then line, followed by a
// summary footer when stats are available.
func PrintTable(w io.Writer, findings []types.Finding, opts PrintOptions) {
	sort.Slice(findings, func(i, j int) bool {
		if findings[i].Source == findings[j].Source {
			return findings[i].Line < findings[j].Line
		}
		return findings[i].Source < findings[j].Source
	})
	if len(findings) == 0 {
		fmt.Fprintln(w, "No credentials found ✅")
	} else {
		maxKind := 8
		for _, f := range findings {
			if l := len(f.Kind); l > maxKind {
				maxKind = l
			}
		}
		fmt.Fprintf(w, "Findings: %d\n", len(findings))
		for _, f := range findings {
			sev := string(f.Severity)
			if !opts.NoColor {
				sev = colorSeverity(f.Severity)
			}
			verified := ""
			if f.Verification != nil && f.Verification.Verified {
				verified = "  [verified]"
			}
			fmt.Fprintf(w, "%-8s %-*s %s:%d  conf=%.1f  %s%s\n",
				sev, maxKind, f.Kind, f.Source, f.Line, f.Confidence, maskValue(f.Value), verified)
		}
	}

	var critical, high, med, low int
	for _, f := range findings {
		switch f.Severity {
		case types.SevCritical:
			critical++
		case types.SevHigh:
			high++
		case types.SevMed:
			med++
		default:
			low++
		}
	}
	if opts.Duration > 0 || opts.FilesScanned > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Findings: %d (critical: %d, high: %d, medium: %d, low: %d)\n",
			len(findings), critical, high, med, low)
		if opts.Duration > 0 {
			fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
		}
		if opts.FilesScanned > 0 {
			fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
		}
	}
}

func maskValue(s string) string {
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "…" + s[len(s)-4:]
}

func colorSeverity(s types.Severity) string {
	switch s {
	case types.SevCritical:
		return "\x1b[35mcritical\x1b[0m" // magenta
	case types.SevHigh:
		return "\x1b[31mhigh\x1b[0m" // red
	case types.SevMed:
		return "\x1b[33mmedium\x1b[0m" // yellow
	default:
		return "\x1b[36mlow\x1b[0m" // cyan
	}
}
