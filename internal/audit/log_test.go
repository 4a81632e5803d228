package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/leakhound/leakhound/internal/types"
)

func sampleRecord() ScanRecord {
	findings := []types.Finding{{
		Candidate: types.Candidate{
			Kind:   types.KindAWSAccessKey,
			Value:  "AKIA1234567890ABCDEF",
			Source: "a.env",
			Line:   1,
		},
		Confidence: 95,
		Severity:   types.SevCritical,
	}}
	return NewRecord("/repo", findings, 10, 2*time.Second, 1)
}

func TestAppendRedactsValues(t *testing.T) {
	root := t.TempDir()
	l := NewLog(root)

	if err := l.Append(sampleRecord()); err != nil {
		t.Fatalf("Append: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(root, ".leakhound_audit.jsonl"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(raw), "AKIA1234567890ABCDEF") {
		t.Fatalf("secret value written to disk:\n%s", raw)
	}
	if !strings.Contains(string(raw), "[REDACTED]") {
		t.Fatalf("redaction marker missing:\n%s", raw)
	}
}

func TestAppendPrefersGitDir(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	l := NewLog(root)

	if err := l.Append(sampleRecord()); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, ".git", "leakhound_audit.jsonl")); err != nil {
		t.Fatalf("log not placed under .git: %v", err)
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	root := t.TempDir()
	l := NewLog(root)

	r1 := sampleRecord()
	r1.ScanID = "scan_first"
	r2 := sampleRecord()
	r2.ScanID = "scan_second"
	if err := l.Append(r1); err != nil {
		t.Fatal(err)
	}
	if err := l.Append(r2); err != nil {
		t.Fatal(err)
	}

	records, err := l.History()
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d", len(records))
	}
	if records[0].ScanID != "scan_second" || records[1].ScanID != "scan_first" {
		t.Fatalf("history not newest first: %s, %s", records[0].ScanID, records[1].ScanID)
	}
}

func TestNewRecordSummarizes(t *testing.T) {
	findings := []types.Finding{
		{Candidate: types.Candidate{Kind: types.KindAWSAccessKey, Value: "v"}, Severity: types.SevCritical,
			Verification: &types.VerificationResult{Verified: true}},
		{Candidate: types.Candidate{Kind: types.KindJWTToken, Value: "v"}, Severity: types.SevMed},
	}
	r := NewRecord("/repo", findings, 3, time.Second, 2)

	if r.TotalFindings != 2 || r.VerifiedCount != 1 || r.AlertsSent != 2 {
		t.Fatalf("summary = %+v", r)
	}
	if r.SeverityCounts["critical"] != 1 || r.SeverityCounts["medium"] != 1 {
		t.Fatalf("severity counts = %+v", r.SeverityCounts)
	}
	if r.FilesScanned != 3 || r.Duration != "1s" {
		t.Fatalf("stats = %+v", r)
	}
}
