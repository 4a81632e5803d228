// Package audit appends one JSONL record per scan session. Secret values
// are redacted before anything is written to disk.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/leakhound/leakhound/internal/types"
)

type ScanRecord struct {
	Timestamp      time.Time       `json:"timestamp"`
	ScanID         string          `json:"scan_id"`
	Root           string          `json:"root"`
	TotalFindings  int             `json:"total_findings"`
	VerifiedCount  int             `json:"verified_count"`
	AlertsSent     int64           `json:"alerts_sent"`
	SeverityCounts map[string]int  `json:"severity_counts"`
	FilesScanned   int             `json:"files_scanned"`
	Duration       string          `json:"duration"`
	Findings       []types.Finding `json:"findings,omitempty"`
}

type Log struct {
	logPath string
}

func NewLog(root string) *Log {
	gitDir := filepath.Join(root, ".git")
	logPath := filepath.Join(root, ".leakhound_audit.jsonl")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		logPath = filepath.Join(gitDir, "leakhound_audit.jsonl")
	}
	return &Log{logPath: logPath}
}

// Append writes one record. Owner-only permissions: the log carries
// finding locations even with values redacted.
func (l *Log) Append(record ScanRecord) error {
	if record.ScanID == "" {
		record.ScanID = fmt.Sprintf("scan_%d", time.Now().Unix())
	}
	record.Findings = redactValues(record.Findings)

	f, err := os.OpenFile(l.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(record); err != nil {
		return fmt.Errorf("write audit record: %w", err)
	}
	return nil
}

// History returns recorded sessions, newest first.
func (l *Log) History() ([]ScanRecord, error) {
	f, err := os.Open(l.logPath)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	var records []ScanRecord
	dec := json.NewDecoder(f)
	for dec.More() {
		var r ScanRecord
		if err := dec.Decode(&r); err != nil {
			continue
		}
		records = append(records, r)
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// NewRecord summarizes a scan session for the log.
func NewRecord(root string, findings []types.Finding, filesScanned int, duration time.Duration, alertsSent int64) ScanRecord {
	severityCounts := make(map[string]int)
	verified := 0
	for _, f := range findings {
		severityCounts[string(f.Severity)]++
		if f.Verification != nil && f.Verification.Verified {
			verified++
		}
	}
	return ScanRecord{
		Timestamp:      time.Now(),
		Root:           root,
		TotalFindings:  len(findings),
		VerifiedCount:  verified,
		AlertsSent:     alertsSent,
		SeverityCounts: severityCounts,
		FilesScanned:   filesScanned,
		Duration:       duration.String(),
		Findings:       findings,
	}
}

func redactValues(findings []types.Finding) []types.Finding {
	redacted := make([]types.Finding, len(findings))
	for i, f := range findings {
		redacted[i] = f
		if f.Value != "" {
			redacted[i].Value = "[REDACTED]"
		}
	}
	return redacted
}
