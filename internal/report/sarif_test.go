package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/leakhound/leakhound/internal/types"
)

func TestWriteSARIF(t *testing.T) {
	findings := []types.Finding{
		{
			Candidate: types.Candidate{Kind: types.KindAWSAccessKey, Value: "AKIA1234567890ABCDEF", Source: "a.env", Line: 7},
			Severity:  types.SevCritical,
		},
		{
			Candidate: types.Candidate{Kind: types.KindJWTToken, Value: "x.y.z", Source: "b.txt", Line: 1},
			Severity:  types.SevMed,
		},
		{
			Candidate: types.Candidate{Kind: types.KindBearerToken, Value: "tok", Source: "c.txt", Line: 3},
			Severity:  types.SevLow,
		},
	}

	var buf bytes.Buffer
	if err := WriteSARIF(&buf, findings); err != nil {
		t.Fatalf("WriteSARIF: %v", err)
	}

	var doc struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name string `json:"name"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID    string `json:"ruleId"`
				Level     string `json:"level"`
				Locations []struct {
					PhysicalLocation struct {
						ArtifactLocation struct {
							URI string `json:"uri"`
						} `json:"artifactLocation"`
						Region struct {
							StartLine int `json:"startLine"`
						} `json:"region"`
					} `json:"physicalLocation"`
				} `json:"locations"`
			} `json:"results"`
		} `json:"runs"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid SARIF JSON: %v", err)
	}

	if doc.Version != "2.1.0" {
		t.Fatalf("version = %s", doc.Version)
	}
	if len(doc.Runs) != 1 || doc.Runs[0].Tool.Driver.Name != "leakhound" {
		t.Fatalf("unexpected runs: %+v", doc.Runs)
	}
	results := doc.Runs[0].Results
	if len(results) != 3 {
		t.Fatalf("results = %d", len(results))
	}
	if results[0].RuleID != "aws_access_key" || results[0].Level != "error" {
		t.Fatalf("critical finding mapped to %s/%s", results[0].RuleID, results[0].Level)
	}
	if results[1].Level != "warning" || results[2].Level != "note" {
		t.Fatalf("levels = %s, %s", results[1].Level, results[2].Level)
	}
	loc := results[0].Locations[0].PhysicalLocation
	if loc.ArtifactLocation.URI != "a.env" || loc.Region.StartLine != 7 {
		t.Fatalf("location = %+v", loc)
	}

	// No secret values leak into the document.
	if bytes.Contains(buf.Bytes(), []byte("AKIA1234567890ABCDEF")) {
		t.Fatalf("secret value present in SARIF output")
	}
}
