package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/leakhound/leakhound/internal/types"
)

// SendGrid verifies an API key with two bearer-authenticated calls: the
// credits lookup decides liveness, the verified-sender list is best-effort
// account metadata.
type SendGrid struct {
	BaseURL string // defaults to https://api.sendgrid.com
	Client  *http.Client
}

func (s *SendGrid) base() string {
	if s.BaseURL != "" {
		return strings.TrimSuffix(s.BaseURL, "/")
	}
	return "https://api.sendgrid.com"
}

// Verify checks the key against the user credits endpoint. A failing
// sender-list call leaves Verified untouched and the list empty.
func (s *SendGrid) Verify(ctx context.Context, apiKey, _ string) types.VerificationResult {
	credits, err := s.getJSON(ctx, apiKey, "/v3/user/credits")
	if err != nil {
		return types.VerificationResult{Service: "SendGrid", Error: err.Error()}
	}

	meta := map[string]string{}
	for k, v := range credits {
		meta[k] = fmt.Sprint(v)
	}
	if senders := s.verifiedSenders(ctx, apiKey); len(senders) > 0 {
		meta["senders"] = strings.Join(senders, ",")
	}
	return types.VerificationResult{
		Verified:     true,
		Service:      "SendGrid",
		Metadata:     meta,
		Capabilities: []string{"user:read", "verified_senders:read"},
	}
}

// verifiedSenders fetches the account's verified from-addresses.
// Best-effort: any failure returns an empty list.
func (s *SendGrid) verifiedSenders(ctx context.Context, apiKey string) []string {
	doc, err := s.getJSON(ctx, apiKey, "/v3/verified_senders")
	if err != nil {
		slog.Debug("sendgrid sender list unavailable", "err", err)
		return nil
	}
	results, ok := doc["results"].([]any)
	if !ok {
		return nil
	}
	var senders []string
	for _, r := range results {
		if entry, ok := r.(map[string]any); ok {
			if email, ok := entry["from_email"].(string); ok && email != "" {
				senders = append(senders, email)
			}
		}
	}
	return senders
}

func (s *SendGrid) getJSON(ctx context.Context, apiKey, path string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.base()+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	var doc map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	return doc, nil
}
