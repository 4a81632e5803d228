package verify

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/leakhound/leakhound/internal/sigv4"
	"github.com/leakhound/leakhound/internal/types"
)

const sesQuotaPayload = "Action=GetSendQuota&Version=2010-12-01"

// SES verifies an AWS key pair by querying the account's email send quota,
// the cheapest signed call that proves the pair is live.
type SES struct {
	Region  string
	BaseURL string // defaults to https://email.{region}.amazonaws.com/
	Client  *http.Client
	Now     func() time.Time
}

type sendQuotaResponse struct {
	XMLName xml.Name `xml:"GetSendQuotaResponse"`
	Result  struct {
		Max24HourSend   string `xml:"Max24HourSend"`
		SentLast24Hours string `xml:"SentLast24Hours"`
		MaxSendRate     string `xml:"MaxSendRate"`
	} `xml:"GetSendQuotaResult"`
}

func (s *SES) endpoint() string {
	if s.BaseURL != "" {
		return s.BaseURL
	}
	return fmt.Sprintf("https://email.%s.amazonaws.com/", s.Region)
}

func (s *SES) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Verify issues a signed GetSendQuota call with the candidate pair. Any
// failure yields an unverified result with the reason recorded.
func (s *SES) Verify(ctx context.Context, accessKey, secretKey string) types.VerificationResult {
	endpoint := s.endpoint()
	u, err := url.Parse(endpoint)
	if err != nil {
		return types.VerificationResult{Service: "SES", Error: err.Error()}
	}
	timestamp := s.now().UTC().Format("20060102T150405Z")
	headers := map[string]string{
		"Host":           u.Host,
		sigv4.DateHeader: timestamp,
		"Content-Type":   "application/x-www-form-urlencoded",
	}
	signed, err := sigv4.Sign(http.MethodPost, endpoint, headers, sesQuotaPayload, accessKey, secretKey, s.Region)
	if err != nil {
		return types.VerificationResult{Service: "SES", Error: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(sesQuotaPayload))
	if err != nil {
		return types.VerificationResult{Service: "SES", Error: err.Error()}
	}
	for k, v := range signed {
		req.Header.Set(k, v)
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return types.VerificationResult{Service: "SES", Error: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.VerificationResult{Service: "SES", Error: fmt.Sprintf("HTTP %d", resp.StatusCode)}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.VerificationResult{Service: "SES", Error: err.Error()}
	}
	var quota sendQuotaResponse
	if err := xml.Unmarshal(body, &quota); err != nil {
		slog.Debug("ses quota parse failed", "err", err)
		return types.VerificationResult{Service: "SES", Error: fmt.Sprintf("parse response: %v", err)}
	}
	meta := map[string]string{}
	if quota.Result.Max24HourSend != "" {
		meta["max_24_hour"] = quota.Result.Max24HourSend
	}
	if quota.Result.SentLast24Hours != "" {
		meta["sent_last_24h"] = quota.Result.SentLast24Hours
	}
	if quota.Result.MaxSendRate != "" {
		meta["max_send_rate"] = quota.Result.MaxSendRate
	}
	return types.VerificationResult{
		Verified:     true,
		Service:      "SES",
		Metadata:     meta,
		Capabilities: []string{"ses:GetSendQuota"},
	}
}
