// Package alert delivers findings to a Telegram chat through the bot API.
// Delivery is best-effort and rate limited: a dispatch arriving before the
// minimum interval has elapsed is dropped, never queued or retried.
package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/leakhound/leakhound/internal/types"
)

const defaultInterval = 5 * time.Second

// Options configure a Dispatcher. BaseURL exists for tests; the zero value
// targets api.telegram.org.
type Options struct {
	Token    string
	ChatID   string
	Interval time.Duration
	Client   *http.Client
	BaseURL  string
	Now      func() time.Time
	Logger   *slog.Logger
}

// Dispatcher owns the two pieces of process-wide mutable state the
// pipeline shares: the monotonic hit counter and the rate gate. Both are
// safe for concurrent dispatch from parallel pipeline invocations.
type Dispatcher struct {
	token   string
	chatID  string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	hits    atomic.Int64
	now     func() time.Time
	log     *slog.Logger
}

// NewDispatcher builds a dispatcher with its rate gate initially open.
func NewDispatcher(opts Options) *Dispatcher {
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: 10 * time.Second}
	}
	if opts.BaseURL == "" {
		opts.BaseURL = "https://api.telegram.org"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Dispatcher{
		token:   opts.Token,
		chatID:  opts.ChatID,
		baseURL: opts.BaseURL,
		client:  opts.Client,
		limiter: rate.NewLimiter(rate.Every(opts.Interval), 1),
		now:     opts.Now,
		log:     opts.Logger,
	}
}

// Hits returns the number of alerts dispatched so far.
func (d *Dispatcher) Hits() int64 { return d.hits.Load() }

// Dispatch sends one alert for the finding. It never returns an error:
// rate-limited calls are dropped and logged, transport failures are logged
// and swallowed.
func (d *Dispatcher) Dispatch(ctx context.Context, f types.Finding) {
	if !d.limiter.Allow() {
		d.log.Info("alert rate limited, dropping",
			"kind", f.Kind, "source", f.Source)
		return
	}
	a := types.Alert{
		HitID:        d.hits.Add(1),
		Kind:         f.Kind,
		Severity:     f.Severity,
		Confidence:   f.Confidence,
		Preview:      maskValue(f.Value),
		Source:       f.Source,
		CreatedAt:    d.now().UTC(),
		Verification: f.Verification,
	}
	if err := d.sendMessage(ctx, formatAlert(a)); err != nil {
		d.log.Warn("alert delivery failed", "hit_id", a.HitID, "err", err)
	}
}

// SendText delivers a free-form notification (session start/summary).
// Subject to the same rate gate and best-effort contract as alerts.
func (d *Dispatcher) SendText(ctx context.Context, text string) {
	if !d.limiter.Allow() {
		d.log.Info("notification rate limited, dropping")
		return
	}
	if err := d.sendMessage(ctx, text); err != nil {
		d.log.Warn("notification delivery failed", "err", err)
	}
}

func (d *Dispatcher) sendMessage(ctx context.Context, text string) error {
	payload, err := json.Marshal(map[string]string{
		"chat_id":    d.chatID,
		"text":       text,
		"parse_mode": "HTML",
	})
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/bot%s/sendMessage", d.baseURL, d.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return nil
}

func severityGlyph(s types.Severity) string {
	switch s {
	case types.SevCritical:
		return "🔴 CRITICAL"
	case types.SevHigh:
		return "🟠 HIGH"
	case types.SevMed:
		return "🟡 MEDIUM"
	default:
		return "🟢 LOW"
	}
}

// maskValue truncates a secret for display: at most 50 characters followed
// by an ellipsis. Alerts never carry the full value.
func maskValue(s string) string {
	if len(s) > 50 {
		return s[:50] + "..."
	}
	return s
}

func formatAlert(a types.Alert) string {
	msg := fmt.Sprintf(`🚨 <b>CREDENTIAL HIT DETECTED</b> 🚨

🎯 Hit #%d
🔑 Type: %s
📊 Confidence: %.1f%%
⚠️ Severity: %s

🌐 Source: %s
💎 Value: <code>%s</code>`,
		a.HitID, a.Kind, a.Confidence, severityGlyph(a.Severity),
		html.EscapeString(a.Source), html.EscapeString(a.Preview))
	if v := a.Verification; v != nil {
		if v.Verified {
			msg += fmt.Sprintf("\n✅ Verified: %s", v.Service)
			for k, val := range v.Metadata {
				msg += fmt.Sprintf("\n   %s: %s", k, html.EscapeString(val))
			}
		} else if v.Error != "" {
			msg += fmt.Sprintf("\n❌ Unverified: %s", html.EscapeString(v.Error))
		}
	}
	msg += fmt.Sprintf("\n\n🕐 Time: %s", a.CreatedAt.Format("15:04:05 UTC"))
	return msg
}
