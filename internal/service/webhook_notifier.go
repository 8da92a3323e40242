package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/lnbits/satspay/internal/core/domain"

	"github.com/rs/zerolog"
)

// maxWebhookResponse bounds how much of the merchant's response body is
// recorded into the charge facts.
const maxWebhookResponse = 4096

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookCaller implements ports.WebhookNotifier: a one-shot, best-effort
// callback describing the charge's public state. It never returns an error;
// every failure is captured in the result record. There are no automatic
// retries — redelivery is an operator action.
type WebhookCaller struct {
	client  HTTPClient
	timeout time.Duration
	log     zerolog.Logger
}

// NewWebhookCaller creates a WebhookCaller. timeout bounds each delivery;
// zero falls back to 40 seconds.
func NewWebhookCaller(client HTTPClient, timeout time.Duration, log zerolog.Logger) *WebhookCaller {
	if timeout <= 0 {
		timeout = 40 * time.Second
	}
	return &WebhookCaller{client: client, timeout: timeout, log: log}
}

// Notify delivers the charge's public state to its webhook URL. method picks
// GET-with-body or POST-with-body; some merchant plugins only accept GET.
func (w *WebhookCaller) Notify(ctx context.Context, charge *domain.Charge, method domain.WebhookMethod) domain.WebhookResult {
	if charge.Webhook == nil || *charge.Webhook == "" {
		return domain.WebhookResult{Success: false, Message: "no webhook configured"}
	}

	body, err := json.Marshal(charge.Public())
	if err != nil {
		return domain.WebhookResult{Success: false, Message: err.Error()}
	}

	httpMethod := http.MethodGet
	if method == domain.WebhookMethodPost {
		httpMethod = http.MethodPost
	}

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, httpMethod, *charge.Webhook, bytes.NewReader(body))
	if err != nil {
		return domain.WebhookResult{Success: false, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		w.log.Warn().Err(err).Str("charge_id", charge.ID).Msg("webhook delivery failed")
		return domain.WebhookResult{Success: false, Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxWebhookResponse))
	success := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !success {
		w.log.Warn().
			Str("charge_id", charge.ID).
			Int("status", resp.StatusCode).
			Msg("webhook returned non-2xx")
	}

	return domain.WebhookResult{
		Success:  success,
		Message:  resp.Status,
		Response: string(respBody),
	}
}
