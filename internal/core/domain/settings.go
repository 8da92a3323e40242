package domain

import "strings"

// WebhookMethod selects how the webhook notifier delivers its payload.
// Both variants carry the JSON body; some merchant integrations only accept
// GET callbacks.
type WebhookMethod string

const (
	WebhookMethodGet  WebhookMethod = "GET"
	WebhookMethodPost WebhookMethod = "POST"
)

// Settings holds the instance-wide charge server settings. A single row
// exists; updating it restarts the upstream feed connection.
type Settings struct {
	WebhookMethod WebhookMethod `json:"webhook_method"`
	MempoolURL    string        `json:"mempool_url"`
	Network       string        `json:"network"`
}

// Endpoint returns the explorer base URL for the configured network. Testnet
// instances live under the explorer's /testnet API root, for both the REST
// balance lookups and the websocket feed.
func (s Settings) Endpoint() string {
	url := strings.TrimSuffix(s.MempoolURL, "/")
	if s.Network == "Testnet" {
		return url + "/testnet"
	}
	return url
}

// DefaultSettings are used until an operator saves their own.
func DefaultSettings() Settings {
	return Settings{
		WebhookMethod: WebhookMethodGet,
		MempoolURL:    "https://mempool.space",
		Network:       "Mainnet",
	}
}

// Theme is a reusable stylesheet a charge display page can reference.
type Theme struct {
	CSSID     string `json:"css_id"`
	Title     string `json:"title"`
	CustomCSS string `json:"custom_css"`
	User      string `json:"user"`
}
