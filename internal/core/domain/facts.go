package domain

// PaymentMethod identifies which payment target settled a charge.
type PaymentMethod string

const (
	PaymentMethodLightning PaymentMethod = "lightning"
	PaymentMethodOnchain   PaymentMethod = "onchain"
)

// WebhookResult records the outcome of a webhook delivery attempt. Deliveries
// never raise: failures are captured here and merged into the charge facts.
type WebhookResult struct {
	Success  bool   `json:"webhook_success"`
	Message  string `json:"webhook_message,omitempty"`
	Response string `json:"webhook_response,omitempty"`
}

// Facts is the structured metadata accumulated on a charge as settlement
// progresses: which method paid it, how the webhook delivery went, which
// transactions were observed, and the network config the charge was created
// under. Merges are additive; a key is only overwritten by a newer value for
// the same key. Facts are serialized at the storage boundary only.
type Facts struct {
	PaymentMethod   PaymentMethod  `json:"payment_method,omitempty"`
	Webhook         *WebhookResult `json:"webhook,omitempty"`
	TxIDs           []string       `json:"txids,omitempty"`
	MempoolEndpoint string         `json:"mempool_endpoint,omitempty"`
	Network         string         `json:"network,omitempty"`
}

// Merge overlays non-zero fields of other onto f. Unset fields of other leave
// the existing values untouched.
func (f *Facts) Merge(other Facts) {
	if other.PaymentMethod != "" {
		f.PaymentMethod = other.PaymentMethod
	}
	if other.Webhook != nil {
		f.Webhook = other.Webhook
	}
	if other.TxIDs != nil {
		f.TxIDs = other.TxIDs
	}
	if other.MempoolEndpoint != "" {
		f.MempoolEndpoint = other.MempoolEndpoint
	}
	if other.Network != "" {
		f.Network = other.Network
	}
}
