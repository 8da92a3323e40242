package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lnbits/satspay/config"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.WalletClient against the wallet collaborator's
// REST API. The wallet argument of each call selects which wallet key
// authorizes the request.
type Client struct {
	endpoint string
	apiKey   string
	client   HTTPClient
	log      zerolog.Logger
}

// NewClient creates a wallet client from config.
func NewClient(cfg config.WalletConfig, client HTTPClient, log zerolog.Logger) *Client {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		client:   client,
		log:      log,
	}
}

type createInvoiceRequest struct {
	Out    bool   `json:"out"`
	Amount int64  `json:"amount"`
	Memo   string `json:"memo"`
	Expiry int64  `json:"expiry"` // seconds
	Extra  struct {
		Tag    string `json:"tag"`
		Charge string `json:"charge"`
	} `json:"extra"`
}

type createInvoiceResponse struct {
	PaymentHash    string `json:"payment_hash"`
	PaymentRequest string `json:"payment_request"`
}

// CreateInvoice creates a Lightning invoice on wallet, tagged with the
// charge id so the settlement event can be routed back.
func (c *Client) CreateInvoice(ctx context.Context, wallet string, amountSat int64, memo string, chargeID string, expiry time.Duration) (string, string, error) {
	body := createInvoiceRequest{
		Amount: amountSat,
		Memo:   memo,
		Expiry: int64(expiry.Seconds()),
	}
	body.Extra.Tag = "charge"
	body.Extra.Charge = chargeID

	var resp createInvoiceResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/payments", wallet, body, &resp); err != nil {
		return "", "", fmt.Errorf("creating invoice: %w", err)
	}
	return resp.PaymentHash, resp.PaymentRequest, nil
}

// NewAddress derives a fresh receive address from the watch-only wallet.
func (c *Client) NewAddress(ctx context.Context, wallet string) (string, error) {
	var resp struct {
		Address string `json:"address"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/address/"+wallet, c.apiKey, nil, &resp); err != nil {
		return "", fmt.Errorf("fetching address: %w", err)
	}
	return resp.Address, nil
}

// Network reports which network the wallet collaborator operates on.
func (c *Client) Network(ctx context.Context) (string, error) {
	var resp struct {
		Network string `json:"network"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/network", c.apiKey, nil, &resp); err != nil {
		return "", fmt.Errorf("fetching network: %w", err)
	}
	return resp.Network, nil
}

// PaymentStatus reports whether an invoice has settled and for how much.
func (c *Client) PaymentStatus(ctx context.Context, wallet, paymentHash string) (bool, int64, error) {
	var resp struct {
		Paid    bool `json:"paid"`
		Details struct {
			Amount int64 `json:"amount"` // millisatoshis
		} `json:"details"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/payments/"+paymentHash, wallet, nil, &resp); err != nil {
		return false, 0, fmt.Errorf("fetching payment status: %w", err)
	}
	return resp.Paid, resp.Details.Amount, nil
}

func (c *Client) do(ctx context.Context, method, path, key string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("X-Api-Key", key)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, detail)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
