package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/lnbits/satspay/internal/core/domain"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// addressInfo is the explorer's address summary.
type addressInfo struct {
	ChainStats   addressStats `json:"chain_stats"`
	MempoolStats addressStats `json:"mempool_stats"`
}

type addressStats struct {
	FundedTxoSum int64 `json:"funded_txo_sum"`
	SpentTxoSum  int64 `json:"spent_txo_sum"`
}

// Explorer implements ports.ExplorerClient against a mempool.space style
// REST API. It shares the feed's base URL and follows settings changes via
// Restart.
type Explorer struct {
	mu      sync.Mutex
	baseURL string
	client  HTTPClient
}

// NewExplorer creates an Explorer against baseURL.
func NewExplorer(baseURL string, client HTTPClient) *Explorer {
	if client == nil {
		client = http.DefaultClient
	}
	return &Explorer{baseURL: baseURL, client: client}
}

// Restart points the explorer at a new base URL.
func (e *Explorer) Restart(baseURL string) {
	e.mu.Lock()
	e.baseURL = baseURL
	e.mu.Unlock()
}

func (e *Explorer) base() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.baseURL
}

// AddressBalance fetches the funded totals and transaction ids for address.
func (e *Explorer) AddressBalance(ctx context.Context, address string) (*domain.OnchainBalance, error) {
	var info addressInfo
	if err := e.getJSON(ctx, fmt.Sprintf("%s/api/address/%s", e.base(), address), &info); err != nil {
		return nil, err
	}

	var txs []domain.Transaction
	if err := e.getJSON(ctx, fmt.Sprintf("%s/api/address/%s/txs", e.base(), address), &txs); err != nil {
		return nil, err
	}

	// Funded totals, matching the live feed's view of outputs credited to
	// the address. Spends from the address do not reduce the balance.
	return &domain.OnchainBalance{
		Confirmed:   info.ChainStats.FundedTxoSum,
		Unconfirmed: info.MempoolStats.FundedTxoSum,
		TxIDs:       domain.TxIDs(txs),
	}, nil
}

func (e *Explorer) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("explorer request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("explorer request %s: %s", url, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding explorer response: %w", err)
	}
	return nil
}
