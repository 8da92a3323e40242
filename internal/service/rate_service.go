package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/lnbits/satspay/internal/core/ports"

	"github.com/rs/zerolog"
)

const (
	rateCacheTTL = 5 * time.Minute
	satsPerBTC   = 100_000_000
)

// Rates implements ports.RateService: fiat→sat conversion against an
// exchange-rate API, with a cache in front so charge creation bursts do not
// hammer the exchange.
type Rates struct {
	client   HTTPClient
	cache    ports.RateCache
	endpoint string
	log      zerolog.Logger
}

// NewRates creates the rate service. endpoint defaults to the CoinGecko
// simple-price API when empty.
func NewRates(client HTTPClient, cache ports.RateCache, endpoint string, log zerolog.Logger) *Rates {
	if endpoint == "" {
		endpoint = "https://api.coingecko.com/api/v3/simple/price"
	}
	return &Rates{client: client, cache: cache, endpoint: endpoint, log: log}
}

// FiatAsSats converts amount in currency to satoshis at the current rate.
func (r *Rates) FiatAsSats(ctx context.Context, amount float64, currency string) (int64, error) {
	rate, err := r.btcPrice(ctx, strings.ToLower(currency))
	if err != nil {
		return 0, err
	}
	return int64(math.Round(amount / rate * satsPerBTC)), nil
}

// btcPrice returns the BTC price in currency, cache first.
func (r *Rates) btcPrice(ctx context.Context, currency string) (float64, error) {
	if rate, ok, err := r.cache.GetRate(ctx, currency); err != nil {
		r.log.Warn().Err(err).Str("currency", currency).Msg("rate cache read failed, falling through")
	} else if ok {
		return rate, nil
	}

	url := fmt.Sprintf("%s?ids=bitcoin&vs_currencies=%s", r.endpoint, currency)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetching %s rate: %w", currency, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetching %s rate: %s", currency, resp.Status)
	}

	var body map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decoding rate response: %w", err)
	}
	rate, ok := body["bitcoin"][currency]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("no %s rate in response", currency)
	}

	if err := r.cache.SetRate(ctx, currency, rate, rateCacheTTL); err != nil {
		r.log.Warn().Err(err).Str("currency", currency).Msg("rate cache write failed")
	}
	return rate, nil
}
