package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/lnbits/satspay/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRates_FiatAsSats(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches the rate and converts", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			assert.Equal(t, "bitcoin", r.URL.Query().Get("ids"))
			assert.Equal(t, "eur", r.URL.Query().Get("vs_currencies"))
			w.Write([]byte(`{"bitcoin":{"eur":50000}}`))
		}))
		defer server.Close()

		cache := mocks.NewMockRateCache(gomock.NewController(t))
		cache.EXPECT().GetRate(ctx, "eur").Return(0.0, false, nil)
		cache.EXPECT().SetRate(ctx, "eur", 50000.0, rateCacheTTL).Return(nil)

		rates := NewRates(server.Client(), cache, server.URL, zerolog.Nop())

		// 100 EUR at 50k EUR/BTC is 0.002 BTC.
		sats, err := rates.FiatAsSats(ctx, 100, "EUR")
		require.NoError(t, err)
		assert.Equal(t, int64(200_000), sats)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("serves from the cache without hitting the exchange", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("exchange should not be called on a cache hit")
		}))
		defer server.Close()

		cache := mocks.NewMockRateCache(gomock.NewController(t))
		cache.EXPECT().GetRate(ctx, "usd").Return(60000.0, true, nil)

		rates := NewRates(server.Client(), cache, server.URL, zerolog.Nop())

		sats, err := rates.FiatAsSats(ctx, 60, "usd")
		require.NoError(t, err)
		assert.Equal(t, int64(100_000), sats)
	})

	t.Run("a cache failure falls through to the exchange", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"bitcoin":{"usd":60000}}`))
		}))
		defer server.Close()

		cache := mocks.NewMockRateCache(gomock.NewController(t))
		cache.EXPECT().GetRate(ctx, "usd").Return(0.0, false, assert.AnError)
		cache.EXPECT().SetRate(ctx, "usd", 60000.0, rateCacheTTL).Return(assert.AnError)

		rates := NewRates(server.Client(), cache, server.URL, zerolog.Nop())

		sats, err := rates.FiatAsSats(ctx, 60, "USD")
		require.NoError(t, err)
		assert.Equal(t, int64(100_000), sats)
	})

	t.Run("rejects a response without the requested currency", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"bitcoin":{}}`))
		}))
		defer server.Close()

		cache := mocks.NewMockRateCache(gomock.NewController(t))
		cache.EXPECT().GetRate(ctx, "chf").Return(0.0, false, nil)

		rates := NewRates(server.Client(), cache, server.URL, zerolog.Nop())

		_, err := rates.FiatAsSats(ctx, 10, "CHF")
		assert.Error(t, err)
	})

	t.Run("propagates an exchange error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer server.Close()

		cache := mocks.NewMockRateCache(gomock.NewController(t))
		cache.EXPECT().GetRate(ctx, "usd").Return(0.0, false, nil)

		rates := NewRates(server.Client(), cache, server.URL, zerolog.Nop())

		_, err := rates.FiatAsSats(ctx, 10, "USD")
		assert.Error(t, err)
	})
}
