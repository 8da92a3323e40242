package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RateCache implements ports.RateCache using Redis. Rates are short-lived;
// the TTL is picked by the caller.
type RateCache struct {
	client *goredis.Client
	prefix string
}

// NewRateCache creates a new Redis-backed exchange rate cache.
func NewRateCache(client *goredis.Client) *RateCache {
	return &RateCache{
		client: client,
		prefix: "rate:",
	}
}

// GetRate returns the cached BTC price in currency, or ok=false on miss.
func (c *RateCache) GetRate(ctx context.Context, currency string) (float64, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+currency).Result()
	if err != nil {
		if err == goredis.Nil {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("redis rate get: %w", err)
	}
	rate, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false, fmt.Errorf("redis rate parse: %w", err)
	}
	return rate, true, nil
}

// SetRate stores the BTC price for currency with TTL.
func (c *RateCache) SetRate(ctx context.Context, currency string, rate float64, ttl time.Duration) error {
	val := strconv.FormatFloat(rate, 'f', -1, 64)
	if err := c.client.Set(ctx, c.prefix+currency, val, ttl).Err(); err != nil {
		return fmt.Errorf("redis rate set: %w", err)
	}
	return nil
}
