package postgres

import (
	"context"
	"fmt"
)

// schema is applied at startup. Statements are idempotent so restarts are
// safe without a migration tool.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS charges (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT,
		description TEXT NOT NULL DEFAULT '',
		onchain_wallet TEXT,
		onchain_address TEXT,
		lightning_wallet TEXT,
		payment_request TEXT,
		payment_hash TEXT,
		webhook TEXT,
		complete_link TEXT,
		complete_link_text TEXT NOT NULL DEFAULT '',
		custom_css TEXT,
		time_minutes INT NOT NULL,
		amount BIGINT NOT NULL,
		zeroconf BOOLEAN NOT NULL DEFAULT false,
		fasttrack BOOLEAN NOT NULL DEFAULT false,
		balance BIGINT NOT NULL DEFAULT 0,
		pending BIGINT NOT NULL DEFAULT 0,
		paid BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL,
		currency TEXT,
		currency_amount DOUBLE PRECISION,
		extra JSONB NOT NULL DEFAULT '{}'::jsonb
	)`,
	`CREATE INDEX IF NOT EXISTS idx_charges_user ON charges (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_charges_onchain_address ON charges (onchain_address) WHERE onchain_address IS NOT NULL`,
	`CREATE INDEX IF NOT EXISTS idx_charges_pending ON charges (paid) WHERE paid = false`,
	`CREATE TABLE IF NOT EXISTS themes (
		css_id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		custom_css TEXT NOT NULL DEFAULT '',
		user_id TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id INT PRIMARY KEY CHECK (id = 1),
		webhook_method TEXT NOT NULL,
		mempool_url TEXT NOT NULL,
		network TEXT NOT NULL
	)`,
}

// Migrate applies the schema.
func Migrate(ctx context.Context, pool Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}
