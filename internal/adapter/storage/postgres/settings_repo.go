package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/lnbits/satspay/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// SettingsRepo implements ports.SettingsRepository. Settings are a single
// row; the fixed id keeps it that way.
type SettingsRepo struct {
	pool Pool
}

// NewSettingsRepo creates a new SettingsRepo.
func NewSettingsRepo(pool Pool) *SettingsRepo {
	return &SettingsRepo{pool: pool}
}

// Get fetches the settings row, or nil when none has been saved yet.
func (r *SettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT webhook_method, mempool_url, network FROM settings WHERE id = 1`

	s := &domain.Settings{}
	err := r.pool.QueryRow(ctx, query).Scan(&s.WebhookMethod, &s.MempoolURL, &s.Network)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan settings: %w", err)
	}
	return s, nil
}

// Save upserts the settings row.
func (r *SettingsRepo) Save(ctx context.Context, s domain.Settings) error {
	query := `INSERT INTO settings (id, webhook_method, mempool_url, network)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET webhook_method = $1, mempool_url = $2, network = $3`

	_, err := r.pool.Exec(ctx, query, s.WebhookMethod, s.MempoolURL, s.Network)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Delete removes the settings row, reverting the instance to defaults.
func (r *SettingsRepo) Delete(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM settings WHERE id = 1`)
	if err != nil {
		return fmt.Errorf("delete settings: %w", err)
	}
	return nil
}
