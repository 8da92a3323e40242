package ports

import (
	"context"

	"github.com/lnbits/satspay/internal/core/domain"
)

// ChargeRepository defines persistence operations for charges. Lookup methods
// return nil, nil when no row matches.
type ChargeRepository interface {
	Create(ctx context.Context, charge *domain.Charge) error
	Update(ctx context.Context, charge *domain.Charge) error
	GetByID(ctx context.Context, id string) (*domain.Charge, error)
	GetByOnchainAddress(ctx context.Context, address string) (*domain.Charge, error)
	ListByUser(ctx context.Context, user string) ([]domain.Charge, error)
	// ListPending returns all charges that have not reached paid yet.
	ListPending(ctx context.Context) ([]domain.Charge, error)
	Delete(ctx context.Context, id string) error
}

// ThemeRepository defines persistence operations for display themes.
type ThemeRepository interface {
	Create(ctx context.Context, theme *domain.Theme) error
	Update(ctx context.Context, theme *domain.Theme) error
	GetByID(ctx context.Context, cssID string) (*domain.Theme, error)
	ListByUser(ctx context.Context, user string) ([]domain.Theme, error)
	Delete(ctx context.Context, cssID string) error
}

// SettingsRepository persists the single instance-wide settings row.
type SettingsRepository interface {
	// Get returns nil, nil when no settings row exists yet.
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
	Delete(ctx context.Context) error
}
