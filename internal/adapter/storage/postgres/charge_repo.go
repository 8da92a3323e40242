package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lnbits/satspay/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ChargeRepo implements ports.ChargeRepository. The charge facts travel as a
// JSONB column; (de)serialization happens only here, at the storage boundary.
type ChargeRepo struct {
	pool Pool
}

// NewChargeRepo creates a new ChargeRepo.
func NewChargeRepo(pool Pool) *ChargeRepo {
	return &ChargeRepo{pool: pool}
}

const chargeColumns = `id, user_id, name, description, onchain_wallet, onchain_address,
	lightning_wallet, payment_request, payment_hash, webhook, complete_link,
	complete_link_text, custom_css, time_minutes, amount, zeroconf, fasttrack,
	balance, pending, paid, created_at, currency, currency_amount, extra`

// Create inserts a new charge.
func (r *ChargeRepo) Create(ctx context.Context, c *domain.Charge) error {
	facts, err := json.Marshal(c.Facts)
	if err != nil {
		return fmt.Errorf("marshal charge facts: %w", err)
	}

	query := `INSERT INTO charges (` + chargeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`

	_, err = r.pool.Exec(ctx, query,
		c.ID, c.User, c.Name, c.Description, c.OnchainWallet, c.OnchainAddress,
		c.LightningWallet, c.PaymentRequest, c.PaymentHash, c.Webhook, c.CompleteLink,
		c.CompleteLinkText, c.CustomCSS, c.Time, c.Amount, c.Zeroconf, c.Fasttrack,
		c.Balance, c.Pending, c.Paid, c.Timestamp, c.Currency, c.CurrencyAmount, facts,
	)
	if err != nil {
		return fmt.Errorf("insert charge: %w", err)
	}
	return nil
}

// Update persists the charge's mutable settlement state and facts.
func (r *ChargeRepo) Update(ctx context.Context, c *domain.Charge) error {
	facts, err := json.Marshal(c.Facts)
	if err != nil {
		return fmt.Errorf("marshal charge facts: %w", err)
	}

	query := `UPDATE charges SET balance = $1, pending = $2, paid = $3, extra = $4 WHERE id = $5`

	tag, err := r.pool.Exec(ctx, query, c.Balance, c.Pending, c.Paid, facts, c.ID)
	if err != nil {
		return fmt.Errorf("update charge: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("charge not found: %s", c.ID)
	}
	return nil
}

// GetByID fetches a charge by id.
func (r *ChargeRepo) GetByID(ctx context.Context, id string) (*domain.Charge, error) {
	query := `SELECT ` + chargeColumns + ` FROM charges WHERE id = $1`
	return r.scanCharge(r.pool.QueryRow(ctx, query, id))
}

// GetByOnchainAddress fetches the charge funded by address.
func (r *ChargeRepo) GetByOnchainAddress(ctx context.Context, address string) (*domain.Charge, error) {
	query := `SELECT ` + chargeColumns + ` FROM charges WHERE onchain_address = $1`
	return r.scanCharge(r.pool.QueryRow(ctx, query, address))
}

// ListByUser fetches all charges owned by user, newest first.
func (r *ChargeRepo) ListByUser(ctx context.Context, user string) ([]domain.Charge, error) {
	query := `SELECT ` + chargeColumns + ` FROM charges WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, user)
	if err != nil {
		return nil, fmt.Errorf("list charges: %w", err)
	}
	return r.collectCharges(rows)
}

// ListPending fetches all charges that have not settled yet.
func (r *ChargeRepo) ListPending(ctx context.Context) ([]domain.Charge, error) {
	query := `SELECT ` + chargeColumns + ` FROM charges WHERE paid = false ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list pending charges: %w", err)
	}
	return r.collectCharges(rows)
}

// Delete removes a charge.
func (r *ChargeRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM charges WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete charge: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("charge not found: %s", id)
	}
	return nil
}

func (r *ChargeRepo) collectCharges(rows pgx.Rows) ([]domain.Charge, error) {
	defer rows.Close()

	var charges []domain.Charge
	for rows.Next() {
		c, err := r.scanChargeRow(rows)
		if err != nil {
			return nil, err
		}
		charges = append(charges, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate charge rows: %w", err)
	}
	return charges, nil
}

func (r *ChargeRepo) scanCharge(row pgx.Row) (*domain.Charge, error) {
	c, err := r.scanChargeRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *ChargeRepo) scanChargeRow(row pgx.Row) (*domain.Charge, error) {
	c := &domain.Charge{}
	var facts []byte
	err := row.Scan(
		&c.ID, &c.User, &c.Name, &c.Description, &c.OnchainWallet, &c.OnchainAddress,
		&c.LightningWallet, &c.PaymentRequest, &c.PaymentHash, &c.Webhook, &c.CompleteLink,
		&c.CompleteLinkText, &c.CustomCSS, &c.Time, &c.Amount, &c.Zeroconf, &c.Fasttrack,
		&c.Balance, &c.Pending, &c.Paid, &c.Timestamp, &c.Currency, &c.CurrencyAmount, &facts,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan charge: %w", err)
	}
	if len(facts) > 0 {
		if err := json.Unmarshal(facts, &c.Facts); err != nil {
			return nil, fmt.Errorf("unmarshal charge facts: %w", err)
		}
	}
	return c, nil
}
