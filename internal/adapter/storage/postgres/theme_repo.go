package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/lnbits/satspay/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ThemeRepo implements ports.ThemeRepository.
type ThemeRepo struct {
	pool Pool
}

// NewThemeRepo creates a new ThemeRepo.
func NewThemeRepo(pool Pool) *ThemeRepo {
	return &ThemeRepo{pool: pool}
}

// Create inserts a new theme.
func (r *ThemeRepo) Create(ctx context.Context, t *domain.Theme) error {
	query := `INSERT INTO themes (css_id, title, custom_css, user_id) VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query, t.CSSID, t.Title, t.CustomCSS, t.User)
	if err != nil {
		return fmt.Errorf("insert theme: %w", err)
	}
	return nil
}

// Update persists changes to an existing theme.
func (r *ThemeRepo) Update(ctx context.Context, t *domain.Theme) error {
	query := `UPDATE themes SET title = $1, custom_css = $2 WHERE css_id = $3`

	tag, err := r.pool.Exec(ctx, query, t.Title, t.CustomCSS, t.CSSID)
	if err != nil {
		return fmt.Errorf("update theme: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("theme not found: %s", t.CSSID)
	}
	return nil
}

// GetByID fetches a theme by its css id.
func (r *ThemeRepo) GetByID(ctx context.Context, cssID string) (*domain.Theme, error) {
	query := `SELECT css_id, title, custom_css, user_id FROM themes WHERE css_id = $1`

	t := &domain.Theme{}
	err := r.pool.QueryRow(ctx, query, cssID).Scan(&t.CSSID, &t.Title, &t.CustomCSS, &t.User)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan theme: %w", err)
	}
	return t, nil
}

// ListByUser fetches all themes owned by user.
func (r *ThemeRepo) ListByUser(ctx context.Context, user string) ([]domain.Theme, error) {
	query := `SELECT css_id, title, custom_css, user_id FROM themes WHERE user_id = $1 ORDER BY title`

	rows, err := r.pool.Query(ctx, query, user)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	defer rows.Close()

	var themes []domain.Theme
	for rows.Next() {
		var t domain.Theme
		if err := rows.Scan(&t.CSSID, &t.Title, &t.CustomCSS, &t.User); err != nil {
			return nil, fmt.Errorf("scan theme row: %w", err)
		}
		themes = append(themes, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate theme rows: %w", err)
	}
	return themes, nil
}

// Delete removes a theme.
func (r *ThemeRepo) Delete(ctx context.Context, cssID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM themes WHERE css_id = $1`, cssID)
	if err != nil {
		return fmt.Errorf("delete theme: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("theme not found: %s", cssID)
	}
	return nil
}
