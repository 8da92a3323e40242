package postgres

import (
	"context"
	"testing"

	"github.com/lnbits/satspay/internal/core/domain"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettingsRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM settings").
		WillReturnRows(pgxmock.NewRows([]string{"webhook_method", "mempool_url", "network"}).
			AddRow(domain.WebhookMethodPost, "https://mempool.example", "Testnet"))

	result, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, domain.WebhookMethodPost, result.WebhookMethod)
	assert.Equal(t, "https://mempool.example", result.MempoolURL)
	assert.Equal(t, "Testnet", result.Network)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepo_Get_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettingsRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM settings").
		WillReturnRows(pgxmock.NewRows([]string{"webhook_method", "mempool_url", "network"}))

	result, err := repo.Get(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepo_Save(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettingsRepo(mock)
	s := domain.DefaultSettings()

	mock.ExpectExec("INSERT INTO settings").
		WithArgs(s.WebhookMethod, s.MempoolURL, s.Network).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Save(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepo_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettingsRepo(mock)

	mock.ExpectExec("DELETE FROM settings").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.Delete(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
