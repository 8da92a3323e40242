package service

import (
	"context"
	"testing"
	"time"

	"github.com/lnbits/satspay/internal/core/domain"
	"github.com/lnbits/satspay/internal/core/ports"
	"github.com/lnbits/satspay/internal/core/ports/mocks"
	"github.com/lnbits/satspay/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type chargesFixture struct {
	repo     *mocks.MockChargeRepository
	settings *mocks.MockSettingsRepository
	wallet   *mocks.MockWalletClient
	rates    *mocks.MockRateService
	tracker  *mocks.MockAddressTracker
	svc      *Charges
}

func newChargesFixture(t *testing.T) *chargesFixture {
	ctrl := gomock.NewController(t)
	f := &chargesFixture{
		repo:     mocks.NewMockChargeRepository(ctrl),
		settings: mocks.NewMockSettingsRepository(ctrl),
		wallet:   mocks.NewMockWalletClient(ctrl),
		rates:    mocks.NewMockRateService(ctrl),
		tracker:  mocks.NewMockAddressTracker(ctrl),
	}
	f.svc = NewCharges(f.repo, f.settings, f.wallet, f.rates, f.tracker, zerolog.Nop())
	return f
}

func baseRequest() ports.CreateChargeRequest {
	return ports.CreateChargeRequest{
		User:        "user-1",
		Description: "test charge",
		Amount:      1000,
		Time:        60,
	}
}

func TestCharges_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("provisions both payment targets", func(t *testing.T) {
		f := newChargesFixture(t)

		req := baseRequest()
		req.OnchainWallet = strPtr("onchain-1")
		req.LightningWallet = strPtr("ln-1")

		f.settings.EXPECT().Get(ctx).Return(nil, nil)
		f.wallet.EXPECT().Network(ctx).Return("Mainnet", nil)
		f.wallet.EXPECT().NewAddress(ctx, "onchain-1").Return("bc1qnew", nil)
		f.wallet.EXPECT().
			CreateInvoice(ctx, "ln-1", int64(1000), "test charge", gomock.Any(), 60*time.Minute).
			Return("hash-1", "lnbc1...", nil)
		f.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		f.tracker.EXPECT().Start("bc1qnew")

		charge, err := f.svc.Create(ctx, req)
		require.NoError(t, err)

		assert.NotEmpty(t, charge.ID)
		assert.Equal(t, int64(1000), charge.Amount)
		require.NotNil(t, charge.OnchainAddress)
		assert.Equal(t, "bc1qnew", *charge.OnchainAddress)
		require.NotNil(t, charge.PaymentHash)
		assert.Equal(t, "hash-1", *charge.PaymentHash)
		assert.Equal(t, "Back to Merchant", charge.CompleteLinkText)
		assert.Equal(t, "https://mempool.space", charge.Facts.MempoolEndpoint)
		assert.Equal(t, "Mainnet", charge.Facts.Network)
		assert.False(t, charge.Paid)
	})

	t.Run("converts a fiat amount to sats", func(t *testing.T) {
		f := newChargesFixture(t)

		req := baseRequest()
		req.Amount = 0
		req.Currency = strPtr("EUR")
		amount := 21.5
		req.CurrencyAmount = &amount
		req.LightningWallet = strPtr("ln-1")

		f.rates.EXPECT().FiatAsSats(ctx, 21.5, "EUR").Return(int64(35000), nil)
		f.settings.EXPECT().Get(ctx).Return(nil, nil)
		f.wallet.EXPECT().
			CreateInvoice(ctx, "ln-1", int64(35000), "test charge", gomock.Any(), 60*time.Minute).
			Return("hash-1", "lnbc1...", nil)
		f.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		charge, err := f.svc.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(35000), charge.Amount)
	})

	t.Run("rejects a zero amount without currency", func(t *testing.T) {
		f := newChargesFixture(t)

		req := baseRequest()
		req.Amount = 0

		_, err := f.svc.Create(ctx, req)
		require.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		require.True(t, ok)
		assert.Equal(t, "CHG_002", appErr.Code)
	})

	t.Run("rejects a request with no payment target", func(t *testing.T) {
		f := newChargesFixture(t)

		_, err := f.svc.Create(ctx, baseRequest())
		require.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		require.True(t, ok)
		assert.Equal(t, "CHG_003", appErr.Code)
	})

	t.Run("rejects an onchain wallet on the wrong network", func(t *testing.T) {
		f := newChargesFixture(t)

		req := baseRequest()
		req.OnchainWallet = strPtr("onchain-1")

		f.settings.EXPECT().Get(ctx).Return(nil, nil)
		f.wallet.EXPECT().Network(ctx).Return("Testnet", nil)

		_, err := f.svc.Create(ctx, req)
		require.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		require.True(t, ok)
		assert.Equal(t, "CHG_006", appErr.Code)
	})

	t.Run("arms tracking only after the charge is stored", func(t *testing.T) {
		f := newChargesFixture(t)

		req := baseRequest()
		req.OnchainWallet = strPtr("onchain-1")

		f.settings.EXPECT().Get(ctx).Return(nil, nil)
		f.wallet.EXPECT().Network(ctx).Return("Mainnet", nil)
		f.wallet.EXPECT().NewAddress(ctx, "onchain-1").Return("bc1qnew", nil)
		f.repo.EXPECT().Create(ctx, gomock.Any()).Return(assert.AnError)

		_, err := f.svc.Create(ctx, req)
		require.Error(t, err)
	})
}

func TestCharges_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("not found maps to the charge error", func(t *testing.T) {
		f := newChargesFixture(t)
		f.repo.EXPECT().GetByID(ctx, "missing").Return(nil, nil)

		_, err := f.svc.Get(ctx, "missing")
		require.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		require.True(t, ok)
		assert.Equal(t, "CHG_001", appErr.Code)
	})

	t.Run("returns the charge", func(t *testing.T) {
		f := newChargesFixture(t)
		want := testCharge()
		f.repo.EXPECT().GetByID(ctx, want.ID).Return(want, nil)

		got, err := f.svc.Get(ctx, want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestCharges_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("stops tracking before deleting", func(t *testing.T) {
		f := newChargesFixture(t)
		charge := testCharge()

		f.repo.EXPECT().GetByID(ctx, charge.ID).Return(charge, nil)
		f.tracker.EXPECT().Stop(*charge.OnchainAddress)
		f.repo.EXPECT().Delete(ctx, charge.ID).Return(nil)

		require.NoError(t, f.svc.Delete(ctx, charge.ID))
	})

	t.Run("deleting a missing charge fails", func(t *testing.T) {
		f := newChargesFixture(t)
		f.repo.EXPECT().GetByID(ctx, "missing").Return(nil, nil)

		err := f.svc.Delete(ctx, "missing")
		require.Error(t, err)
	})
}

func TestCharges_List(t *testing.T) {
	ctx := context.Background()
	f := newChargesFixture(t)

	want := []domain.Charge{*testCharge()}
	f.repo.EXPECT().ListByUser(ctx, "user-1").Return(want, nil)

	got, err := f.svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
