package service

import (
	"context"
	"time"

	"github.com/lnbits/satspay/internal/core/domain"
	"github.com/lnbits/satspay/internal/core/ports"
	"github.com/lnbits/satspay/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Charges implements ports.ChargeService: creation (with invoice and address
// provisioning), lookup and deletion. Settlement state is owned by the
// Settlement service; this layer never touches balance/pending/paid.
type Charges struct {
	repo     ports.ChargeRepository
	settings ports.SettingsRepository
	wallet   ports.WalletClient
	rates    ports.RateService
	tracker  ports.AddressTracker
	log      zerolog.Logger
}

// NewCharges creates the charge lifecycle service.
func NewCharges(
	repo ports.ChargeRepository,
	settings ports.SettingsRepository,
	wallet ports.WalletClient,
	rates ports.RateService,
	tracker ports.AddressTracker,
	log zerolog.Logger,
) *Charges {
	return &Charges{
		repo:     repo,
		settings: settings,
		wallet:   wallet,
		rates:    rates,
		tracker:  tracker,
		log:      log,
	}
}

// Create validates the request, provisions the payment targets and stores the
// charge. An on-chain target is armed for tracking immediately.
func (s *Charges) Create(ctx context.Context, req ports.CreateChargeRequest) (*domain.Charge, error) {
	amount := req.Amount
	if amount <= 0 {
		if req.Currency == nil || req.CurrencyAmount == nil {
			return nil, apperror.ErrChargeAmountRequired()
		}
		sats, err := s.rates.FiatAsSats(ctx, *req.CurrencyAmount, *req.Currency)
		if err != nil {
			return nil, apperror.ErrRateLookup(*req.Currency, err)
		}
		amount = sats
	}

	hasOnchain := req.OnchainWallet != nil && *req.OnchainWallet != ""
	hasLightning := req.LightningWallet != nil && *req.LightningWallet != ""
	if !hasOnchain && !hasLightning {
		return nil, apperror.ErrChargeWalletRequired()
	}

	settings := s.currentSettings(ctx)

	charge := &domain.Charge{
		ID:               uuid.New().String(),
		User:             req.User,
		Name:             req.Name,
		Description:      req.Description,
		OnchainWallet:    req.OnchainWallet,
		LightningWallet:  req.LightningWallet,
		Webhook:          req.Webhook,
		CompleteLink:     req.CompleteLink,
		CompleteLinkText: req.CompleteLinkText,
		CustomCSS:        req.CustomCSS,
		Time:             req.Time,
		Amount:           amount,
		Zeroconf:         req.Zeroconf,
		Fasttrack:        req.Fasttrack,
		Timestamp:        time.Now().UTC(),
		Currency:         req.Currency,
		CurrencyAmount:   req.CurrencyAmount,
		Facts: domain.Facts{
			MempoolEndpoint: settings.MempoolURL,
			Network:         settings.Network,
		},
	}
	if charge.CompleteLinkText == "" {
		charge.CompleteLinkText = "Back to Merchant"
	}

	if hasOnchain {
		walletNetwork, err := s.wallet.Network(ctx)
		if err != nil {
			return nil, apperror.ErrAddressFetch(err)
		}
		if walletNetwork != settings.Network {
			return nil, apperror.ErrNetworkMismatch(walletNetwork, settings.Network)
		}
		address, err := s.wallet.NewAddress(ctx, *req.OnchainWallet)
		if err != nil {
			return nil, apperror.ErrAddressFetch(err)
		}
		charge.OnchainAddress = &address
	}

	if hasLightning {
		expiry := time.Duration(req.Time) * time.Minute
		hash, request, err := s.wallet.CreateInvoice(ctx, *req.LightningWallet, amount, req.Description, charge.ID, expiry)
		if err != nil {
			return nil, apperror.ErrInvoiceCreate(err)
		}
		charge.PaymentHash = &hash
		charge.PaymentRequest = &request
	}

	if err := s.repo.Create(ctx, charge); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	// Arm tracking only once the charge exists, so a feed event can always
	// resolve its charge.
	if charge.HasOnchain() {
		s.tracker.Start(*charge.OnchainAddress)
	}

	s.log.Info().
		Str("charge_id", charge.ID).
		Int64("amount", charge.Amount).
		Bool("onchain", charge.HasOnchain()).
		Bool("lightning", charge.HasLightning()).
		Msg("charge created")
	return charge, nil
}

// Get fetches a charge by id.
func (s *Charges) Get(ctx context.Context, id string) (*domain.Charge, error) {
	charge, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if charge == nil {
		return nil, apperror.ErrChargeNotFound()
	}
	return charge, nil
}

// List fetches all charges owned by user.
func (s *Charges) List(ctx context.Context, user string) ([]domain.Charge, error) {
	charges, err := s.repo.ListByUser(ctx, user)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return charges, nil
}

// Delete removes the charge and stops any active address tracking for it.
func (s *Charges) Delete(ctx context.Context, id string) error {
	charge, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if charge.HasOnchain() {
		s.tracker.Stop(*charge.OnchainAddress)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	return nil
}

func (s *Charges) currentSettings(ctx context.Context) domain.Settings {
	settings, err := s.settings.Get(ctx)
	if err != nil || settings == nil {
		return domain.DefaultSettings()
	}
	return *settings
}
