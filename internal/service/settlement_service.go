package service

import (
	"context"
	"time"

	"github.com/lnbits/satspay/internal/core/domain"
	"github.com/lnbits/satspay/internal/core/ports"

	"github.com/rs/zerolog"
)

// Settlement implements ports.SettlementService: the reconciler that merges
// balance observations from the invoice stream and the upstream on-chain feed
// into charge state, and triggers webhook and live-status notifications.
//
// Paid is monotonic. The unpaid→paid transition is the only point where the
// webhook fires and address tracking stops; observations arriving after that
// may still refresh balances but never re-trigger either.
type Settlement struct {
	charges  ports.ChargeRepository
	settings ports.SettingsRepository
	tracker  ports.AddressTracker
	webhooks ports.WebhookNotifier
	live     ports.Broadcaster
	explorer ports.ExplorerClient
	wallet   ports.WalletClient
	log      zerolog.Logger
}

// NewSettlement creates the settlement service.
func NewSettlement(
	charges ports.ChargeRepository,
	settings ports.SettingsRepository,
	tracker ports.AddressTracker,
	webhooks ports.WebhookNotifier,
	live ports.Broadcaster,
	explorer ports.ExplorerClient,
	wallet ports.WalletClient,
	log zerolog.Logger,
) *Settlement {
	return &Settlement{
		charges:  charges,
		settings: settings,
		tracker:  tracker,
		webhooks: webhooks,
		live:     live,
		explorer: explorer,
		wallet:   wallet,
		log:      log,
	}
}

// OnInvoicePaid handles a Lightning settlement observation. A missing charge
// is an inconsistency (an invoice referencing a deleted charge): logged and
// dropped, never retried. A stale payment hash or an already-paid charge is a
// silent no-op.
func (s *Settlement) OnInvoicePaid(ctx context.Context, chargeID, paymentHash string, amountMsat int64) {
	charge, err := s.charges.GetByID(ctx, chargeID)
	if err != nil {
		s.log.Error().Err(err).Str("charge_id", chargeID).Msg("invoice paid: loading charge failed")
		return
	}
	if charge == nil {
		s.log.Error().Str("charge_id", chargeID).Msg("invoice paid for unknown charge")
		return
	}
	if charge.Paid {
		return
	}
	if !charge.HasLightning() || charge.PaymentHash == nil || *charge.PaymentHash != paymentHash {
		return
	}

	charge.Balance = amountMsat / 1000
	charge.MarkPaid()
	charge.Facts.Merge(domain.Facts{PaymentMethod: domain.PaymentMethodLightning})

	// Lightning won the race: nothing more can arrive for the on-chain
	// address that matters.
	if charge.HasOnchain() {
		s.tracker.Stop(*charge.OnchainAddress)
	}

	s.live.Broadcast(charge)

	if charge.Webhook != nil && *charge.Webhook != "" {
		result := s.webhooks.Notify(ctx, charge, s.webhookMethod(ctx))
		charge.Facts.Merge(domain.Facts{Webhook: &result})
	}

	s.persist(ctx, charge)
	s.log.Info().Str("charge_id", charge.ID).Int64("balance", charge.Balance).Msg("charge settled via lightning")
}

// OnAddressTxs handles one demultiplexed upstream feed event. A missing
// charge for a tracked address is an inconsistency: logged and dropped.
func (s *Settlement) OnAddressTxs(ctx context.Context, batch domain.AddressTxs) {
	charge, err := s.charges.GetByOnchainAddress(ctx, batch.Address)
	if err != nil {
		s.log.Error().Err(err).Str("address", batch.Address).Msg("address txs: loading charge failed")
		return
	}
	if charge == nil {
		s.log.Error().Str("address", batch.Address).Msg("address txs for unknown charge")
		return
	}

	confirmed := domain.SumOutputs(batch.Address, batch.Confirmed)
	unconfirmed := domain.SumOutputs(batch.Address, batch.Mempool)
	s.applyOnchain(ctx, charge, confirmed, unconfirmed, domain.TxIDs(batch.Confirmed, batch.Mempool))
}

// applyOnchain merges an on-chain balance observation into the charge,
// fires notifications on the paid transition and persists the result.
func (s *Settlement) applyOnchain(ctx context.Context, charge *domain.Charge, confirmed, unconfirmed int64, txids []string) {
	wasPaid := charge.Paid

	if charge.Zeroconf {
		charge.Balance = confirmed + unconfirmed
	} else {
		charge.Balance = confirmed
	}
	charge.Pending = unconfirmed
	if txids != nil {
		charge.Facts.Merge(domain.Facts{TxIDs: txids})
	}

	// Settlement never depends on pending alone; fasttrack only adjusts the
	// display value broadcast below.
	if charge.Balance >= charge.Amount {
		charge.MarkPaid()
	}

	s.live.Broadcast(charge)

	if charge.Paid && !wasPaid {
		charge.Facts.Merge(domain.Facts{PaymentMethod: domain.PaymentMethodOnchain})
		if charge.HasOnchain() {
			s.tracker.Stop(*charge.OnchainAddress)
		}
		if charge.Webhook != nil && *charge.Webhook != "" {
			result := s.webhooks.Notify(ctx, charge, s.webhookMethod(ctx))
			charge.Facts.Merge(domain.Facts{Webhook: &result})
		}
		s.log.Info().
			Str("charge_id", charge.ID).
			Int64("balance", charge.Balance).
			Int64("pending", charge.Pending).
			Msg("charge settled onchain")
	}

	s.persist(ctx, charge)
}

// CheckBalance re-derives the charge's balance synchronously: from the
// explorer for the on-chain target, from the wallet backend for the invoice.
// Used for startup reconciliation and the manual balance-check endpoint.
func (s *Settlement) CheckBalance(ctx context.Context, charge *domain.Charge) error {
	if charge.Paid {
		return nil
	}

	if charge.HasOnchain() {
		balance, err := s.explorer.AddressBalance(ctx, *charge.OnchainAddress)
		if err != nil {
			return err
		}
		s.applyOnchain(ctx, charge, balance.Confirmed, balance.Unconfirmed, balance.TxIDs)
	}

	if !charge.Paid && charge.HasLightning() && charge.PaymentHash != nil {
		paid, amountMsat, err := s.wallet.PaymentStatus(ctx, *charge.LightningWallet, *charge.PaymentHash)
		if err != nil {
			return err
		}
		if paid {
			s.OnInvoicePaid(ctx, charge.ID, *charge.PaymentHash, amountMsat)
		}
	}
	return nil
}

// ReconcilePending closes the gap between process restarts and the live
// feeds: every unpaid, unexpired charge gets its balance re-derived and, if
// still unpaid, its address tracking re-armed. Fetch errors are logged and
// the charge stays due for the next live update.
func (s *Settlement) ReconcilePending(ctx context.Context) {
	pending, err := s.charges.ListPending(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("startup reconciliation: listing pending charges failed")
		return
	}

	now := time.Now()
	rearmed := 0
	for i := range pending {
		charge := &pending[i]
		if charge.Expired(now) {
			continue
		}
		if err := s.CheckBalance(ctx, charge); err != nil {
			s.log.Warn().Err(err).Str("charge_id", charge.ID).Msg("startup reconciliation: balance check failed")
		}
		if !charge.Paid && charge.HasOnchain() {
			s.tracker.Start(*charge.OnchainAddress)
			rearmed++
		}
	}
	s.log.Info().Int("pending", len(pending)).Int("rearmed", rearmed).Msg("startup reconciliation complete")
}

// FireWebhook delivers the webhook on operator request, merges the result
// into the charge facts and persists. Unlike the transition-driven delivery
// this fires regardless of paid state.
func (s *Settlement) FireWebhook(ctx context.Context, charge *domain.Charge) domain.WebhookResult {
	result := s.webhooks.Notify(ctx, charge, s.webhookMethod(ctx))
	charge.Facts.Merge(domain.Facts{Webhook: &result})
	s.persist(ctx, charge)
	return result
}

func (s *Settlement) webhookMethod(ctx context.Context) domain.WebhookMethod {
	settings, err := s.settings.Get(ctx)
	if err != nil || settings == nil {
		return domain.DefaultSettings().WebhookMethod
	}
	return settings.WebhookMethod
}

// persist writes the charge back. Storage failures are logged, not
// propagated: no settlement event may take the engine down, and the next
// observation re-derives the same state.
func (s *Settlement) persist(ctx context.Context, charge *domain.Charge) {
	if err := s.charges.Update(ctx, charge); err != nil {
		s.log.Error().Err(err).Str("charge_id", charge.ID).Msg("persisting charge failed")
	}
}
