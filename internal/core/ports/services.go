package ports

import (
	"context"
	"time"

	"github.com/lnbits/satspay/internal/core/domain"
)

// AddressTracker maintains the set of on-chain addresses currently awaiting
// payment. Start and Stop are idempotent; every effective mutation enqueues
// the full current set as a control message for the upstream feed.
type AddressTracker interface {
	Start(address string)
	Stop(address string)
	// Snapshot returns the current tracked set, used by the feed to push the
	// desired state on every (re)connect.
	Snapshot() []string
}

// WebhookNotifier delivers a one-shot callback describing a charge's public
// state. It never returns an error: all failures are captured in the result.
type WebhookNotifier interface {
	Notify(ctx context.Context, charge *domain.Charge, method domain.WebhookMethod) domain.WebhookResult
}

// Broadcaster pushes charge status to every connected observer of that
// charge. Broadcasting to a charge with no observers is a no-op.
type Broadcaster interface {
	Broadcast(charge *domain.Charge)
}

// ExplorerClient fetches funded totals for an address from the block
// explorer, used at startup reconciliation and for manual balance checks.
type ExplorerClient interface {
	AddressBalance(ctx context.Context, address string) (*domain.OnchainBalance, error)
}

// WalletClient provisions payment targets from the wallet collaborator and
// answers payment status queries.
type WalletClient interface {
	// CreateInvoice creates a Lightning invoice tagged with the charge id so
	// the settlement event can be routed back.
	CreateInvoice(ctx context.Context, wallet string, amountSat int64, memo string, chargeID string, expiry time.Duration) (paymentHash, paymentRequest string, err error)
	// NewAddress derives a fresh receive address from a watch-only wallet.
	NewAddress(ctx context.Context, wallet string) (string, error)
	// Network reports which network the wallet collaborator operates on.
	Network(ctx context.Context) (string, error)
	// PaymentStatus reports whether an invoice has settled and for how much.
	PaymentStatus(ctx context.Context, wallet, paymentHash string) (paid bool, amountMsat int64, err error)
}

// RateService converts fiat amounts to satoshis.
type RateService interface {
	FiatAsSats(ctx context.Context, amount float64, currency string) (int64, error)
}

// RateCache caches fiat exchange rates between lookups (fast path; a miss
// falls through to the exchange API).
type RateCache interface {
	// GetRate returns the cached BTC price in currency, or ok=false on miss.
	GetRate(ctx context.Context, currency string) (rate float64, ok bool, err error)
	SetRate(ctx context.Context, currency string, rate float64, ttl time.Duration) error
}

// SettlementService is the charge reconciler: both settlement sources feed
// balance observations into it, and it alone mutates charge settlement state.
type SettlementService interface {
	// OnInvoicePaid handles a Lightning settlement observation.
	OnInvoicePaid(ctx context.Context, chargeID, paymentHash string, amountMsat int64)
	// OnAddressTxs handles one demultiplexed upstream feed event.
	OnAddressTxs(ctx context.Context, batch domain.AddressTxs)
	// CheckBalance re-derives the charge's balance from the explorer and
	// applies the result. The charge is mutated and persisted on change.
	CheckBalance(ctx context.Context, charge *domain.Charge) error
	// ReconcilePending re-derives balances for all unpaid, unexpired charges
	// and re-arms address tracking. Run once at startup.
	ReconcilePending(ctx context.Context)
	// FireWebhook delivers the webhook for a charge on operator request and
	// merges the result into the charge facts.
	FireWebhook(ctx context.Context, charge *domain.Charge) domain.WebhookResult
}

// ChargeService is the charge lifecycle surface used by the HTTP layer.
type ChargeService interface {
	Create(ctx context.Context, req CreateChargeRequest) (*domain.Charge, error)
	Get(ctx context.Context, id string) (*domain.Charge, error)
	List(ctx context.Context, user string) ([]domain.Charge, error)
	// Delete removes the charge and stops any active address tracking for it.
	Delete(ctx context.Context, id string) error
}

// CreateChargeRequest holds validated input for charge creation.
type CreateChargeRequest struct {
	User             string
	Name             *string
	Description      string
	OnchainWallet    *string
	LightningWallet  *string
	Webhook          *string
	CompleteLink     *string
	CompleteLinkText string
	CustomCSS        *string
	Time             int
	Amount           int64
	Currency         *string
	CurrencyAmount   *float64
	Zeroconf         bool
	Fasttrack        bool
}

// HealthChecker checks external dependency health.
type HealthChecker interface {
	// Ping verifies connectivity. Returns nil if healthy.
	Ping(ctx context.Context) error
	// Name returns the dependency name (e.g., "postgresql", "redis").
	Name() string
}
