package service

import (
	"sync"

	"github.com/lnbits/satspay/internal/core/domain"

	"github.com/rs/zerolog"
)

// observerBuffer bounds the per-observer status queue. A browser that stops
// reading gets dropped rather than blocking settlement.
const observerBuffer = 8

// Observer is one live connection watching a charge. The transport layer
// drains Updates and calls Unsubscribe on disconnect.
type Observer struct {
	chargeID string
	updates  chan domain.ChargeStatus
}

// Updates is the stream of status payloads for the watched charge.
func (o *Observer) Updates() <-chan domain.ChargeStatus {
	return o.updates
}

// Broadcaster implements ports.Broadcaster: the process-wide registry of live
// observers per charge. Entries are created on first subscribe and removed on
// disconnect; a charge with no observers broadcasts to nobody, silently.
type Broadcaster struct {
	mu        sync.Mutex
	observers map[string]map[*Observer]struct{}
	log       zerolog.Logger
}

// NewBroadcaster creates an empty registry.
func NewBroadcaster(log zerolog.Logger) *Broadcaster {
	return &Broadcaster{
		observers: make(map[string]map[*Observer]struct{}),
		log:       log,
	}
}

// Subscribe registers a new observer for chargeID.
func (b *Broadcaster) Subscribe(chargeID string) *Observer {
	obs := &Observer{
		chargeID: chargeID,
		updates:  make(chan domain.ChargeStatus, observerBuffer),
	}
	b.mu.Lock()
	set, ok := b.observers[chargeID]
	if !ok {
		set = make(map[*Observer]struct{})
		b.observers[chargeID] = set
	}
	set[obs] = struct{}{}
	b.mu.Unlock()
	return obs
}

// Unsubscribe removes an observer and closes its update stream. Safe to call
// for an observer that was already dropped.
func (b *Broadcaster) Unsubscribe(obs *Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.removeLocked(obs)
}

func (b *Broadcaster) removeLocked(obs *Observer) {
	set, ok := b.observers[obs.chargeID]
	if !ok {
		return
	}
	if _, ok := set[obs]; !ok {
		return
	}
	delete(set, obs)
	if len(set) == 0 {
		delete(b.observers, obs.chargeID)
	}
	close(obs.updates)
}

// Broadcast pushes the charge's status to every observer of that charge.
// An observer whose queue is full is dropped; delivery to the rest proceeds.
func (b *Broadcaster) Broadcast(charge *domain.Charge) {
	status := charge.Status()

	b.mu.Lock()
	defer b.mu.Unlock()

	set, ok := b.observers[charge.ID]
	if !ok {
		return
	}
	for obs := range set {
		select {
		case obs.updates <- status:
		default:
			b.log.Debug().Str("charge_id", charge.ID).Msg("dropping unresponsive live observer")
			b.removeLocked(obs)
		}
	}
}

// ObserverCount reports how many observers watch chargeID.
func (b *Broadcaster) ObserverCount(chargeID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.observers[chargeID])
}
