package service

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// Tracker implements ports.AddressTracker: the process-wide set of on-chain
// addresses awaiting payment. Every effective mutation enqueues the full
// current set (not a delta) onto the control channel, so a reconnecting feed
// never silently drops an address.
type Tracker struct {
	mu        sync.Mutex
	addresses map[string]struct{}
	control   chan []string
	log       zerolog.Logger
}

// NewTracker creates a Tracker. The control channel is buffered: the feed
// drains it, and a full buffer means an older snapshot is superseded anyway.
func NewTracker(log zerolog.Logger) *Tracker {
	return &Tracker{
		addresses: make(map[string]struct{}),
		control:   make(chan []string, 16),
		log:       log,
	}
}

// Control exposes the outbound control channel consumed by the feed writer.
// Each message is the full desired address set.
func (t *Tracker) Control() <-chan []string {
	return t.control
}

// Start begins tracking address. No-op if it is already tracked.
func (t *Tracker) Start(address string) {
	t.mu.Lock()
	if _, ok := t.addresses[address]; ok {
		t.mu.Unlock()
		return
	}
	t.addresses[address] = struct{}{}
	set := t.snapshotLocked()
	// Enqueue under the lock so concurrent mutations cannot deliver an
	// older full set after a newer one. enqueue never blocks.
	t.enqueue(set)
	t.mu.Unlock()

	t.log.Debug().Int("tracked", len(set)).Str("address", address).Msg("start tracking address")
}

// Stop stops tracking address. No-op if it is not tracked.
func (t *Tracker) Stop(address string) {
	t.mu.Lock()
	if _, ok := t.addresses[address]; !ok {
		t.mu.Unlock()
		return
	}
	delete(t.addresses, address)
	set := t.snapshotLocked()
	t.enqueue(set)
	t.mu.Unlock()

	t.log.Debug().Int("tracked", len(set)).Str("address", address).Msg("stop tracking address")
}

// Snapshot returns the current tracked set, sorted for deterministic control
// messages.
func (t *Tracker) Snapshot() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *Tracker) snapshotLocked() []string {
	set := make([]string, 0, len(t.addresses))
	for addr := range t.addresses {
		set = append(set, addr)
	}
	sort.Strings(set)
	return set
}

// enqueue pushes a snapshot without blocking. When the buffer is full the
// oldest queued snapshot is discarded: only the latest full set matters.
func (t *Tracker) enqueue(set []string) {
	for {
		select {
		case t.control <- set:
			return
		default:
			select {
			case <-t.control:
			default:
			}
		}
	}
}
