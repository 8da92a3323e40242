package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster_Fanout(t *testing.T) {
	b := NewBroadcaster(zerolog.Nop())
	charge := testCharge()
	charge.Balance = 250
	charge.Pending = 500

	first := b.Subscribe(charge.ID)
	second := b.Subscribe(charge.ID)
	other := b.Subscribe("some-other-charge")

	b.Broadcast(charge)

	for _, obs := range []*Observer{first, second} {
		select {
		case status := <-obs.Updates():
			assert.Equal(t, int64(250), status.Balance)
			assert.Equal(t, int64(500), status.Pending)
			assert.False(t, status.Paid)
		default:
			t.Fatal("observer received no update")
		}
	}
	assert.Len(t, other.Updates(), 0)
}

func TestBroadcaster_NoObservers(t *testing.T) {
	b := NewBroadcaster(zerolog.Nop())

	// Must not block or panic.
	b.Broadcast(testCharge())
	assert.Equal(t, 0, b.ObserverCount("charge-1"))
}

func TestBroadcaster_Unsubscribe(t *testing.T) {
	b := NewBroadcaster(zerolog.Nop())
	charge := testCharge()

	obs := b.Subscribe(charge.ID)
	b.Unsubscribe(obs)
	b.Unsubscribe(obs) // idempotent

	_, open := <-obs.Updates()
	assert.False(t, open)
	assert.Equal(t, 0, b.ObserverCount(charge.ID))

	b.Broadcast(charge)
}

func TestBroadcaster_DropsUnresponsiveObserver(t *testing.T) {
	b := NewBroadcaster(zerolog.Nop())
	charge := testCharge()

	slow := b.Subscribe(charge.ID)
	healthy := b.Subscribe(charge.ID)

	// Fill the slow observer's queue without draining it, keeping the
	// healthy one drained.
	for i := 0; i <= observerBuffer; i++ {
		b.Broadcast(charge)
		for len(healthy.Updates()) > 0 {
			<-healthy.Updates()
		}
	}

	assert.Equal(t, 1, b.ObserverCount(charge.ID))

	b.Broadcast(charge)
	require.Len(t, healthy.Updates(), 1)

	// The dropped observer's stream is closed after its buffer drains.
	for i := 0; i < observerBuffer; i++ {
		<-slow.Updates()
	}
	_, open := <-slow.Updates()
	assert.False(t, open)
}
