package service

import (
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_StartStop(t *testing.T) {
	t.Run("start enqueues the full tracked set", func(t *testing.T) {
		tr := NewTracker(zerolog.Nop())

		tr.Start("bc1qb")
		tr.Start("bc1qa")

		assert.Equal(t, []string{"bc1qa", "bc1qb"}, tr.Snapshot())

		require.Len(t, tr.Control(), 2)
		assert.Equal(t, []string{"bc1qb"}, <-tr.Control())
		assert.Equal(t, []string{"bc1qa", "bc1qb"}, <-tr.Control())
	})

	t.Run("double start is a no-op", func(t *testing.T) {
		tr := NewTracker(zerolog.Nop())

		tr.Start("bc1qa")
		tr.Start("bc1qa")

		assert.Equal(t, []string{"bc1qa"}, tr.Snapshot())
		assert.Len(t, tr.Control(), 1)
	})

	t.Run("stop removes the address and enqueues the shrunk set", func(t *testing.T) {
		tr := NewTracker(zerolog.Nop())

		tr.Start("bc1qa")
		tr.Start("bc1qb")
		tr.Stop("bc1qa")

		assert.Equal(t, []string{"bc1qb"}, tr.Snapshot())
		require.Len(t, tr.Control(), 3)
	})

	t.Run("stopping an untracked address is a no-op", func(t *testing.T) {
		tr := NewTracker(zerolog.Nop())

		tr.Stop("bc1qnever")

		assert.Empty(t, tr.Snapshot())
		assert.Len(t, tr.Control(), 0)
	})
}

func TestTracker_ControlBackpressure(t *testing.T) {
	// A feed that is not draining must never block tracking mutations; older
	// snapshots are superseded by newer ones.
	tr := NewTracker(zerolog.Nop())

	for i := 0; i < 100; i++ {
		tr.Start(string(rune('a' + i%26)))
		tr.Stop(string(rune('a' + i%26)))
	}

	assert.Empty(t, tr.Snapshot())

	var last []string
	for {
		select {
		case set := <-tr.Control():
			last = set
			continue
		default:
		}
		break
	}
	assert.Empty(t, last)
}

func TestTracker_ConcurrentMutationsKeepLatestSnapshotLast(t *testing.T) {
	// Mutations racing on different addresses must still deliver control
	// messages in mutation order, so the final message drained always
	// matches the final tracked set.
	tr := NewTracker(zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			addr := fmt.Sprintf("bc1q%02d", n)
			for j := 0; j < 200; j++ {
				tr.Start(addr)
				tr.Stop(addr)
			}
			tr.Start(addr)
		}(i)
	}
	wg.Wait()

	var last []string
	for {
		select {
		case set := <-tr.Control():
			last = set
			continue
		default:
		}
		break
	}
	assert.Equal(t, tr.Snapshot(), last)
	assert.Len(t, last, 8)
}
