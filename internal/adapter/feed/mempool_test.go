package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lnbits/satspay/internal/core/domain"
	"github.com/lnbits/satspay/internal/service"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var upgrader = websocket.Upgrader{}

// wsServer accepts one feed connection at a time and records the track
// messages it receives.
type wsServer struct {
	*httptest.Server

	mu     sync.Mutex
	tracks [][]string
	conns  chan *websocket.Conn
}

func newWSServer(t *testing.T) *wsServer {
	s := &wsServer{conns: make(chan *websocket.Conn, 4)}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/ws" {
			http.NotFound(w, r)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		s.conns <- conn
		for {
			var msg trackMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			s.mu.Lock()
			s.tracks = append(s.tracks, msg.TrackAddresses)
			s.mu.Unlock()
		}
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *wsServer) trackMessages() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]string, len(s.tracks))
	copy(out, s.tracks)
	return out
}

func TestWSURL(t *testing.T) {
	assert.Equal(t, "wss://mempool.space/api/v1/ws", wsURL("https://mempool.space"))
	assert.Equal(t, "ws://localhost:8999/api/v1/ws", wsURL("http://localhost:8999/"))
}

func TestFeed_AnnouncesTrackedSetOnConnect(t *testing.T) {
	server := newWSServer(t)
	tracker := service.NewTracker(zerolog.Nop())
	tracker.Start("bc1qa")
	for len(tracker.Control()) > 0 {
		<-tracker.Control()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := New(server.URL, tracker, func(context.Context, domain.AddressTxs) {}, zerolog.Nop())
	go f.Run(ctx)

	require.Eventually(t, func() bool {
		return len(server.trackMessages()) >= 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"bc1qa"}, server.trackMessages()[0])

	// A tracker change pushes the new full set over the live connection.
	tracker.Start("bc1qb")
	require.Eventually(t, func() bool {
		msgs := server.trackMessages()
		return len(msgs) >= 2 && len(msgs[len(msgs)-1]) == 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestFeed_DemultiplexesFrames(t *testing.T) {
	server := newWSServer(t)
	tracker := service.NewTracker(zerolog.Nop())

	var mu sync.Mutex
	var events []domain.AddressTxs
	handler := func(_ context.Context, batch domain.AddressTxs) {
		mu.Lock()
		events = append(events, batch)
		mu.Unlock()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := New(server.URL, tracker, handler, zerolog.Nop())
	go f.Run(ctx)

	conn := <-server.conns
	frame := `{"multi-address-transactions":{"bc1qa":{"confirmed":[{"txid":"tx-1","vout":[{"scriptpubkey_address":"bc1qa","value":500}]}],"mempool":[]}}}`
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(frame)))
	// Frames without address data are ignored.
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"block":{"height":1}}`)))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(events) == 1
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "bc1qa", events[0].Address)
	require.Len(t, events[0].Confirmed, 1)
	assert.Equal(t, "tx-1", events[0].Confirmed[0].TxID)
	assert.Equal(t, int64(500), domain.SumOutputs("bc1qa", events[0].Confirmed))
}

func TestFeed_ReconnectsAndReannounces(t *testing.T) {
	server := newWSServer(t)
	tracker := service.NewTracker(zerolog.Nop())
	tracker.Start("bc1qa")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := New(server.URL, tracker, func(context.Context, domain.AddressTxs) {}, zerolog.Nop())
	go f.Run(ctx)

	first := <-server.conns
	require.Eventually(t, func() bool {
		return len(server.trackMessages()) >= 1
	}, 2*time.Second, 10*time.Millisecond)

	// Kill the connection; Restart shortcuts the reconnect delay.
	first.Close()
	f.Restart(server.URL)

	select {
	case <-server.conns:
	case <-time.After(10 * time.Second):
		t.Fatal("feed did not reconnect")
	}
	require.Eventually(t, func() bool {
		msgs := server.trackMessages()
		return len(msgs) >= 2 && assert.ObjectsAreEqual([]string{"bc1qa"}, msgs[len(msgs)-1])
	}, 2*time.Second, 10*time.Millisecond)
}

func TestFeed_StopsOnCancel(t *testing.T) {
	server := newWSServer(t)
	tracker := service.NewTracker(zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())

	f := New(server.URL, tracker, func(context.Context, domain.AddressTxs) {}, zerolog.Nop())
	done := make(chan struct{})
	go func() {
		f.Run(ctx)
		close(done)
	}()

	<-server.conns
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("feed did not stop on cancellation")
	}
}

func TestFeed_RejectsBadURLGracefully(t *testing.T) {
	tracker := service.NewTracker(zerolog.Nop())
	f := New("http://127.0.0.1:1", tracker, func(context.Context, domain.AddressTxs) {}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		f.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("feed did not give up on cancellation")
	}
}

func TestFeed_RestartSwitchesEndpoint(t *testing.T) {
	first := newWSServer(t)
	second := newWSServer(t)
	tracker := service.NewTracker(zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := New(first.URL, tracker, func(context.Context, domain.AddressTxs) {}, zerolog.Nop())
	go f.Run(ctx)

	<-first.conns
	f.Restart(second.URL)

	select {
	case <-second.conns:
	case <-time.After(10 * time.Second):
		t.Fatal("feed did not reconnect to the new endpoint")
	}
	assert.True(t, strings.HasPrefix(second.URL, "http://"))
}
