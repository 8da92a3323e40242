package feed

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/lnbits/satspay/internal/core/domain"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	reconnectDelay = 5 * time.Second
	writeTimeout   = 10 * time.Second
	pingInterval   = 30 * time.Second
	// pongWait must outlast the ping interval or healthy connections get
	// torn down.
	pongWait = 60 * time.Second
)

// ControlSource is the tracker side the feed consumes: the current desired
// address set, and a channel of full-set updates.
type ControlSource interface {
	Snapshot() []string
	Control() <-chan []string
}

// trackMessage is the subscription frame understood by the upstream
// explorer. The address list is always the full desired set.
type trackMessage struct {
	TrackAddresses []string `json:"track-addresses"`
}

// addressTxs mirrors one entry of a multi-address-transactions frame.
type addressTxs struct {
	Confirmed []domain.Transaction `json:"confirmed"`
	Mempool   []domain.Transaction `json:"mempool"`
}

// feedFrame is an inbound message. Frames without address transactions
// (blocks, stats) are ignored.
type feedFrame struct {
	MultiAddressTransactions map[string]addressTxs `json:"multi-address-transactions"`
}

// Feed maintains a websocket subscription against a mempool.space style
// explorer and emits one AddressTxs event per address per frame. It owns
// reconnection: every (re)connect re-announces the tracker's full desired
// set, and every tracker change is pushed as a full set, so the upstream
// view can never drift from ours.
type Feed struct {
	mu      sync.Mutex
	baseURL string

	tracker ControlSource
	handler func(context.Context, domain.AddressTxs)
	log     zerolog.Logger

	// restart forces the current session down so the next dial picks up a
	// changed base URL.
	restart chan struct{}

	dial func(ctx context.Context, url string) (*websocket.Conn, error)
}

// New creates a Feed against baseURL (the explorer's HTTP root). handler
// receives every demultiplexed address event.
func New(baseURL string, tracker ControlSource, handler func(context.Context, domain.AddressTxs), log zerolog.Logger) *Feed {
	return &Feed{
		baseURL: baseURL,
		tracker: tracker,
		handler: handler,
		log:     log,
		restart: make(chan struct{}, 1),
		dial: func(ctx context.Context, url string) (*websocket.Conn, error) {
			conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
			return conn, err
		},
	}
}

// Restart points the feed at a new explorer and tears down the current
// session. The supervisor reconnects immediately.
func (f *Feed) Restart(baseURL string) {
	f.mu.Lock()
	f.baseURL = baseURL
	f.mu.Unlock()

	select {
	case f.restart <- struct{}{}:
	default:
	}
}

// wsURL derives the websocket endpoint from the explorer root.
func wsURL(base string) string {
	url := strings.TrimSuffix(base, "/")
	switch {
	case strings.HasPrefix(url, "https://"):
		url = "wss://" + strings.TrimPrefix(url, "https://")
	case strings.HasPrefix(url, "http://"):
		url = "ws://" + strings.TrimPrefix(url, "http://")
	}
	return url + "/api/v1/ws"
}

// Run connects and consumes until ctx is cancelled, reconnecting with a
// fixed delay. A session failure never propagates: the supervisor logs and
// dials again.
func (f *Feed) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		f.mu.Lock()
		url := wsURL(f.baseURL)
		f.mu.Unlock()

		conn, err := f.dial(ctx, url)
		if err != nil {
			f.log.Warn().Err(err).Str("url", url).Msg("feed dial failed, retrying")
			if !f.sleep(ctx) {
				return
			}
			continue
		}

		f.log.Info().Str("url", url).Msg("feed connected")
		err = f.session(ctx, conn)
		conn.Close()
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			f.log.Warn().Err(err).Msg("feed session ended, reconnecting")
		}
		if !f.sleep(ctx) {
			return
		}
	}
}

// sleep waits out the reconnect delay. Returns false when ctx is done. A
// pending restart request shortcuts the delay.
func (f *Feed) sleep(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-f.restart:
		return true
	case <-time.After(reconnectDelay):
		return true
	}
}

// session runs one connection: a writer pushing the desired address set and
// a reader demultiplexing frames. Either side failing ends the session.
func (f *Feed) session(ctx context.Context, conn *websocket.Conn) error {
	sessionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Re-announce the full desired set on every connect.
	if err := f.writeTrack(conn, f.tracker.Snapshot()); err != nil {
		return err
	}

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	writeErr := make(chan error, 1)
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-sessionCtx.Done():
				writeErr <- nil
				return
			case <-f.restart:
				// Force teardown; the supervisor redials with the new URL.
				writeErr <- nil
				conn.Close()
				return
			case set := <-f.tracker.Control():
				if err := f.writeTrack(conn, set); err != nil {
					writeErr <- err
					return
				}
			case <-ticker.C:
				conn.SetWriteDeadline(time.Now().Add(writeTimeout))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					writeErr <- err
					return
				}
			}
		}
	}()

	readErr := make(chan error, 1)
	go func() {
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				readErr <- err
				return
			}
			f.handleFrame(sessionCtx, data)
		}
	}()

	select {
	case err := <-writeErr:
		return err
	case err := <-readErr:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *Feed) writeTrack(conn *websocket.Conn, set []string) error {
	if set == nil {
		set = []string{}
	}
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(trackMessage{TrackAddresses: set})
}

// handleFrame demultiplexes one inbound frame into per-address events.
func (f *Feed) handleFrame(ctx context.Context, data []byte) {
	var frame feedFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		f.log.Warn().Err(err).Msg("skipping malformed feed frame")
		return
	}
	if len(frame.MultiAddressTransactions) == 0 {
		return
	}

	for address, txs := range frame.MultiAddressTransactions {
		f.handler(ctx, domain.AddressTxs{
			Address:   address,
			Confirmed: txs.Confirmed,
			Mempool:   txs.Mempool,
		})
	}
}
