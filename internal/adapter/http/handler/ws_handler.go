package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lnbits/satspay/internal/core/domain"
	"github.com/lnbits/satspay/internal/core/ports"
	"github.com/lnbits/satspay/internal/service"
	"github.com/lnbits/satspay/pkg/response"
)

const (
	wsWriteTimeout = 10 * time.Second
	wsPingInterval = 30 * time.Second
	wsPongWait     = 60 * time.Second
)

// WSHandler serves the public live charge status websocket. Each connection
// observes a single charge and receives a status payload on every settlement
// change, starting with the current state.
type WSHandler struct {
	charges     ports.ChargeService
	broadcaster *service.Broadcaster
	upgrader    websocket.Upgrader
	log         zerolog.Logger
}

// NewWSHandler creates a new websocket handler.
func NewWSHandler(charges ports.ChargeService, broadcaster *service.Broadcaster, log zerolog.Logger) *WSHandler {
	return &WSHandler{
		charges:     charges,
		broadcaster: broadcaster,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The payload carries no secrets beyond what the charge id
			// already grants, so cross-origin display pages are allowed.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		log: log.With().Str("component", "ws_handler").Logger(),
	}
}

// Serve handles GET /api/v1/ws/:charge_id.
func (h *WSHandler) Serve(c *gin.Context) {
	chargeID := c.Param("charge_id")
	charge, err := h.charges.Get(c.Request.Context(), chargeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Upgrade writes its own error response on failure.
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Str("charge_id", chargeID).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	obs := h.broadcaster.Subscribe(chargeID)
	defer h.broadcaster.Unsubscribe(obs)

	// The client sends nothing meaningful; the read loop only notices
	// disconnects and keeps the pong deadline fresh.
	done := make(chan struct{})
	conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := h.writeStatus(conn, charge.Status()); err != nil {
		return
	}

	ping := time.NewTicker(wsPingInterval)
	defer ping.Stop()
	for {
		select {
		case <-done:
			return
		case status, ok := <-obs.Updates():
			if !ok {
				// Dropped by the broadcaster for falling behind.
				return
			}
			if err := h.writeStatus(conn, status); err != nil {
				return
			}
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *WSHandler) writeStatus(conn *websocket.Conn, status domain.ChargeStatus) error {
	conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return conn.WriteJSON(status)
}
