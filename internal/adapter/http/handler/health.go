package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lnbits/satspay/internal/core/ports"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler reports deep health: each registered dependency is pinged
// with a short deadline and the overall status degrades if any fails.
type HealthHandler struct {
	checkers []ports.HealthChecker
	log      zerolog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(checkers []ports.HealthChecker, log zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		checkers: checkers,
		log:      log.With().Str("component", "health_handler").Logger(),
	}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	status := "healthy"
	deps := make(map[string]string, len(h.checkers))
	for _, checker := range h.checkers {
		if err := checker.Ping(ctx); err != nil {
			h.log.Error().Err(err).Str("dependency", checker.Name()).Msg("health check failed")
			deps[checker.Name()] = "unhealthy"
			status = "degraded"
			continue
		}
		deps[checker.Name()] = "healthy"
	}

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":       status,
		"dependencies": deps,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}
