package handler

import (
	"github.com/lnbits/satspay/internal/adapter/http/dto"
	"github.com/lnbits/satspay/internal/core/domain"
	"github.com/lnbits/satspay/internal/core/ports"
	"github.com/lnbits/satspay/pkg/apperror"
	"github.com/lnbits/satspay/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Restarter repoints a network component at a new base URL. Saving settings
// moves the live feed and the explorer client to the new mempool endpoint
// without a process restart.
type Restarter interface {
	Restart(baseURL string)
}

// SettingsHandler handles the instance-wide settings endpoints.
type SettingsHandler struct {
	settings   ports.SettingsRepository
	restarters []Restarter
	log        zerolog.Logger
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(settings ports.SettingsRepository, restarters []Restarter, log zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{
		settings:   settings,
		restarters: restarters,
		log:        log.With().Str("component", "settings_handler").Logger(),
	}
}

// Get handles GET /api/v1/settings. Defaults are returned until an operator
// saves their own.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if settings == nil {
		defaults := domain.DefaultSettings()
		settings = &defaults
	}
	response.OK(c, settings)
}

// Update handles PUT /api/v1/settings.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	settings := req.ToDomain()
	if err := h.settings.Save(c.Request.Context(), settings); err != nil {
		response.Error(c, err)
		return
	}

	h.log.Info().Str("endpoint", settings.Endpoint()).Msg("settings updated, restarting feed")
	for _, r := range h.restarters {
		r.Restart(settings.Endpoint())
	}
	response.OK(c, settings)
}

// Delete handles DELETE /api/v1/settings. The instance falls back to the
// default settings.
func (h *SettingsHandler) Delete(c *gin.Context) {
	if err := h.settings.Delete(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	defaults := domain.DefaultSettings()
	for _, r := range h.restarters {
		r.Restart(defaults.Endpoint())
	}
	response.NoContent(c)
}
