package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/lnbits/satspay/internal/adapter/http/dto"
	"github.com/lnbits/satspay/internal/adapter/http/middleware"
	"github.com/lnbits/satspay/internal/core/domain"
	"github.com/lnbits/satspay/internal/core/ports"
	"github.com/lnbits/satspay/pkg/apperror"
	"github.com/lnbits/satspay/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ThemeHandler handles display theme endpoints. The stylesheet itself is
// served publicly so charge display pages can link it without a key.
type ThemeHandler struct {
	themes ports.ThemeRepository
	log    zerolog.Logger
}

// NewThemeHandler creates a new theme handler.
func NewThemeHandler(themes ports.ThemeRepository, log zerolog.Logger) *ThemeHandler {
	return &ThemeHandler{
		themes: themes,
		log:    log.With().Str("component", "theme_handler").Logger(),
	}
}

// Create handles POST /api/v1/themes.
func (h *ThemeHandler) Create(c *gin.Context) {
	var req dto.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	theme := &domain.Theme{
		CSSID:     uuid.NewString(),
		Title:     req.Title,
		CustomCSS: req.CustomCSS,
		User:      c.GetString(middleware.CtxUser),
	}
	if err := h.themes.Create(c.Request.Context(), theme); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, theme)
}

// Update handles POST /api/v1/themes/:css_id.
func (h *ThemeHandler) Update(c *gin.Context) {
	var req dto.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	theme, err := h.themes.GetByID(c.Request.Context(), c.Param("css_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if theme == nil {
		response.Error(c, apperror.ErrThemeNotFound())
		return
	}

	theme.Title = req.Title
	theme.CustomCSS = req.CustomCSS
	if err := h.themes.Update(c.Request.Context(), theme); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, theme)
}

// List handles GET /api/v1/themes.
func (h *ThemeHandler) List(c *gin.Context) {
	themes, err := h.themes.ListByUser(c.Request.Context(), c.GetString(middleware.CtxUser))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, themes)
}

// Delete handles DELETE /api/v1/themes/:css_id.
func (h *ThemeHandler) Delete(c *gin.Context) {
	if err := h.themes.Delete(c.Request.Context(), c.Param("css_id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ServeCSS handles GET /css/:css_id. It returns the raw stylesheet so a
// display page can reference it directly from a link tag.
func (h *ThemeHandler) ServeCSS(c *gin.Context) {
	theme, err := h.themes.GetByID(c.Request.Context(), c.Param("css_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if theme == nil {
		response.Error(c, apperror.ErrThemeNotFound())
		return
	}
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(theme.CustomCSS))
}
