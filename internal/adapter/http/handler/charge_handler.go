package handler

import (
	"github.com/lnbits/satspay/internal/adapter/http/dto"
	"github.com/lnbits/satspay/internal/adapter/http/middleware"
	"github.com/lnbits/satspay/internal/core/ports"
	"github.com/lnbits/satspay/pkg/apperror"
	"github.com/lnbits/satspay/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ChargeHandler handles charge lifecycle endpoints.
type ChargeHandler struct {
	charges    ports.ChargeService
	settlement ports.SettlementService
	log        zerolog.Logger
}

// NewChargeHandler creates a new charge handler.
func NewChargeHandler(charges ports.ChargeService, settlement ports.SettlementService, log zerolog.Logger) *ChargeHandler {
	return &ChargeHandler{
		charges:    charges,
		settlement: settlement,
		log:        log.With().Str("component", "charge_handler").Logger(),
	}
}

// Create handles POST /api/v1/charge.
func (h *ChargeHandler) Create(c *gin.Context) {
	var req dto.CreateChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	charge, err := h.charges.Create(c.Request.Context(), req.ToServiceRequest(c.GetString(middleware.CtxUser)))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, charge)
}

// List handles GET /api/v1/charges.
func (h *ChargeHandler) List(c *gin.Context) {
	charges, err := h.charges.List(c.Request.Context(), c.GetString(middleware.CtxUser))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, charges)
}

// Get handles GET /api/v1/charge/:id.
func (h *ChargeHandler) Get(c *gin.Context) {
	charge, err := h.charges.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, charge)
}

// CheckBalance handles PUT /api/v1/charge/:id/balance. It re-derives the
// charge balance from the explorer and returns the refreshed charge.
func (h *ChargeHandler) CheckBalance(c *gin.Context) {
	charge, err := h.charges.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if charge.Paid {
		response.Error(c, apperror.ErrChargeAlreadyPaid())
		return
	}

	if err := h.settlement.CheckBalance(c.Request.Context(), charge); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, charge)
}

// FireWebhook handles GET /api/v1/charge/:id/webhook, the manual webhook
// re-fire. It delivers regardless of previous delivery state.
func (h *ChargeHandler) FireWebhook(c *gin.Context) {
	charge, err := h.charges.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if charge.Webhook == nil || *charge.Webhook == "" {
		response.Error(c, apperror.ErrChargeNoWebhook())
		return
	}

	result := h.settlement.FireWebhook(c.Request.Context(), charge)
	response.OK(c, result)
}

// Delete handles DELETE /api/v1/charge/:id.
func (h *ChargeHandler) Delete(c *gin.Context) {
	if err := h.charges.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
