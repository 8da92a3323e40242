// Package dto contains request and response payloads for the HTTP API.
package dto

import (
	"github.com/lnbits/satspay/internal/core/domain"
	"github.com/lnbits/satspay/internal/core/ports"
)

// CreateChargeRequest is the payload for creating a charge. Amount is in
// satoshis; when currency is set, currency_amount is converted to satoshis
// at creation time and amount may be omitted.
type CreateChargeRequest struct {
	Name             *string  `json:"name" binding:"omitempty,max=255"`
	Description      string   `json:"description" binding:"omitempty,max=1024"`
	OnchainWallet    *string  `json:"onchainwallet" binding:"omitempty,max=255"`
	LightningWallet  *string  `json:"lnbitswallet" binding:"omitempty,max=255"`
	Webhook          *string  `json:"webhook" binding:"omitempty,url,max=2048"`
	CompleteLink     *string  `json:"completelink" binding:"omitempty,url,max=2048"`
	CompleteLinkText string   `json:"completelinktext" binding:"omitempty,max=255"`
	CustomCSS        *string  `json:"custom_css" binding:"omitempty,max=255"`
	Time             int      `json:"time" binding:"required,min=1,max=20160"`
	Amount           int64    `json:"amount" binding:"omitempty,min=0"`
	Currency         *string  `json:"currency" binding:"omitempty,len=3"`
	CurrencyAmount   *float64 `json:"currency_amount" binding:"omitempty,gt=0"`
	Zeroconf         bool     `json:"zeroconf"`
	Fasttrack        bool     `json:"fasttrack"`
}

// ToServiceRequest maps the payload onto the service-layer request for the
// given authenticated user.
func (r *CreateChargeRequest) ToServiceRequest(user string) ports.CreateChargeRequest {
	return ports.CreateChargeRequest{
		User:             user,
		Name:             r.Name,
		Description:      r.Description,
		OnchainWallet:    r.OnchainWallet,
		LightningWallet:  r.LightningWallet,
		Webhook:          r.Webhook,
		CompleteLink:     r.CompleteLink,
		CompleteLinkText: r.CompleteLinkText,
		CustomCSS:        r.CustomCSS,
		Time:             r.Time,
		Amount:           r.Amount,
		Currency:         r.Currency,
		CurrencyAmount:   r.CurrencyAmount,
		Zeroconf:         r.Zeroconf,
		Fasttrack:        r.Fasttrack,
	}
}

// ThemeRequest is the payload for creating or updating a display theme.
type ThemeRequest struct {
	Title     string `json:"title" binding:"required,max=255"`
	CustomCSS string `json:"custom_css" binding:"required"`
}

// SettingsRequest is the payload for updating the instance settings.
type SettingsRequest struct {
	WebhookMethod string `json:"webhook_method" binding:"required,oneof=GET POST"`
	MempoolURL    string `json:"mempool_url" binding:"required,url"`
	Network       string `json:"network" binding:"required,oneof=Mainnet Testnet"`
}

// ToDomain maps the payload onto the domain settings.
func (r *SettingsRequest) ToDomain() domain.Settings {
	return domain.Settings{
		WebhookMethod: domain.WebhookMethod(r.WebhookMethod),
		MempoolURL:    r.MempoolURL,
		Network:       r.Network,
	}
}
