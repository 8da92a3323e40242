package domain

import (
	"time"
)

// Charge is a billable request for a fixed satoshi amount, payable via a
// Lightning invoice and/or an on-chain address. Settlement state (balance,
// pending, paid, facts) is mutated exclusively by the settlement service.
type Charge struct {
	ID               string     `json:"id"`
	User             string     `json:"user"`
	Name             *string    `json:"name,omitempty"`
	Description      string     `json:"description"`
	OnchainWallet    *string    `json:"onchainwallet,omitempty"`
	OnchainAddress   *string    `json:"onchainaddress,omitempty"`
	LightningWallet  *string    `json:"lnbitswallet,omitempty"`
	PaymentRequest   *string    `json:"payment_request,omitempty"`
	PaymentHash      *string    `json:"payment_hash,omitempty"`
	Webhook          *string    `json:"webhook,omitempty"`
	CompleteLink     *string    `json:"completelink,omitempty"`
	CompleteLinkText string     `json:"completelinktext"`
	CustomCSS        *string    `json:"custom_css,omitempty"`
	Time             int        `json:"time"`   // expiry, minutes
	Amount           int64      `json:"amount"` // satoshis
	Zeroconf         bool       `json:"zeroconf"`
	Fasttrack        bool       `json:"fasttrack"`
	Balance          int64      `json:"balance"` // confirmed satoshis credited
	Pending          int64      `json:"pending"` // unconfirmed satoshis observed
	Paid             bool       `json:"paid"`
	Timestamp        time.Time  `json:"timestamp"`
	Currency         *string    `json:"currency,omitempty"`
	CurrencyAmount   *float64   `json:"currency_amount,omitempty"`
	Facts            Facts      `json:"extra"`
}

// HasLightning reports whether the charge carries a Lightning payment target.
func (c *Charge) HasLightning() bool {
	return c.LightningWallet != nil && *c.LightningWallet != ""
}

// HasOnchain reports whether the charge carries an on-chain payment target.
func (c *Charge) HasOnchain() bool {
	return c.OnchainAddress != nil && *c.OnchainAddress != ""
}

// MarkPaid sets the paid flag. Paid is monotonic: once true it never reverts,
// so this is the only mutator.
func (c *Charge) MarkPaid() {
	c.Paid = true
}

// DisplayPaid is the public-facing paid flag. Fasttrack affects only this
// derived view: an unconfirmed deposit covering the amount shows as paid to
// the payer without touching the authoritative ledger state.
func (c *Charge) DisplayPaid() bool {
	if c.Paid {
		return true
	}
	return c.Fasttrack && c.Pending >= c.Amount
}

// Expired reports whether the charge's payment window has elapsed.
func (c *Charge) Expired(now time.Time) bool {
	return now.After(c.Timestamp.Add(time.Duration(c.Time) * time.Minute))
}

// PublicCharge is the payer-visible projection of a charge. CompleteLink is
// only revealed once the charge is paid.
type PublicCharge struct {
	ID               string  `json:"id"`
	Name             *string `json:"name,omitempty"`
	Description      string  `json:"description"`
	OnchainAddress   *string `json:"onchainaddress,omitempty"`
	PaymentRequest   *string `json:"payment_request,omitempty"`
	PaymentHash      *string `json:"payment_hash,omitempty"`
	Time             int     `json:"time"`
	Amount           int64   `json:"amount"`
	Zeroconf         bool    `json:"zeroconf"`
	Fasttrack        bool    `json:"fasttrack"`
	Balance          int64   `json:"balance"`
	Pending          int64   `json:"pending"`
	Timestamp        string  `json:"timestamp"`
	CustomCSS        *string `json:"custom_css,omitempty"`
	Paid             bool    `json:"paid"`
	CompleteLinkText string  `json:"completelinktext"`
	CompleteLink     *string `json:"completelink,omitempty"`
}

// Public returns the payer-visible projection of the charge.
func (c *Charge) Public() PublicCharge {
	p := PublicCharge{
		ID:               c.ID,
		Name:             c.Name,
		Description:      c.Description,
		OnchainAddress:   c.OnchainAddress,
		PaymentRequest:   c.PaymentRequest,
		PaymentHash:      c.PaymentHash,
		Time:             c.Time,
		Amount:           c.Amount,
		Zeroconf:         c.Zeroconf,
		Fasttrack:        c.Fasttrack,
		Balance:          c.Balance,
		Pending:          c.Pending,
		Timestamp:        c.Timestamp.UTC().Format(time.RFC3339),
		CustomCSS:        c.CustomCSS,
		Paid:             c.Paid,
		CompleteLinkText: c.CompleteLinkText,
	}
	if c.Paid {
		p.CompleteLink = c.CompleteLink
	}
	return p
}

// ChargeStatus is the payload pushed to live observers of a charge.
type ChargeStatus struct {
	Paid         bool    `json:"paid"`
	Balance      int64   `json:"balance"`
	Pending      int64   `json:"pending"`
	CompleteLink *string `json:"completelink"`
}

// Status builds the live-status payload. The paid flag here is the display
// value, so fasttrack charges report paid as soon as pending covers the
// amount.
func (c *Charge) Status() ChargeStatus {
	s := ChargeStatus{
		Paid:    c.DisplayPaid(),
		Balance: c.Balance,
		Pending: c.Pending,
	}
	if c.Paid {
		s.CompleteLink = c.CompleteLink
	}
	return s
}
