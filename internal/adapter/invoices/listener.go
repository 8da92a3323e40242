package invoices

import (
	"context"
	"encoding/json"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Payment is a charge-settling invoice event as handed to the consumer.
type Payment struct {
	ChargeID    string
	PaymentHash string
	AmountMsat  int64
}

// invoiceEvent is the wire shape published by the wallet backend. Only
// invoices tagged for a charge are ours; everything else on the channel is
// skipped.
type invoiceEvent struct {
	PaymentHash string `json:"payment_hash"`
	Amount      int64  `json:"amount"` // millisatoshis
	Extra       struct {
		Tag    string `json:"tag"`
		Charge string `json:"charge"`
	} `json:"extra"`
}

// Listener consumes invoice settlement events from a Redis pub/sub channel
// and hands charge-tagged ones to the handler. The handler must not block:
// reconciliation (and its webhook delivery) is scheduled elsewhere so one
// slow charge cannot stall the event stream.
type Listener struct {
	client  *goredis.Client
	channel string
	handler func(context.Context, Payment)
	log     zerolog.Logger
}

// NewListener creates a Listener on channel.
func NewListener(client *goredis.Client, channel string, handler func(context.Context, Payment), log zerolog.Logger) *Listener {
	return &Listener{
		client:  client,
		channel: channel,
		handler: handler,
		log:     log,
	}
}

// Run subscribes and consumes until ctx is cancelled. Malformed events are
// logged and skipped; the subscription survives them.
func (l *Listener) Run(ctx context.Context) error {
	sub := l.client.Subscribe(ctx, l.channel)
	defer sub.Close()

	// Force the subscription before reporting started.
	if _, err := sub.Receive(ctx); err != nil {
		return err
	}
	l.log.Info().Str("channel", l.channel).Msg("invoice listener started")

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			l.log.Info().Msg("invoice listener stopping")
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			l.handle(ctx, msg.Payload)
		}
	}
}

func (l *Listener) handle(ctx context.Context, payload string) {
	var e invoiceEvent
	if err := json.Unmarshal([]byte(payload), &e); err != nil {
		l.log.Warn().Err(err).Msg("skipping malformed invoice event")
		return
	}
	if e.Extra.Tag != "charge" || e.Extra.Charge == "" {
		return
	}

	l.log.Debug().
		Str("charge_id", e.Extra.Charge).
		Str("payment_hash", e.PaymentHash).
		Msg("invoice settled event received")
	l.handler(ctx, Payment{
		ChargeID:    e.Extra.Charge,
		PaymentHash: e.PaymentHash,
		AmountMsat:  e.Amount,
	})
}
