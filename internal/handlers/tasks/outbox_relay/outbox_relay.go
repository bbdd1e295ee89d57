package outbox_relay

import (
	"context"
	"time"

	"fulfillment/pkg/logger"
)

type Relay interface {
	Relay(ctx context.Context) (int, error)
}

// OutboxRelay переносит закоммиченные переходы заказов из outbox в Kafka.
type OutboxRelay struct {
	log      logger.Logger
	relay    Relay
	interval time.Duration
}

func NewOutboxRelay(log logger.Logger, relay Relay, interval time.Duration) *OutboxRelay {
	return &OutboxRelay{
		log:      log,
		relay:    relay,
		interval: interval,
	}
}

func (o *OutboxRelay) TTL() time.Duration {
	return o.interval
}

// Do выгребает outbox пачками, пока пачка приходит полной или не истек интервал.
func (o *OutboxRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	total := 0
	for {
		relayed, err := o.relay.Relay(ctxWithTimeout)
		total += relayed
		if err != nil {
			return err
		}
		if relayed == 0 || ctxWithTimeout.Err() != nil {
			break
		}
	}

	if total > 0 {
		o.log.With(
			logger.NewField("relayed", total),
		).Info("outbox relay")
	}
	return nil
}

func (o *OutboxRelay) Info() string {
	return "outbox relay"
}
