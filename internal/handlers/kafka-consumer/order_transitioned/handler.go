package order_transitioned

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fulfillment/internal/dto/events"
	"fulfillment/internal/service/notifier"
	"fulfillment/pkg/logger"

	"github.com/IBM/sarama"
)

type Handler struct {
	notifier                 Notifier
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notifier Notifier, timeout time.Duration) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "order.transitioned"),
	)

	return &Handler{
		notifier:                 notifier,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.transitioned: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("order.transitioned: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать без коммита сообщения.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event events.OrderTransitioned
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.transitioned handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	transition, err := event.ToDomain()
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.transitioned handler received incomplete event")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("transition", transition.ID.String()),
		logger.NewField("order", transition.Order.ID.String()),
		logger.NewField("event", transition.Event.String()),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Debug("order.transitioned processing")

	notifications, err := h.notifier.Fanout(ctx, transition)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.transitioned handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, notifier.ErrUndefinedEvent):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.transitioned handler unknown event kind")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("order.transitioned handler failed to fan out")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("notifications", len(notifications)),
	).Info("order.transitioned: processed")

	sess.MarkMessage(message, "")
	return false
}
