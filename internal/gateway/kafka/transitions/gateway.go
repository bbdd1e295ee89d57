package transitions

import (
	"context"
	"fmt"

	"fulfillment/internal/entities"

	"github.com/IBM/sarama"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	headerEvent     = "event"
	headerMessageID = "message_id"
)

type Gateway struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Gateway {
	return &Gateway{
		producer: producer,
		topic:    topic,
	}
}

// PublishBatch отправляет пачку синхронно. Ключ сообщения id заказа.
func (g *Gateway) PublishBatch(ctx context.Context, messages []entities.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	batch := make([]*sarama.ProducerMessage, 0, len(messages))
	for _, m := range messages {
		batch = append(batch, &sarama.ProducerMessage{
			Topic: g.topic,
			Key:   sarama.StringEncoder(m.OrderID.String()),
			Value: sarama.ByteEncoder(m.Payload),
			Headers: []sarama.RecordHeader{
				{Key: []byte(headerEvent), Value: []byte(m.Event.String())},
				{Key: []byte(headerMessageID), Value: []byte(m.ID.String())},
			},
			Timestamp: m.CreatedAt,
		})
	}

	timer := prometheus.NewTimer(publishDuration)
	err := g.producer.SendMessages(batch)
	timer.ObserveDuration()

	if err != nil {
		publishedTotal.WithLabelValues("error").Add(float64(len(batch)))
		return fmt.Errorf("send %d messages to %s: %w", len(batch), g.topic, err)
	}

	publishedTotal.WithLabelValues("ok").Add(float64(len(batch)))
	return nil
}
