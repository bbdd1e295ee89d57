package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"fulfillment/internal/entities"
)

type Gateway struct {
	client client
	prefix string
}

func New(client client, prefix string) *Gateway {
	return &Gateway{
		client: client,
		prefix: prefix,
	}
}

// Channel канал адресата: <prefix>:<role>:<id>.
func (g *Gateway) Channel(recipient entities.Recipient) string {
	return fmt.Sprintf("%s:%s:%s", g.prefix, recipient.Role, recipient.ID)
}

// Publish отдает уведомление подписчикам канала адресата. Подписчиков может не быть,
// Redis в этом случае сообщение не хранит.
func (g *Gateway) Publish(ctx context.Context, notification entities.Notification) error {
	payload, err := json.Marshal(fromDomain(notification))
	if err != nil {
		return fmt.Errorf("marshal notification %s: %w", notification.ID, err)
	}

	channel := g.Channel(entities.Recipient{ID: notification.RecipientID, Role: notification.RecipientRole})
	if err := g.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", channel, err)
	}
	return nil
}
