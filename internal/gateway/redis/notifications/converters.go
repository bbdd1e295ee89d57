package notifications

import (
	"time"

	"fulfillment/internal/entities"

	"github.com/google/uuid"
)

type message struct {
	ID            uuid.UUID  `json:"id"`
	RecipientID   string     `json:"recipient_id"`
	RecipientRole string     `json:"recipient_role"`
	OrderID       *uuid.UUID `json:"order_id,omitempty"`
	Event         string     `json:"event"`
	Message       string     `json:"message"`
	CreatedAt     time.Time  `json:"created_at"`
}

func fromDomain(n entities.Notification) message {
	return message{
		ID:            n.ID,
		RecipientID:   n.RecipientID,
		RecipientRole: n.RecipientRole.String(),
		OrderID:       n.OrderID,
		Event:         n.Event.String(),
		Message:       n.Message,
		CreatedAt:     n.CreatedAt,
	}
}
