//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notifier_test
package notifier

import (
	"context"
	"time"

	"fulfillment/internal/entities"

	"github.com/google/uuid"
)

type Repository interface {
	CreateBatch(ctx context.Context, notifications []entities.Notification) error
	ListByRecipient(ctx context.Context, recipient entities.Recipient, unreadOnly bool, limit uint64) ([]entities.Notification, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*entities.Notification, error)
}

// Publisher канал доставки уведомлений адресату в реальном времени.
type Publisher interface {
	Publish(ctx context.Context, notification entities.Notification) error
}

type (
	TemplateFn      func(transition entities.OrderTransition, recipient entities.Recipient) string
	TemplateFactory interface {
		GetTemplate(event entities.OrderEvent) (TemplateFn, error)
	}
)

type Clock interface {
	Now() time.Time
}
