package entities

import (
	"time"

	"github.com/google/uuid"
)

type OrderEvent string

const (
	EventOrderCreated      OrderEvent = "created"
	EventCourierAssigned   OrderEvent = "assigned"
	EventPickupConfirmed   OrderEvent = "in_transit"
	EventDeliveryConfirmed OrderEvent = "delivered"
	EventOrderFailed       OrderEvent = "failed"
)

func (e OrderEvent) String() string {
	return string(e)
}

// OrderTransition примененный переход, пишется в outbox в той же транзакции что и заказ.
type OrderTransition struct {
	ID    uuid.UUID
	Event OrderEvent
	// nil для создания заказа
	From *OrderStatus
	To   OrderStatus
	// снимок заказа после перехода
	Order Order
	// заполнен при переназначении курьера
	PreviousCourierID *string
	OccurredAt        time.Time
}

// OutboxMessage неопубликованное событие из outbox.
type OutboxMessage struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	Event     OrderEvent
	Payload   []byte
	CreatedAt time.Time
}
