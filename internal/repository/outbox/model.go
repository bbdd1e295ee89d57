package outbox

import (
	"time"

	"github.com/google/uuid"
)

type MessageDB struct {
	ID        uuid.UUID `db:"id"`
	OrderID   uuid.UUID `db:"order_id"`
	Event     string    `db:"event"`
	Payload   string    `db:"payload"`
	CreatedAt time.Time `db:"created_at"`
}
