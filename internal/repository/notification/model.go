package notification

import (
	"time"

	"github.com/google/uuid"
)

type NotificationDB struct {
	ID            uuid.UUID
	RecipientID   string
	RecipientRole string
	OrderID       *uuid.UUID
	Event         string
	Message       string
	Read          bool
	CreatedAt     time.Time
}
