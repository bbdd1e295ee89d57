package entities

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID            uuid.UUID
	RecipientID   string
	RecipientRole Role
	OrderID       *uuid.UUID
	Event         OrderEvent
	Message       string
	Read          bool
	CreatedAt     time.Time
}

type Recipient struct {
	ID   string
	Role Role
}
