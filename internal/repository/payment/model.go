package payment

import (
	"time"

	"github.com/google/uuid"
)

type PaymentDB struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	TotalAmount    string
	SellerShare    string
	CourierShare   string
	PlatformFee    string
	Status         string
	TransactionRef *string
	CreatedAt      time.Time
	ReleasedAt     *time.Time
}
