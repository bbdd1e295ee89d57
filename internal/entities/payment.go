package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentHeld     PaymentStatus = "held"
	PaymentReleased PaymentStatus = "released"
	PaymentFailed   PaymentStatus = "failed"
)

func (s PaymentStatus) String() string {
	return string(s)
}

type PaymentSplit struct {
	SellerShare  decimal.Decimal
	CourierShare decimal.Decimal
	PlatformFee  decimal.Decimal
}

func (s PaymentSplit) Sum() decimal.Decimal {
	return s.SellerShare.Add(s.CourierShare).Add(s.PlatformFee)
}

type Payment struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	TotalAmount    decimal.Decimal
	Split          PaymentSplit
	Status         PaymentStatus
	TransactionRef *string
	CreatedAt      time.Time
	ReleasedAt     *time.Time
}
