package rest

import (
	"fulfillment/internal/entities"
	"fulfillment/internal/generated/dto"
)

type Payment = dto.Payment

func PaymentFromDomain(p *entities.Payment) Payment {
	return Payment{
		ID:             p.ID,
		OrderID:        p.OrderID,
		TotalAmount:    p.TotalAmount,
		SellerShare:    p.Split.SellerShare,
		CourierShare:   p.Split.CourierShare,
		PlatformFee:    p.Split.PlatformFee,
		Status:         p.Status.String(),
		TransactionRef: p.TransactionRef,
		CreatedAt:      p.CreatedAt,
		ReleasedAt:     p.ReleasedAt,
	}
}
