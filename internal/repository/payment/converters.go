package payment

import (
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/internal/repository"
)

func ToDomain(p *PaymentDB) (*entities.Payment, error) {
	if p == nil {
		return nil, nil
	}

	total, err := repository.MoneyFromDB(p.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("payment %s total: %w", p.ID, err)
	}
	seller, err := repository.MoneyFromDB(p.SellerShare)
	if err != nil {
		return nil, fmt.Errorf("payment %s seller share: %w", p.ID, err)
	}
	courier, err := repository.MoneyFromDB(p.CourierShare)
	if err != nil {
		return nil, fmt.Errorf("payment %s courier share: %w", p.ID, err)
	}
	platform, err := repository.MoneyFromDB(p.PlatformFee)
	if err != nil {
		return nil, fmt.Errorf("payment %s platform fee: %w", p.ID, err)
	}

	return &entities.Payment{
		ID:          p.ID,
		OrderID:     p.OrderID,
		TotalAmount: total,
		Split: entities.PaymentSplit{
			SellerShare:  seller,
			CourierShare: courier,
			PlatformFee:  platform,
		},
		Status:         entities.PaymentStatus(p.Status),
		TransactionRef: p.TransactionRef,
		CreatedAt:      p.CreatedAt,
		ReleasedAt:     p.ReleasedAt,
	}, nil
}

func FromDomain(p *entities.Payment) *PaymentDB {
	if p == nil {
		return nil
	}

	return &PaymentDB{
		ID:             p.ID,
		OrderID:        p.OrderID,
		TotalAmount:    repository.MoneyToDB(p.TotalAmount),
		SellerShare:    repository.MoneyToDB(p.Split.SellerShare),
		CourierShare:   repository.MoneyToDB(p.Split.CourierShare),
		PlatformFee:    repository.MoneyToDB(p.Split.PlatformFee),
		Status:         p.Status.String(),
		TransactionRef: p.TransactionRef,
		CreatedAt:      p.CreatedAt,
		ReleasedAt:     p.ReleasedAt,
	}
}
