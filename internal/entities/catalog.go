package entities

import "github.com/shopspring/decimal"

// Product снимок товара из каталога на момент создания заказа.
type Product struct {
	ID       string
	SellerID string
	Name     string
	Price    decimal.Decimal
}

type Seller struct {
	ID       string
	Name     string
	Location *Location
}
