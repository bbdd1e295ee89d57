package order

import "errors"

var (
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrEmptyItems        = errors.New("order has no items")
	ErrInvalidQuantity   = errors.New("item quantity must be positive")
	ErrInvalidProductID  = errors.New("invalid product id")
	ErrForeignProduct    = errors.New("product belongs to another seller")
	ErrMissingSeller     = errors.New("seller id is required")
	ErrMissingBuyer      = errors.New("buyer id and name are required")
	ErrInvalidCourierID  = errors.New("invalid courier id")
	ErrInvalidCoordinate = errors.New("invalid coordinates")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidPrice      = errors.New("catalog price is negative")
)
