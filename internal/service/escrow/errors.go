package escrow

import "errors"

var (
	ErrInvalidTotal    = errors.New("invalid order total")
	ErrTotalBelowFees  = errors.New("order total does not cover fees")
	ErrInvalidFeeRates = errors.New("invalid fee configuration")
)
