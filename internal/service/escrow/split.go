package escrow

import (
	"fmt"
	"time"

	"fulfillment/internal/entities"

	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// Split делит сумму заказа на три доли. Доли округляются до копеек независимо,
// остаток от округления уходит продавцу, так что сумма долей всегда равна total.
func Split(total, platformFeePercent, courierFlatFee decimal.Decimal) (entities.PaymentSplit, error) {
	if total.IsNegative() || total.IsZero() {
		return entities.PaymentSplit{}, fmt.Errorf("%w: %s", ErrInvalidTotal, total)
	}
	if platformFeePercent.IsNegative() || platformFeePercent.GreaterThan(hundred) || courierFlatFee.IsNegative() {
		return entities.PaymentSplit{}, ErrInvalidFeeRates
	}

	platformFee := total.Mul(platformFeePercent).Div(hundred).Round(moneyPlaces)
	courierShare := courierFlatFee.Round(moneyPlaces)
	sellerShare := total.Sub(courierShare).Sub(platformFee).Round(moneyPlaces)

	if sellerShare.IsNegative() {
		return entities.PaymentSplit{}, fmt.Errorf("%w: total %s, fees %s", ErrTotalBelowFees, total, courierShare.Add(platformFee))
	}

	split := entities.PaymentSplit{
		SellerShare:  sellerShare,
		CourierShare: courierShare,
		PlatformFee:  platformFee,
	}

	if residual := total.Sub(split.Sum()); !residual.IsZero() {
		split.SellerShare = split.SellerShare.Add(residual)
	}

	return split, nil
}

// Release переводит платеж held -> released. Повторный release уже выпущенного платежа
// ничего не меняет и не является ошибкой (changed=false).
func Release(payment entities.Payment, now time.Time) (released entities.Payment, changed bool, err error) {
	switch payment.Status {
	case entities.PaymentReleased:
		return payment, false, nil
	case entities.PaymentHeld:
		payment.Status = entities.PaymentReleased
		payment.ReleasedAt = &now
		return payment, true, nil
	default:
		return payment, false, fmt.Errorf("%w: payment is %s", entities.ErrInvalidTransition, payment.Status)
	}
}
