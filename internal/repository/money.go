package repository

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Деньги пишутся в NUMERIC как текст ($n::numeric) и читаются как col::text,
// чтобы не зависеть от pgtype.Numeric и не терять точность.

func MoneyToDB(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func MoneyFromDB(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse money %q: %w", s, err)
	}
	return d, nil
}
