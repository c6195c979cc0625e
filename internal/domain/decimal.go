package domain

import (
	"github.com/shopspring/decimal"
)

// Monetary amounts are kept at 4 decimal places, quantities at 8.
// Rounding is half-up everywhere; mixing precisions would make the
// portfolio aggregates stop reconciling with the per-holding figures.
const (
	MoneyScale    = 4
	QuantityScale = 8
)

var oneHundred = decimal.NewFromInt(100)

func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

func RoundQuantity(d decimal.Decimal) decimal.Decimal {
	return d.Round(QuantityScale)
}

// PercentOf returns part/whole expressed as a percentage, rounded to
// money scale. Returns zero when whole is not positive.
func PercentOf(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return RoundMoney(part.Div(whole).Mul(oneHundred))
}
