package prices

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is the latest traded price for a symbol.
type Quote struct {
	Symbol string
	Price  decimal.Decimal
	AsOf   time.Time
}

type PriceSource interface {
	GetLatestPrice(symbol string) (*Quote, error)
}
