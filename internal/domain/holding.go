package domain

import (
	"strings"
	"time"

	"finflow/internal/db/models/postgres/public/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Holding is a single position within a portfolio account. A holding with
// zero quantity is never kept around; the ledger deletes it instead.
type Holding struct {
	HoldingID            uuid.UUID
	AccountID            uuid.UUID
	UserID               uuid.UUID
	Symbol               string
	Quantity             decimal.Decimal
	AverageCost          decimal.Decimal
	CurrentPrice         *decimal.Decimal // nil until first marked
	MarketValue          decimal.Decimal
	UnrealizedPnl        decimal.Decimal
	UnrealizedPnlPercent decimal.Decimal
	AssetType            model.AssetType
	Exchange             *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NormalizeSymbol returns the canonical holding key for a ticker symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// CostBasis is quantity times average acquisition cost, at money scale.
func (h *Holding) CostBasis() decimal.Decimal {
	return RoundMoney(h.Quantity.Mul(h.AverageCost))
}

// MarkPrice recomputes market value and unrealized P&L at the given price.
func (h *Holding) MarkPrice(price decimal.Decimal, now time.Time) {
	p := price
	h.CurrentPrice = &p
	h.MarketValue = RoundMoney(h.Quantity.Mul(price))

	costBasis := h.CostBasis()
	h.UnrealizedPnl = RoundMoney(h.MarketValue.Sub(costBasis))
	h.UnrealizedPnlPercent = PercentOf(h.UnrealizedPnl, costBasis)
	h.UpdatedAt = now
}

// AddToPosition folds an additional purchase into the holding, recomputing
// the volume-weighted average cost.
func (h *Holding) AddToPosition(qty, price decimal.Decimal, now time.Time) {
	currentCost := h.Quantity.Mul(h.AverageCost)
	additionalCost := qty.Mul(price)
	newQuantity := RoundQuantity(h.Quantity.Add(qty))

	h.AverageCost = RoundMoney(currentCost.Add(additionalCost).Div(newQuantity))
	h.Quantity = newQuantity
	h.UpdatedAt = now

	if h.CurrentPrice != nil {
		h.MarkPrice(*h.CurrentPrice, now)
	}
}

// ReducePosition removes qty from the holding. The caller is responsible
// for checking qty against the held quantity first.
func (h *Holding) ReducePosition(qty decimal.Decimal, now time.Time) {
	h.Quantity = RoundQuantity(h.Quantity.Sub(qty))
	h.UpdatedAt = now

	if h.CurrentPrice != nil {
		h.MarkPrice(*h.CurrentPrice, now)
	}
}

func (h Holding) DeepCopy() *Holding {
	out := h
	if h.CurrentPrice != nil {
		p := *h.CurrentPrice
		out.CurrentPrice = &p
	}
	if h.Exchange != nil {
		e := *h.Exchange
		out.Exchange = &e
	}
	return &out
}
