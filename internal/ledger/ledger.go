// Package ledger owns per-symbol holding state. It mutates the account's
// holding collection only; cash movements stay with the account itself,
// and the caller is expected to do both inside one storage transaction.
package ledger

import (
	"time"

	finflow_errors "finflow/internal"
	"finflow/internal/db/models/postgres/public/model"
	"finflow/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OpenOrIncrease creates a holding for symbol or folds qty@price into an
// existing one, recomputing the volume-weighted average cost. The caller
// debits cash separately.
func OpenOrIncrease(account *domain.PortfolioAccount, symbol string, qty, price decimal.Decimal, assetType model.AssetType, exchange *string, now time.Time) (*domain.Holding, error) {
	if !qty.IsPositive() {
		return nil, finflow_errors.ErrInvalidArgument{Field: "quantity", Message: "quantity must be positive"}
	}
	if !price.IsPositive() {
		return nil, finflow_errors.ErrInvalidArgument{Field: "price", Message: "price must be positive"}
	}

	qty = domain.RoundQuantity(qty)
	symbol = domain.NormalizeSymbol(symbol)

	if existing, ok := account.Holding(symbol); ok {
		existing.AddToPosition(qty, price, now)
		return existing, nil
	}

	p := price
	holding := &domain.Holding{
		HoldingID:    uuid.New(),
		AccountID:    account.AccountID,
		UserID:       account.UserID,
		Symbol:       symbol,
		Quantity:     qty,
		AverageCost:  domain.RoundMoney(price),
		CurrentPrice: &p,
		MarketValue:  domain.RoundMoney(qty.Mul(price)),
		AssetType:    assetType,
		Exchange:     exchange,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	account.AddHolding(holding)
	return holding, nil
}

// Decrease reduces the holding for symbol by qty, re-marking it at the
// sell price. A holding reduced to exactly zero is removed from the
// account; the returned holding is nil in that case. The caller credits
// the proceeds.
func Decrease(account *domain.PortfolioAccount, symbol string, qty, price decimal.Decimal, now time.Time) (*domain.Holding, error) {
	if !qty.IsPositive() {
		return nil, finflow_errors.ErrInvalidArgument{Field: "quantity", Message: "quantity must be positive"}
	}
	if !price.IsPositive() {
		return nil, finflow_errors.ErrInvalidArgument{Field: "price", Message: "price must be positive"}
	}

	symbol = domain.NormalizeSymbol(symbol)
	holding, ok := account.Holding(symbol)
	if !ok {
		return nil, finflow_errors.ErrNotFound{Resource: "holding", ID: symbol}
	}

	qty = domain.RoundQuantity(qty)
	if qty.GreaterThan(holding.Quantity) {
		return nil, finflow_errors.ErrInsufficientPosition{Symbol: symbol, Requested: qty, Held: holding.Quantity}
	}

	holding.ReducePosition(qty, now)
	if holding.Quantity.IsZero() {
		account.RemoveHolding(symbol)
		return nil, nil
	}

	holding.MarkPrice(price, now)
	return holding, nil
}

// MarkPrice refreshes a holding's market value and unrealized P&L.
func MarkPrice(holding *domain.Holding, price decimal.Decimal, now time.Time) error {
	if !price.IsPositive() {
		return finflow_errors.ErrInvalidArgument{Field: "price", Message: "price must be positive"}
	}
	holding.MarkPrice(price, now)
	return nil
}
