package domain

import (
	"time"

	finflow_errors "finflow/internal"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PortfolioAccount owns a user's cash balance and their holdings, keyed by
// normalized symbol. One account per user. Cash and position mutations are
// expected to run inside a single storage transaction so the two are never
// observed independently.
type PortfolioAccount struct {
	AccountID            uuid.UUID
	UserID               uuid.UUID
	Name                 string
	CashBalance          decimal.Decimal
	BuyingPower          decimal.Decimal
	TotalValue           decimal.Decimal
	TotalGainLoss        decimal.Decimal
	TotalGainLossPercent decimal.Decimal
	Holdings             map[string]*Holding
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func NewPortfolioAccount(userID uuid.UUID, name string, initialCash decimal.Decimal, now time.Time) (*PortfolioAccount, error) {
	if initialCash.IsNegative() {
		return nil, finflow_errors.ErrInvalidArgument{Field: "initialCash", Message: "must not be negative"}
	}
	return &PortfolioAccount{
		AccountID:   uuid.New(),
		UserID:      userID,
		Name:        name,
		CashBalance: initialCash,
		BuyingPower: initialCash,
		TotalValue:  initialCash,
		Holdings:    map[string]*Holding{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Holding returns the holding for symbol, if any.
func (a *PortfolioAccount) Holding(symbol string) (*Holding, bool) {
	h, ok := a.Holdings[NormalizeSymbol(symbol)]
	return h, ok
}

func (a *PortfolioAccount) AddHolding(h *Holding) {
	if a.Holdings == nil {
		a.Holdings = map[string]*Holding{}
	}
	h.AccountID = a.AccountID
	a.Holdings[NormalizeSymbol(h.Symbol)] = h
}

func (a *PortfolioAccount) RemoveHolding(symbol string) {
	delete(a.Holdings, NormalizeSymbol(symbol))
}

// Deposit adds cash. Cash balance, buying power and total value move
// together.
func (a *PortfolioAccount) Deposit(amount decimal.Decimal, now time.Time) error {
	if !amount.IsPositive() {
		return finflow_errors.ErrInvalidArgument{Field: "amount", Message: "deposit amount must be positive"}
	}
	a.CashBalance = a.CashBalance.Add(amount)
	a.BuyingPower = a.BuyingPower.Add(amount)
	a.TotalValue = a.TotalValue.Add(amount)
	a.UpdatedAt = now
	return nil
}

// Withdraw removes cash, symmetric to Deposit.
func (a *PortfolioAccount) Withdraw(amount decimal.Decimal, now time.Time) error {
	if !amount.IsPositive() {
		return finflow_errors.ErrInvalidArgument{Field: "amount", Message: "withdrawal amount must be positive"}
	}
	if amount.GreaterThan(a.CashBalance) {
		return finflow_errors.ErrInsufficientFunds{Requested: amount, Available: a.CashBalance}
	}
	a.CashBalance = a.CashBalance.Sub(amount)
	a.BuyingPower = a.BuyingPower.Sub(amount)
	a.TotalValue = a.TotalValue.Sub(amount)
	a.UpdatedAt = now
	return nil
}

// DebitCash pays for a purchase out of the cash balance. Buying power and
// total value are refreshed by the next recalculation, not here.
func (a *PortfolioAccount) DebitCash(amount decimal.Decimal, now time.Time) error {
	if amount.GreaterThan(a.CashBalance) {
		return finflow_errors.ErrInsufficientFunds{Requested: amount, Available: a.CashBalance}
	}
	a.CashBalance = a.CashBalance.Sub(amount)
	a.UpdatedAt = now
	return nil
}

// CreditCash adds sale proceeds to the cash balance.
func (a *PortfolioAccount) CreditCash(amount decimal.Decimal, now time.Time) {
	a.CashBalance = a.CashBalance.Add(amount)
	a.UpdatedAt = now
}

func (a PortfolioAccount) Symbols() []string {
	out := []string{}
	for symbol := range a.Holdings {
		out = append(out, symbol)
	}
	return out
}

func (a PortfolioAccount) DeepCopy() *PortfolioAccount {
	out := a
	out.Holdings = map[string]*Holding{}
	for k, v := range a.Holdings {
		out.Holdings[k] = v.DeepCopy()
	}
	return &out
}
