package service

import (
	"context"
	"database/sql"
	"fmt"

	finflow_errors "finflow/internal"
	"finflow/internal/clock"
	"finflow/internal/db/models/postgres/public/model"
	"finflow/internal/domain"
	"finflow/internal/events"
	"finflow/internal/ledger"
	"finflow/internal/repository"
	"finflow/internal/valuation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PortfolioService is concerned with the lifecycle of a user's portfolio
// account: cash movements, buys, sells and valuation refreshes. Every
// method runs inside the caller's transaction so cash and holdings are
// never persisted independently.
type PortfolioService interface {
	Create(tx *sql.Tx, userID uuid.UUID, name string, initialCash decimal.Decimal) (*domain.PortfolioAccount, error)
	GetByUserID(tx *sql.Tx, userID uuid.UUID) (*domain.PortfolioAccount, error)
	Deposit(tx *sql.Tx, accountID uuid.UUID, amount decimal.Decimal) (*domain.PortfolioAccount, error)
	Withdraw(tx *sql.Tx, accountID uuid.UUID, amount decimal.Decimal) (*domain.PortfolioAccount, error)
	Buy(tx *sql.Tx, accountID uuid.UUID, symbol string, qty, price decimal.Decimal, assetType model.AssetType, exchange *string) (*domain.PortfolioAccount, error)
	Sell(tx *sql.Tx, accountID uuid.UUID, symbol string, qty, price decimal.Decimal) (*domain.PortfolioAccount, error)
	Recalculate(tx *sql.Tx, accountID uuid.UUID) (*domain.PortfolioAccount, error)
	Delete(tx *sql.Tx, accountID uuid.UUID) error
}

func NewPortfolioService(
	userRepository repository.UserRepository,
	accountRepository repository.AccountRepository,
	holdingRepository repository.HoldingRepository,
	publisher events.Publisher,
	clock clock.Clock,
) PortfolioService {
	return portfolioServiceHandler{
		UserRepository:    userRepository,
		AccountRepository: accountRepository,
		HoldingRepository: holdingRepository,
		Publisher:         publisher,
		Clock:             clock,
	}
}

type portfolioServiceHandler struct {
	UserRepository    repository.UserRepository
	AccountRepository repository.AccountRepository
	HoldingRepository repository.HoldingRepository
	Publisher         events.Publisher
	Clock             clock.Clock
}

func (h portfolioServiceHandler) Create(tx *sql.Tx, userID uuid.UUID, name string, initialCash decimal.Decimal) (*domain.PortfolioAccount, error) {
	exists, err := h.UserRepository.Exists(tx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, finflow_errors.ErrNotFound{Resource: "user", ID: userID.String()}
	}

	hasAccount, err := h.AccountRepository.ExistsByUserID(tx, userID)
	if err != nil {
		return nil, err
	}
	if hasAccount {
		return nil, finflow_errors.ErrConflict{Resource: "portfolio account", Message: fmt.Sprintf("user %s already has an account", userID.String())}
	}

	account, err := domain.NewPortfolioAccount(userID, name, initialCash, h.Clock.Now())
	if err != nil {
		return nil, err
	}
	err = h.AccountRepository.Create(tx, account)
	if err != nil {
		return nil, err
	}

	h.publish(account, "", "account_created")
	return account, nil
}

func (h portfolioServiceHandler) GetByUserID(tx *sql.Tx, userID uuid.UUID) (*domain.PortfolioAccount, error) {
	return h.AccountRepository.GetByUserID(tx, userID)
}

func (h portfolioServiceHandler) Deposit(tx *sql.Tx, accountID uuid.UUID, amount decimal.Decimal) (*domain.PortfolioAccount, error) {
	account, err := h.AccountRepository.Get(tx, accountID)
	if err != nil {
		return nil, err
	}

	err = account.Deposit(amount, h.Clock.Now())
	if err != nil {
		return nil, err
	}
	err = h.AccountRepository.Update(tx, account)
	if err != nil {
		return nil, err
	}

	h.publish(account, "", "deposit")
	return account, nil
}

func (h portfolioServiceHandler) Withdraw(tx *sql.Tx, accountID uuid.UUID, amount decimal.Decimal) (*domain.PortfolioAccount, error) {
	account, err := h.AccountRepository.Get(tx, accountID)
	if err != nil {
		return nil, err
	}

	err = account.Withdraw(amount, h.Clock.Now())
	if err != nil {
		return nil, err
	}
	err = h.AccountRepository.Update(tx, account)
	if err != nil {
		return nil, err
	}

	h.publish(account, "", "withdrawal")
	return account, nil
}

// Buy debits cash for qty@price and opens or increases the holding for
// symbol, then refreshes the account totals. Cost is checked against the
// cash balance before anything is mutated.
func (h portfolioServiceHandler) Buy(tx *sql.Tx, accountID uuid.UUID, symbol string, qty, price decimal.Decimal, assetType model.AssetType, exchange *string) (*domain.PortfolioAccount, error) {
	account, err := h.AccountRepository.Get(tx, accountID)
	if err != nil {
		return nil, err
	}

	now := h.Clock.Now()
	_, hadHolding := account.Holding(symbol)

	cost := domain.RoundMoney(qty.Mul(price))
	err = account.DebitCash(cost, now)
	if err != nil {
		return nil, err
	}

	holding, err := ledger.OpenOrIncrease(account, symbol, qty, price, assetType, exchange, now)
	if err != nil {
		return nil, err
	}

	if hadHolding {
		err = h.HoldingRepository.Update(tx, holding)
	} else {
		err = h.HoldingRepository.Insert(tx, holding)
	}
	if err != nil {
		return nil, err
	}

	valuation.Recalculate(account, now)
	err = h.AccountRepository.Update(tx, account)
	if err != nil {
		return nil, err
	}

	h.publish(account, holding.Symbol, "buy")
	return account, nil
}

// Sell reduces the holding for symbol by qty and credits the proceeds.
// Reducing a holding to exactly zero removes its row.
func (h portfolioServiceHandler) Sell(tx *sql.Tx, accountID uuid.UUID, symbol string, qty, price decimal.Decimal) (*domain.PortfolioAccount, error) {
	account, err := h.AccountRepository.Get(tx, accountID)
	if err != nil {
		return nil, err
	}

	now := h.Clock.Now()
	holding, err := ledger.Decrease(account, symbol, qty, price, now)
	if err != nil {
		return nil, err
	}

	proceeds := domain.RoundMoney(qty.Mul(price))
	account.CreditCash(proceeds, now)

	if holding == nil {
		err = h.HoldingRepository.Delete(tx, account.AccountID, domain.NormalizeSymbol(symbol))
	} else {
		err = h.HoldingRepository.Update(tx, holding)
	}
	if err != nil {
		return nil, err
	}

	valuation.Recalculate(account, now)
	err = h.AccountRepository.Update(tx, account)
	if err != nil {
		return nil, err
	}

	h.publish(account, domain.NormalizeSymbol(symbol), "sell")
	return account, nil
}

// Recalculate refreshes the account totals from its current holdings.
// Idempotent; safe to call at any time.
func (h portfolioServiceHandler) Recalculate(tx *sql.Tx, accountID uuid.UUID) (*domain.PortfolioAccount, error) {
	account, err := h.AccountRepository.Get(tx, accountID)
	if err != nil {
		return nil, err
	}

	valuation.Recalculate(account, h.Clock.Now())
	err = h.AccountRepository.Update(tx, account)
	if err != nil {
		return nil, err
	}

	return account, nil
}

func (h portfolioServiceHandler) Delete(tx *sql.Tx, accountID uuid.UUID) error {
	return h.AccountRepository.Delete(tx, accountID)
}

func (h portfolioServiceHandler) publish(account *domain.PortfolioAccount, symbol, action string) {
	h.Publisher.PortfolioUpdated(context.Background(), events.PortfolioEvent{
		UserID:    account.UserID.String(),
		AccountID: account.AccountID.String(),
		Symbol:    symbol,
		Action:    action,
		Timestamp: h.Clock.Now(),
	})
}
