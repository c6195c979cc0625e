package repository

import (
	"database/sql"
	"fmt"

	finflow_errors "finflow/internal"
	"finflow/internal/db/models/postgres/public/model"
	. "finflow/internal/db/models/postgres/public/table"
	db "finflow/internal/db/query"
	"finflow/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

// AccountRepository persists the PortfolioAccount aggregate. Loads return
// the account with its full holding set so cash and positions are always
// read together; deletes cascade to holdings explicitly.
type AccountRepository interface {
	Create(tx *sql.Tx, account *domain.PortfolioAccount) error
	Get(tx *sql.Tx, accountID uuid.UUID) (*domain.PortfolioAccount, error)
	GetByUserID(tx *sql.Tx, userID uuid.UUID) (*domain.PortfolioAccount, error)
	ExistsByUserID(tx *sql.Tx, userID uuid.UUID) (bool, error)
	Update(tx *sql.Tx, account *domain.PortfolioAccount) error
	Delete(tx *sql.Tx, accountID uuid.UUID) error
}

type accountRepositoryHandler struct {
}

func NewAccountRepository() AccountRepository {
	return accountRepositoryHandler{}
}

func accountToDb(a *domain.PortfolioAccount) model.PortfolioAccount {
	return model.PortfolioAccount{
		AccountID:            a.AccountID,
		UserID:               a.UserID,
		Name:                 a.Name,
		CashBalance:          a.CashBalance,
		BuyingPower:          a.BuyingPower,
		TotalValue:           a.TotalValue,
		TotalGainLoss:        a.TotalGainLoss,
		TotalGainLossPercent: a.TotalGainLossPercent,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}

func accountFromDb(a model.PortfolioAccount, holdings []model.Holding) *domain.PortfolioAccount {
	out := &domain.PortfolioAccount{
		AccountID:            a.AccountID,
		UserID:               a.UserID,
		Name:                 a.Name,
		CashBalance:          a.CashBalance,
		BuyingPower:          a.BuyingPower,
		TotalValue:           a.TotalValue,
		TotalGainLoss:        a.TotalGainLoss,
		TotalGainLossPercent: a.TotalGainLossPercent,
		Holdings:             map[string]*domain.Holding{},
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
	for _, h := range holdings {
		dh := holdingFromDb(h)
		out.Holdings[dh.Symbol] = dh
	}
	return out
}

func (h accountRepositoryHandler) Create(tx *sql.Tx, account *domain.PortfolioAccount) error {
	query := PortfolioAccount.INSERT(
		PortfolioAccount.AllColumns,
	).MODEL(
		accountToDb(account),
	)

	_, err := query.Exec(tx)
	if err != nil {
		if db.IsDuplicateEntryErr(err) {
			return finflow_errors.ErrConflict{Resource: "portfolio account", Message: "user " + account.UserID.String() + " already has an account"}
		}
		return fmt.Errorf("failed to insert portfolio account: %w", err)
	}

	return nil
}

func (h accountRepositoryHandler) Get(tx *sql.Tx, accountID uuid.UUID) (*domain.PortfolioAccount, error) {
	return h.get(tx, PortfolioAccount.AccountID.EQ(postgres.UUID(accountID)), accountID.String())
}

func (h accountRepositoryHandler) GetByUserID(tx *sql.Tx, userID uuid.UUID) (*domain.PortfolioAccount, error) {
	return h.get(tx, PortfolioAccount.UserID.EQ(postgres.UUID(userID)), "user "+userID.String())
}

func (h accountRepositoryHandler) get(tx *sql.Tx, predicate postgres.BoolExpression, id string) (*domain.PortfolioAccount, error) {
	query := PortfolioAccount.SELECT(PortfolioAccount.AllColumns).WHERE(predicate)

	var accounts []model.PortfolioAccount
	err := query.Query(tx, &accounts)
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolio account: %w", err)
	}
	if len(accounts) == 0 {
		return nil, finflow_errors.ErrNotFound{Resource: "portfolio account", ID: id}
	}
	account := accounts[0]

	holdingsQuery := Holding.SELECT(Holding.AllColumns).WHERE(
		Holding.AccountID.EQ(postgres.UUID(account.AccountID)),
	)
	var holdings []model.Holding
	err = holdingsQuery.Query(tx, &holdings)
	if err != nil {
		return nil, fmt.Errorf("failed to load holdings for account %s: %w", account.AccountID, err)
	}

	return accountFromDb(account, holdings), nil
}

func (h accountRepositoryHandler) ExistsByUserID(tx *sql.Tx, userID uuid.UUID) (bool, error) {
	query := PortfolioAccount.SELECT(PortfolioAccount.AccountID).WHERE(
		PortfolioAccount.UserID.EQ(postgres.UUID(userID)),
	)

	var accounts []model.PortfolioAccount
	err := query.Query(tx, &accounts)
	if err != nil {
		return false, fmt.Errorf("failed to check portfolio account existence: %w", err)
	}

	return len(accounts) > 0, nil
}

func (h accountRepositoryHandler) Update(tx *sql.Tx, account *domain.PortfolioAccount) error {
	query := PortfolioAccount.UPDATE(
		PortfolioAccount.MutableColumns,
	).MODEL(
		accountToDb(account),
	).WHERE(
		PortfolioAccount.AccountID.EQ(postgres.UUID(account.AccountID)),
	)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to update portfolio account %s: %w", account.AccountID, err)
	}

	return nil
}

func (h accountRepositoryHandler) Delete(tx *sql.Tx, accountID uuid.UUID) error {
	// Holdings first: the account exclusively owns them.
	deleteHoldings := Holding.DELETE().WHERE(
		Holding.AccountID.EQ(postgres.UUID(accountID)),
	)
	_, err := deleteHoldings.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to delete holdings for account %s: %w", accountID, err)
	}

	deleteAccount := PortfolioAccount.DELETE().WHERE(
		PortfolioAccount.AccountID.EQ(postgres.UUID(accountID)),
	)
	_, err = deleteAccount.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio account %s: %w", accountID, err)
	}

	return nil
}
