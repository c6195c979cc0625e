package resolver

import (
	"fmt"

	types "finflow/api-types"

	"github.com/google/uuid"
)

func (r resolverHandler) CreateAccount(req types.CreateAccountRequest) (*types.PortfolioAccountResponse, error) {
	tx, err := r.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	account, err := r.PortfolioService.Create(tx, req.UserID, req.Name, req.InitialCash)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}
	return accountResponse(account), nil
}

func (r resolverHandler) GetPortfolio(userID uuid.UUID) (*types.PortfolioAccountResponse, error) {
	tx, err := r.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	account, err := r.PortfolioService.GetByUserID(tx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio for %s: %w", userID.String(), err)
	}

	return accountResponse(account), nil
}

func (r resolverHandler) Deposit(accountID uuid.UUID, req types.CashRequest) (*types.PortfolioAccountResponse, error) {
	tx, err := r.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	account, err := r.PortfolioService.Deposit(tx, accountID, req.Amount)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}
	return accountResponse(account), nil
}

func (r resolverHandler) Withdraw(accountID uuid.UUID, req types.CashRequest) (*types.PortfolioAccountResponse, error) {
	tx, err := r.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	account, err := r.PortfolioService.Withdraw(tx, accountID, req.Amount)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}
	return accountResponse(account), nil
}

func (r resolverHandler) Buy(accountID uuid.UUID, req types.TradeRequest) (*types.PortfolioAccountResponse, error) {
	assetType, err := parseAssetType(req.AssetType)
	if err != nil {
		return nil, err
	}

	tx, err := r.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	account, err := r.PortfolioService.Buy(tx, accountID, req.Symbol, req.Quantity, req.Price, assetType, req.Exchange)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}
	return accountResponse(account), nil
}

func (r resolverHandler) Sell(accountID uuid.UUID, req types.TradeRequest) (*types.PortfolioAccountResponse, error) {
	tx, err := r.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	account, err := r.PortfolioService.Sell(tx, accountID, req.Symbol, req.Quantity, req.Price)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}
	return accountResponse(account), nil
}

func (r resolverHandler) DeleteAccount(accountID uuid.UUID) error {
	tx, err := r.Db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = r.PortfolioService.Delete(tx, accountID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r resolverHandler) Recalculate(accountID uuid.UUID) (*types.PortfolioAccountResponse, error) {
	tx, err := r.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	account, err := r.PortfolioService.Recalculate(tx, accountID)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}
	return accountResponse(account), nil
}
