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

type HoldingRepository interface {
	Get(tx *sql.Tx, holdingID uuid.UUID) (*domain.Holding, error)
	ListByUserID(tx *sql.Tx, userID uuid.UUID) ([]domain.Holding, error)
	Insert(tx *sql.Tx, holding *domain.Holding) error
	Update(tx *sql.Tx, holding *domain.Holding) error
	Delete(tx *sql.Tx, accountID uuid.UUID, symbol string) error
}

type holdingRepositoryHandler struct {
}

func NewHoldingRepository() HoldingRepository {
	return holdingRepositoryHandler{}
}

func holdingToDb(h *domain.Holding) model.Holding {
	return model.Holding{
		HoldingID:            h.HoldingID,
		AccountID:            h.AccountID,
		UserID:               h.UserID,
		Symbol:               h.Symbol,
		Quantity:             h.Quantity,
		AverageCost:          h.AverageCost,
		CurrentPrice:         h.CurrentPrice,
		MarketValue:          h.MarketValue,
		UnrealizedPnl:        h.UnrealizedPnl,
		UnrealizedPnlPercent: h.UnrealizedPnlPercent,
		AssetType:            h.AssetType,
		Exchange:             h.Exchange,
		CreatedAt:            h.CreatedAt,
		UpdatedAt:            h.UpdatedAt,
	}
}

func holdingFromDb(h model.Holding) *domain.Holding {
	return &domain.Holding{
		HoldingID:            h.HoldingID,
		AccountID:            h.AccountID,
		UserID:               h.UserID,
		Symbol:               h.Symbol,
		Quantity:             h.Quantity,
		AverageCost:          h.AverageCost,
		CurrentPrice:         h.CurrentPrice,
		MarketValue:          h.MarketValue,
		UnrealizedPnl:        h.UnrealizedPnl,
		UnrealizedPnlPercent: h.UnrealizedPnlPercent,
		AssetType:            h.AssetType,
		Exchange:             h.Exchange,
		CreatedAt:            h.CreatedAt,
		UpdatedAt:            h.UpdatedAt,
	}
}

func (r holdingRepositoryHandler) Get(tx *sql.Tx, holdingID uuid.UUID) (*domain.Holding, error) {
	query := Holding.SELECT(Holding.AllColumns).WHERE(
		Holding.HoldingID.EQ(postgres.UUID(holdingID)),
	)

	var results []model.Holding
	err := query.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to load holding %s: %w", holdingID, err)
	}
	if len(results) == 0 {
		return nil, finflow_errors.ErrNotFound{Resource: "holding", ID: holdingID.String()}
	}

	return holdingFromDb(results[0]), nil
}

func (r holdingRepositoryHandler) ListByUserID(tx *sql.Tx, userID uuid.UUID) ([]domain.Holding, error) {
	query := Holding.SELECT(Holding.AllColumns).WHERE(
		Holding.UserID.EQ(postgres.UUID(userID)),
	).ORDER_BY(Holding.Symbol.ASC())

	var results []model.Holding
	err := query.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings for user %s: %w", userID, err)
	}

	out := make([]domain.Holding, len(results))
	for i, h := range results {
		out[i] = *holdingFromDb(h)
	}
	return out, nil
}

func (r holdingRepositoryHandler) Insert(tx *sql.Tx, holding *domain.Holding) error {
	query := Holding.INSERT(Holding.AllColumns).MODEL(holdingToDb(holding))

	_, err := query.Exec(tx)
	if err != nil {
		if db.IsDuplicateEntryErr(err) {
			return finflow_errors.ErrConflict{Resource: "holding", Message: holding.Symbol + " already held in account " + holding.AccountID.String()}
		}
		return fmt.Errorf("failed to insert holding %s: %w", holding.Symbol, err)
	}

	return nil
}

func (r holdingRepositoryHandler) Update(tx *sql.Tx, holding *domain.Holding) error {
	query := Holding.UPDATE(Holding.MutableColumns).
		MODEL(holdingToDb(holding)).
		WHERE(Holding.HoldingID.EQ(postgres.UUID(holding.HoldingID)))

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to update holding %s: %w", holding.Symbol, err)
	}

	return nil
}

func (r holdingRepositoryHandler) Delete(tx *sql.Tx, accountID uuid.UUID, symbol string) error {
	query := Holding.DELETE().WHERE(
		postgres.AND(
			Holding.AccountID.EQ(postgres.UUID(accountID)),
			Holding.Symbol.EQ(postgres.String(symbol)),
		),
	)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to delete holding %s: %w", symbol, err)
	}

	return nil
}
