package repository

import (
	"database/sql"
	"fmt"

	finflow_errors "finflow/internal"
	"finflow/internal/db/models/postgres/public/model"
	. "finflow/internal/db/models/postgres/public/table"
	"finflow/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type OrderRepository interface {
	Create(tx *sql.Tx, order *domain.Order) error
	Get(tx *sql.Tx, orderID uuid.UUID) (*domain.Order, error)
	ListActiveByUserID(tx *sql.Tx, userID uuid.UUID) ([]domain.Order, error)
	Update(tx *sql.Tx, order *domain.Order) error
}

type orderRepositoryHandler struct {
}

func NewOrderRepository() OrderRepository {
	return orderRepositoryHandler{}
}

func orderToDb(o *domain.Order) model.TradeOrder {
	return model.TradeOrder{
		OrderID:           o.OrderID,
		UserID:            o.UserID,
		Symbol:            o.Symbol,
		Side:              o.Side,
		Type:              o.Type,
		Quantity:          o.Quantity,
		FilledQuantity:    o.FilledQuantity,
		RemainingQuantity: o.RemainingQuantity,
		LimitPrice:        o.LimitPrice,
		Status:            o.Status,
		Exchange:          o.Exchange,
		ExternalID:        o.ExternalID,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		FilledAt:          o.FilledAt,
		CancelledAt:       o.CancelledAt,
	}
}

func orderFromDb(o model.TradeOrder) *domain.Order {
	return &domain.Order{
		OrderID:           o.OrderID,
		UserID:            o.UserID,
		Symbol:            o.Symbol,
		Side:              o.Side,
		Type:              o.Type,
		Quantity:          o.Quantity,
		FilledQuantity:    o.FilledQuantity,
		RemainingQuantity: o.RemainingQuantity,
		LimitPrice:        o.LimitPrice,
		Status:            o.Status,
		Exchange:          o.Exchange,
		ExternalID:        o.ExternalID,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		FilledAt:          o.FilledAt,
		CancelledAt:       o.CancelledAt,
	}
}

func (r orderRepositoryHandler) Create(tx *sql.Tx, order *domain.Order) error {
	query := TradeOrder.INSERT(TradeOrder.AllColumns).MODEL(orderToDb(order))

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

func (r orderRepositoryHandler) Get(tx *sql.Tx, orderID uuid.UUID) (*domain.Order, error) {
	query := TradeOrder.SELECT(TradeOrder.AllColumns).WHERE(
		TradeOrder.OrderID.EQ(postgres.UUID(orderID)),
	)

	var results []model.TradeOrder
	err := query.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to load order %s: %w", orderID, err)
	}
	if len(results) == 0 {
		return nil, finflow_errors.ErrNotFound{Resource: "order", ID: orderID.String()}
	}

	return orderFromDb(results[0]), nil
}

func (r orderRepositoryHandler) ListActiveByUserID(tx *sql.Tx, userID uuid.UUID) ([]domain.Order, error) {
	query := TradeOrder.SELECT(TradeOrder.AllColumns).WHERE(
		postgres.AND(
			TradeOrder.UserID.EQ(postgres.UUID(userID)),
			TradeOrder.Status.IN(
				postgres.String(model.OrderStatus_Pending.String()),
				postgres.String(model.OrderStatus_Partial.String()),
			),
		),
	).ORDER_BY(TradeOrder.CreatedAt.DESC())

	var results []model.TradeOrder
	err := query.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list active orders for user %s: %w", userID, err)
	}

	out := make([]domain.Order, len(results))
	for i, o := range results {
		out[i] = *orderFromDb(o)
	}
	return out, nil
}

func (r orderRepositoryHandler) Update(tx *sql.Tx, order *domain.Order) error {
	query := TradeOrder.UPDATE(TradeOrder.MutableColumns).
		MODEL(orderToDb(order)).
		WHERE(TradeOrder.OrderID.EQ(postgres.UUID(order.OrderID)))

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to update order %s: %w", order.OrderID, err)
	}

	return nil
}
