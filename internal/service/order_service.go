package service

import (
	"database/sql"

	"finflow/internal/clock"
	"finflow/internal/db/models/postgres/public/model"
	"finflow/internal/domain"
	"finflow/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderService tracks an order's fill progress against an execution
// venue. Orders are independent of the portfolio account; filling one
// does not move cash or holdings.
type OrderService interface {
	Create(tx *sql.Tx, userID uuid.UUID, symbol string, side model.OrderSide, orderType model.OrderType, qty decimal.Decimal, limitPrice *decimal.Decimal) (*domain.Order, error)
	Get(tx *sql.Tx, orderID uuid.UUID) (*domain.Order, error)
	Fill(tx *sql.Tx, orderID uuid.UUID, qty decimal.Decimal) (*domain.Order, error)
	Cancel(tx *sql.Tx, orderID uuid.UUID) (*domain.Order, error)
	Reject(tx *sql.Tx, orderID uuid.UUID) (*domain.Order, error)
	ListActive(tx *sql.Tx, userID uuid.UUID) ([]domain.Order, error)
}

func NewOrderService(
	orderRepository repository.OrderRepository,
	clock clock.Clock,
) OrderService {
	return orderServiceHandler{
		OrderRepository: orderRepository,
		Clock:           clock,
	}
}

type orderServiceHandler struct {
	OrderRepository repository.OrderRepository
	Clock           clock.Clock
}

func (h orderServiceHandler) Create(tx *sql.Tx, userID uuid.UUID, symbol string, side model.OrderSide, orderType model.OrderType, qty decimal.Decimal, limitPrice *decimal.Decimal) (*domain.Order, error) {
	order, err := domain.NewOrder(userID, symbol, side, orderType, qty, limitPrice, h.Clock.Now())
	if err != nil {
		return nil, err
	}
	err = h.OrderRepository.Create(tx, order)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (h orderServiceHandler) Get(tx *sql.Tx, orderID uuid.UUID) (*domain.Order, error) {
	return h.OrderRepository.Get(tx, orderID)
}

// Fill applies a partial or complete fill. Hitting exactly zero remaining
// is the only transition to FILLED; filling a terminal order fails.
func (h orderServiceHandler) Fill(tx *sql.Tx, orderID uuid.UUID, qty decimal.Decimal) (*domain.Order, error) {
	order, err := h.OrderRepository.Get(tx, orderID)
	if err != nil {
		return nil, err
	}

	err = order.Fill(qty, h.Clock.Now())
	if err != nil {
		return nil, err
	}
	err = h.OrderRepository.Update(tx, order)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (h orderServiceHandler) Cancel(tx *sql.Tx, orderID uuid.UUID) (*domain.Order, error) {
	order, err := h.OrderRepository.Get(tx, orderID)
	if err != nil {
		return nil, err
	}

	err = order.Cancel(h.Clock.Now())
	if err != nil {
		return nil, err
	}
	err = h.OrderRepository.Update(tx, order)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (h orderServiceHandler) Reject(tx *sql.Tx, orderID uuid.UUID) (*domain.Order, error) {
	order, err := h.OrderRepository.Get(tx, orderID)
	if err != nil {
		return nil, err
	}

	err = order.Reject(h.Clock.Now())
	if err != nil {
		return nil, err
	}
	err = h.OrderRepository.Update(tx, order)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (h orderServiceHandler) ListActive(tx *sql.Tx, userID uuid.UUID) ([]domain.Order, error) {
	return h.OrderRepository.ListActiveByUserID(tx, userID)
}
