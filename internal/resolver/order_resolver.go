package resolver

import (
	types "finflow/api-types"

	"github.com/google/uuid"
)

func (r resolverHandler) CreateOrder(req types.CreateOrderRequest) (*types.OrderResponse, error) {
	side, err := parseOrderSide(req.Side)
	if err != nil {
		return nil, err
	}
	orderType, err := parseOrderType(req.Type)
	if err != nil {
		return nil, err
	}

	tx, err := r.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	order, err := r.OrderService.Create(tx, req.UserID, req.Symbol, side, orderType, req.Quantity, req.LimitPrice)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}
	return orderResponse(order), nil
}

func (r resolverHandler) FillOrder(orderID uuid.UUID, req types.FillOrderRequest) (*types.OrderResponse, error) {
	tx, err := r.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	order, err := r.OrderService.Fill(tx, orderID, req.Quantity)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}
	return orderResponse(order), nil
}

func (r resolverHandler) CancelOrder(orderID uuid.UUID) (*types.OrderResponse, error) {
	tx, err := r.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	order, err := r.OrderService.Cancel(tx, orderID)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}
	return orderResponse(order), nil
}

func (r resolverHandler) RejectOrder(orderID uuid.UUID) (*types.OrderResponse, error) {
	tx, err := r.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	order, err := r.OrderService.Reject(tx, orderID)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}
	return orderResponse(order), nil
}

func (r resolverHandler) ListActiveOrders(userID uuid.UUID) ([]types.OrderResponse, error) {
	tx, err := r.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	orders, err := r.OrderService.ListActive(tx, userID)
	if err != nil {
		return nil, err
	}

	out := []types.OrderResponse{}
	for i := range orders {
		out = append(out, *orderResponse(&orders[i]))
	}
	return out, nil
}
