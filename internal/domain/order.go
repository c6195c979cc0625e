package domain

import (
	"time"

	finflow_errors "finflow/internal"
	"finflow/internal/db/models/postgres/public/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order tracks fill progress against an external execution venue. It is an
// independent aggregate; nothing here touches the portfolio account.
//
// Lifecycle: PENDING -> PARTIAL -> FILLED, with CANCELLED reachable from
// PENDING or PARTIAL and REJECTED reachable from PENDING only. FILLED,
// CANCELLED and REJECTED are terminal.
type Order struct {
	OrderID           uuid.UUID
	UserID            uuid.UUID
	Symbol            string
	Side              model.OrderSide
	Type              model.OrderType
	Quantity          decimal.Decimal
	FilledQuantity    decimal.Decimal
	RemainingQuantity decimal.Decimal
	LimitPrice        *decimal.Decimal
	Status            model.OrderStatus
	Exchange          *string
	ExternalID        *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	FilledAt          *time.Time
	CancelledAt       *time.Time
}

func NewOrder(userID uuid.UUID, symbol string, side model.OrderSide, orderType model.OrderType, qty decimal.Decimal, limitPrice *decimal.Decimal, now time.Time) (*Order, error) {
	if !qty.IsPositive() {
		return nil, finflow_errors.ErrInvalidArgument{Field: "quantity", Message: "order quantity must be positive"}
	}
	return &Order{
		OrderID:           uuid.New(),
		UserID:            userID,
		Symbol:            NormalizeSymbol(symbol),
		Side:              side,
		Type:              orderType,
		Quantity:          RoundQuantity(qty),
		FilledQuantity:    decimal.Zero,
		RemainingQuantity: RoundQuantity(qty),
		LimitPrice:        limitPrice,
		Status:            model.OrderStatus_Pending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// IsActive reports whether the order can still receive fills.
func (o *Order) IsActive() bool {
	return o.Status == model.OrderStatus_Pending || o.Status == model.OrderStatus_Partial
}

// Fill applies a fill of qty shares. Remaining quantity reaching exactly
// zero is the only transition to FILLED.
func (o *Order) Fill(qty decimal.Decimal, now time.Time) error {
	if !o.IsActive() {
		return finflow_errors.ErrInvalidStateTransition{OrderID: o.OrderID.String(), From: o.Status.String(), Event: "fill"}
	}
	if !qty.IsPositive() {
		return finflow_errors.ErrInvalidArgument{Field: "quantity", Message: "fill quantity must be positive"}
	}
	if qty.GreaterThan(o.RemainingQuantity) {
		return finflow_errors.ErrInvalidArgument{Field: "quantity", Message: "fill quantity exceeds remaining quantity"}
	}

	o.FilledQuantity = RoundQuantity(o.FilledQuantity.Add(qty))
	o.RemainingQuantity = RoundQuantity(o.Quantity.Sub(o.FilledQuantity))
	o.UpdatedAt = now

	if o.RemainingQuantity.IsZero() {
		o.Status = model.OrderStatus_Filled
		t := now
		o.FilledAt = &t
	} else {
		o.Status = model.OrderStatus_Partial
	}
	return nil
}

// Cancel is allowed from PENDING or PARTIAL only.
func (o *Order) Cancel(now time.Time) error {
	if !o.IsActive() {
		return finflow_errors.ErrInvalidStateTransition{OrderID: o.OrderID.String(), From: o.Status.String(), Event: "cancel"}
	}
	o.Status = model.OrderStatus_Cancelled
	t := now
	o.CancelledAt = &t
	o.UpdatedAt = now
	return nil
}

// Reject is allowed from PENDING only.
func (o *Order) Reject(now time.Time) error {
	if o.Status != model.OrderStatus_Pending {
		return finflow_errors.ErrInvalidStateTransition{OrderID: o.OrderID.String(), From: o.Status.String(), Event: "reject"}
	}
	o.Status = model.OrderStatus_Rejected
	o.UpdatedAt = now
	return nil
}

func (o *Order) IsFilled() bool {
	return o.Status == model.OrderStatus_Filled
}

func (o *Order) IsCancelled() bool {
	return o.Status == model.OrderStatus_Cancelled
}
