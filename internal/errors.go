package finflow_errors

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates the requested aggregate does not exist.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ErrConflict indicates the operation would violate a uniqueness rule,
// e.g. creating a second account for the same user.
type ErrConflict struct {
	Resource string
	Message  string
}

func (e ErrConflict) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Message)
	}
	return fmt.Sprintf("%s already exists", e.Resource)
}

// ErrInvalidArgument indicates a caller-supplied value failed validation
// before any state was mutated.
type ErrInvalidArgument struct {
	Field   string
	Message string
}

func (e ErrInvalidArgument) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ErrInsufficientFunds indicates a withdrawal or purchase exceeds the
// account's cash balance.
type ErrInsufficientFunds struct {
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e ErrInsufficientFunds) Error() string {
	return fmt.Sprintf("insufficient funds: requested %s, available %s", e.Requested, e.Available)
}

// ErrInsufficientPosition indicates a sell exceeds the held quantity.
type ErrInsufficientPosition struct {
	Symbol    string
	Requested decimal.Decimal
	Held      decimal.Decimal
}

func (e ErrInsufficientPosition) Error() string {
	return fmt.Sprintf("insufficient position in %s: requested %s, held %s", e.Symbol, e.Requested, e.Held)
}

// ErrInvalidStateTransition indicates an order lifecycle event was applied
// to an order in a state that does not permit it.
type ErrInvalidStateTransition struct {
	OrderID string
	From    string
	Event   string
}

func (e ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("cannot %s order %s in state %s", e.Event, e.OrderID, e.From)
}
