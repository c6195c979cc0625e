package domain

import (
	"testing"

	finflow_errors "finflow/internal"
	"finflow/internal/db/models/postgres/public/model"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testOrder(t *testing.T, qty float64) *Order {
	t.Helper()
	order, err := NewOrder(uuid.New(), "aapl", model.OrderSide_Buy, model.OrderType_Market, dec(qty), nil, testTime)
	require.NoError(t, err)
	return order
}

func Test_NewOrder(t *testing.T) {
	order := testOrder(t, 10)

	require.Equal(t, "AAPL", order.Symbol)
	require.Equal(t, model.OrderStatus_Pending, order.Status)
	require.Equal(t, "", cmp.Diff(dec(10), order.RemainingQuantity))
	require.Equal(t, "", cmp.Diff(decimal.Zero, order.FilledQuantity))

	t.Run("non-positive quantity", func(t *testing.T) {
		_, err := NewOrder(uuid.New(), "AAPL", model.OrderSide_Buy, model.OrderType_Market, decimal.Zero, nil, testTime)

		var invalidArgument finflow_errors.ErrInvalidArgument
		require.ErrorAs(t, err, &invalidArgument)
	})
}

func Test_Fill(t *testing.T) {
	t.Run("partial then complete", func(t *testing.T) {
		order := testOrder(t, 10)

		require.NoError(t, order.Fill(dec(4), testTime))
		require.Equal(t, model.OrderStatus_Partial, order.Status)
		require.Equal(t, "", cmp.Diff(dec(6), order.RemainingQuantity))
		require.Nil(t, order.FilledAt)

		require.NoError(t, order.Fill(dec(6), testTime))
		require.Equal(t, model.OrderStatus_Filled, order.Status)
		require.Equal(t, "", cmp.Diff(decimal.Zero, order.RemainingQuantity))
		require.NotNil(t, order.FilledAt)
	})

	t.Run("overfill", func(t *testing.T) {
		order := testOrder(t, 10)

		err := order.Fill(dec(11), testTime)
		var invalidArgument finflow_errors.ErrInvalidArgument
		require.ErrorAs(t, err, &invalidArgument)
		require.Equal(t, model.OrderStatus_Pending, order.Status)
	})

	t.Run("terminal order rejects fills", func(t *testing.T) {
		order := testOrder(t, 10)
		require.NoError(t, order.Fill(dec(10), testTime))

		err := order.Fill(dec(1), testTime)
		var invalidTransition finflow_errors.ErrInvalidStateTransition
		require.ErrorAs(t, err, &invalidTransition)
	})
}

func Test_Cancel(t *testing.T) {
	t.Run("from pending", func(t *testing.T) {
		order := testOrder(t, 10)

		require.NoError(t, order.Cancel(testTime))
		require.Equal(t, model.OrderStatus_Cancelled, order.Status)
		require.NotNil(t, order.CancelledAt)
	})

	t.Run("from partial", func(t *testing.T) {
		order := testOrder(t, 10)
		require.NoError(t, order.Fill(dec(4), testTime))

		require.NoError(t, order.Cancel(testTime))
		require.Equal(t, model.OrderStatus_Cancelled, order.Status)
	})

	t.Run("not from filled", func(t *testing.T) {
		order := testOrder(t, 10)
		require.NoError(t, order.Fill(dec(10), testTime))

		var invalidTransition finflow_errors.ErrInvalidStateTransition
		require.ErrorAs(t, order.Cancel(testTime), &invalidTransition)
	})
}

func Test_Reject(t *testing.T) {
	t.Run("from pending", func(t *testing.T) {
		order := testOrder(t, 10)

		require.NoError(t, order.Reject(testTime))
		require.Equal(t, model.OrderStatus_Rejected, order.Status)
	})

	t.Run("not from partial", func(t *testing.T) {
		order := testOrder(t, 10)
		require.NoError(t, order.Fill(dec(4), testTime))

		var invalidTransition finflow_errors.ErrInvalidStateTransition
		require.ErrorAs(t, order.Reject(testTime), &invalidTransition)
	})
}
