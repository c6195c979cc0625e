package service

import (
	"testing"

	finflow_errors "finflow/internal"
	"finflow/internal/clock"
	"finflow/internal/db/models/postgres/public/model"
	"finflow/internal/domain"
	"finflow/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newOrderService(t *testing.T) (OrderService, *repository.MockOrderRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	orderRepository := repository.NewMockOrderRepository(ctrl)
	return NewOrderService(orderRepository, clock.NewFixed(testTime)), orderRepository
}

func pendingOrder(t *testing.T, qty float64) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder(uuid.New(), "AAPL", model.OrderSide_Buy, model.OrderType_Limit, dec(qty), nil, testTime)
	require.NoError(t, err)
	return order
}

func Test_OrderCreate(t *testing.T) {
	svc, orderRepository := newOrderService(t)
	userID := uuid.New()

	orderRepository.EXPECT().Create(gomock.Nil(), gomock.Any()).Return(nil)

	order, err := svc.Create(nil, userID, "aapl", model.OrderSide_Buy, model.OrderType_Market, dec(10), nil)
	require.NoError(t, err)

	require.Equal(t, "AAPL", order.Symbol)
	require.Equal(t, model.OrderStatus_Pending, order.Status)
	require.Equal(t, "", cmp.Diff(dec(10), order.RemainingQuantity))
}

func Test_OrderFill(t *testing.T) {
	t.Run("partial then complete", func(t *testing.T) {
		svc, orderRepository := newOrderService(t)
		order := pendingOrder(t, 10)

		orderRepository.EXPECT().Get(gomock.Nil(), order.OrderID).Return(order, nil).Times(2)
		orderRepository.EXPECT().Update(gomock.Nil(), order).Return(nil).Times(2)

		out, err := svc.Fill(nil, order.OrderID, dec(4))
		require.NoError(t, err)
		require.Equal(t, model.OrderStatus_Partial, out.Status)

		out, err = svc.Fill(nil, order.OrderID, dec(6))
		require.NoError(t, err)
		require.Equal(t, model.OrderStatus_Filled, out.Status)
		require.NotNil(t, out.FilledAt)
	})

	t.Run("fill on cancelled order fails", func(t *testing.T) {
		svc, orderRepository := newOrderService(t)
		order := pendingOrder(t, 10)
		require.NoError(t, order.Cancel(testTime))

		orderRepository.EXPECT().Get(gomock.Nil(), order.OrderID).Return(order, nil)

		_, err := svc.Fill(nil, order.OrderID, dec(1))
		var invalidTransition finflow_errors.ErrInvalidStateTransition
		require.ErrorAs(t, err, &invalidTransition)
	})
}

func Test_OrderCancel(t *testing.T) {
	svc, orderRepository := newOrderService(t)
	order := pendingOrder(t, 10)

	orderRepository.EXPECT().Get(gomock.Nil(), order.OrderID).Return(order, nil)
	orderRepository.EXPECT().Update(gomock.Nil(), order).Return(nil)

	out, err := svc.Cancel(nil, order.OrderID)
	require.NoError(t, err)
	require.Equal(t, model.OrderStatus_Cancelled, out.Status)
}

func Test_OrderReject(t *testing.T) {
	t.Run("pending only", func(t *testing.T) {
		svc, orderRepository := newOrderService(t)
		order := pendingOrder(t, 10)
		require.NoError(t, order.Fill(dec(1), testTime))

		orderRepository.EXPECT().Get(gomock.Nil(), order.OrderID).Return(order, nil)

		_, err := svc.Reject(nil, order.OrderID)
		var invalidTransition finflow_errors.ErrInvalidStateTransition
		require.ErrorAs(t, err, &invalidTransition)
	})
}
