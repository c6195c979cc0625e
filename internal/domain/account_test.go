package domain

import (
	"testing"

	finflow_errors "finflow/internal"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_NewPortfolioAccount(t *testing.T) {
	t.Run("initial cash seeds all balances", func(t *testing.T) {
		account, err := NewPortfolioAccount(uuid.New(), "main", dec(1000), testTime)
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(dec(1000), account.CashBalance))
		require.Equal(t, "", cmp.Diff(dec(1000), account.BuyingPower))
		require.Equal(t, "", cmp.Diff(dec(1000), account.TotalValue))
		require.Empty(t, account.Holdings)
	})

	t.Run("negative initial cash", func(t *testing.T) {
		_, err := NewPortfolioAccount(uuid.New(), "main", dec(-1), testTime)

		var invalidArgument finflow_errors.ErrInvalidArgument
		require.ErrorAs(t, err, &invalidArgument)
	})
}

func Test_Deposit(t *testing.T) {
	account, err := NewPortfolioAccount(uuid.New(), "main", dec(100), testTime)
	require.NoError(t, err)

	require.NoError(t, account.Deposit(dec(50), testTime))
	require.Equal(t, "", cmp.Diff(dec(150), account.CashBalance))
	require.Equal(t, "", cmp.Diff(dec(150), account.BuyingPower))
	require.Equal(t, "", cmp.Diff(dec(150), account.TotalValue))

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		var invalidArgument finflow_errors.ErrInvalidArgument
		require.ErrorAs(t, account.Deposit(decimal.Zero, testTime), &invalidArgument)
		require.ErrorAs(t, account.Deposit(dec(-5), testTime), &invalidArgument)
	})
}

func Test_Withdraw(t *testing.T) {
	account, err := NewPortfolioAccount(uuid.New(), "main", dec(100), testTime)
	require.NoError(t, err)

	require.NoError(t, account.Withdraw(dec(40), testTime))
	require.Equal(t, "", cmp.Diff(dec(60), account.CashBalance))

	t.Run("insufficient funds leaves balance unchanged", func(t *testing.T) {
		err := account.Withdraw(dec(1000), testTime)

		var insufficientFunds finflow_errors.ErrInsufficientFunds
		require.ErrorAs(t, err, &insufficientFunds)
		require.Equal(t, "", cmp.Diff(dec(60), account.CashBalance))
	})
}

func Test_DebitCash(t *testing.T) {
	account, err := NewPortfolioAccount(uuid.New(), "main", dec(100), testTime)
	require.NoError(t, err)

	require.NoError(t, account.DebitCash(dec(100), testTime))
	require.Equal(t, "", cmp.Diff(decimal.Zero, account.CashBalance))

	var insufficientFunds finflow_errors.ErrInsufficientFunds
	require.ErrorAs(t, account.DebitCash(dec(0.01), testTime), &insufficientFunds)
}

func Test_HoldingLookupIsCaseInsensitive(t *testing.T) {
	account, err := NewPortfolioAccount(uuid.New(), "main", dec(100), testTime)
	require.NoError(t, err)

	account.AddHolding(testHolding(10, 100))

	h, ok := account.Holding(" aapl ")
	require.True(t, ok)
	require.Equal(t, "AAPL", h.Symbol)
}
