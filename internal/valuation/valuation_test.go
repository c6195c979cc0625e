package valuation

import (
	"testing"
	"time"

	"finflow/internal/db/models/postgres/public/model"
	"finflow/internal/domain"
	"finflow/internal/ledger"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

var testTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func buy(t *testing.T, account *domain.PortfolioAccount, symbol string, qty, price float64, assetType model.AssetType) *domain.Holding {
	t.Helper()
	require.NoError(t, account.DebitCash(dec(qty).Mul(dec(price)), testTime))
	holding, err := ledger.OpenOrIncrease(account, symbol, dec(qty), dec(price), assetType, nil, testTime)
	require.NoError(t, err)
	return holding
}

func Test_Recalculate(t *testing.T) {
	t.Run("total value is cash plus holdings", func(t *testing.T) {
		account, err := domain.NewPortfolioAccount(uuid.New(), "main", dec(50000), testTime)
		require.NoError(t, err)

		aapl := buy(t, account, "AAPL", 10, 100, model.AssetType_Stock)
		btc := buy(t, account, "BTC", 0.5, 40000, model.AssetType_Crypto)

		Recalculate(account, testTime)

		// everything still marked at the buy prices
		require.Equal(t, "", cmp.Diff(dec(29000), account.CashBalance))
		require.Equal(t, "", cmp.Diff(dec(50000), account.TotalValue))
		require.Equal(t, "", cmp.Diff(decimal.Zero, account.TotalGainLoss))
		require.Equal(t, "", cmp.Diff(decimal.Zero, account.TotalGainLossPercent))

		aapl.MarkPrice(dec(150), testTime)
		btc.MarkPrice(dec(30000), testTime)

		Recalculate(account, testTime)

		require.Equal(t, "", cmp.Diff(dec(45500), account.TotalValue))
		require.Equal(t, "", cmp.Diff(dec(-4500), account.TotalGainLoss))
		require.Equal(t, "", cmp.Diff(dec(-21.4286), account.TotalGainLossPercent))
	})

	t.Run("idempotent", func(t *testing.T) {
		account, err := domain.NewPortfolioAccount(uuid.New(), "main", dec(50000), testTime)
		require.NoError(t, err)
		buy(t, account, "AAPL", 10, 100, model.AssetType_Stock)

		Recalculate(account, testTime)
		first := account.TotalValue
		Recalculate(account, testTime)

		require.Equal(t, "", cmp.Diff(first, account.TotalValue))
	})

	t.Run("closing the last holding resets the percentage", func(t *testing.T) {
		account, err := domain.NewPortfolioAccount(uuid.New(), "main", dec(10000), testTime)
		require.NoError(t, err)

		buy(t, account, "AAPL", 10, 100, model.AssetType_Stock)
		holding, ok := account.Holding("AAPL")
		require.True(t, ok)
		holding.MarkPrice(dec(150), testTime)
		Recalculate(account, testTime)
		require.Equal(t, "", cmp.Diff(dec(50), account.TotalGainLossPercent))

		_, err = ledger.Decrease(account, "AAPL", dec(10), dec(150), testTime)
		require.NoError(t, err)
		account.CreditCash(dec(1500), testTime)
		Recalculate(account, testTime)

		require.Equal(t, "", cmp.Diff(decimal.Zero, account.TotalGainLoss))
		require.Equal(t, "", cmp.Diff(decimal.Zero, account.TotalGainLossPercent))
		require.Equal(t, "", cmp.Diff(dec(10500), account.TotalValue))
	})
}
