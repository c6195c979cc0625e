package domain

import (
	"testing"
	"time"

	"finflow/internal/db/models/postgres/public/model"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

var testTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func testHolding(qty, avgCost float64) *Holding {
	return &Holding{
		Symbol:      "AAPL",
		Quantity:    dec(qty),
		AverageCost: dec(avgCost),
		AssetType:   model.AssetType_Stock,
	}
}

func Test_AddToPosition(t *testing.T) {
	t.Run("weighted average cost", func(t *testing.T) {
		h := testHolding(10, 100)
		h.AddToPosition(dec(5), dec(130), testTime)

		require.Equal(t, "", cmp.Diff(dec(15), h.Quantity))
		require.Equal(t, "", cmp.Diff(dec(110), h.AverageCost))
	})

	t.Run("fractional quantities round to quantity scale", func(t *testing.T) {
		h := testHolding(0.1, 30000)
		h.AddToPosition(dec(0.2), dec(33000), testTime)

		require.Equal(t, "", cmp.Diff(dec(0.3), h.Quantity))
		require.Equal(t, "", cmp.Diff(dec(32000), h.AverageCost))
	})

	t.Run("re-marks when price known", func(t *testing.T) {
		h := testHolding(10, 100)
		h.MarkPrice(dec(150), testTime)
		h.AddToPosition(dec(5), dec(130), testTime)

		require.Equal(t, "", cmp.Diff(dec(2250), h.MarketValue))
		require.Equal(t, "", cmp.Diff(dec(600), h.UnrealizedPnl))
	})
}

func Test_MarkPrice(t *testing.T) {
	h := testHolding(10, 100)
	h.AddToPosition(dec(5), dec(130), testTime)
	h.MarkPrice(dec(150), testTime)

	require.Equal(t, "", cmp.Diff(dec(2250), h.MarketValue))
	require.Equal(t, "", cmp.Diff(dec(600), h.UnrealizedPnl))
	require.Equal(t, "", cmp.Diff(dec(36.3636), h.UnrealizedPnlPercent))
	require.NotNil(t, h.CurrentPrice)
	require.Equal(t, "", cmp.Diff(dec(150), *h.CurrentPrice))
}

func Test_ReducePosition(t *testing.T) {
	h := testHolding(15, 110)
	h.MarkPrice(dec(150), testTime)
	h.ReducePosition(dec(5), testTime)

	require.Equal(t, "", cmp.Diff(dec(10), h.Quantity))
	// average cost is untouched by sales
	require.Equal(t, "", cmp.Diff(dec(110), h.AverageCost))
	require.Equal(t, "", cmp.Diff(dec(1500), h.MarketValue))
	require.Equal(t, "", cmp.Diff(dec(400), h.UnrealizedPnl))
}

func Test_NormalizeSymbol(t *testing.T) {
	require.Equal(t, "AAPL", NormalizeSymbol(" aapl "))
	require.Equal(t, "BRK.B", NormalizeSymbol("brk.b"))
}

func Test_PercentOf(t *testing.T) {
	t.Run("rounds at money scale", func(t *testing.T) {
		require.Equal(t, "", cmp.Diff(dec(36.3636), PercentOf(dec(600), dec(1650))))
	})

	t.Run("zero when whole is not positive", func(t *testing.T) {
		require.Equal(t, "", cmp.Diff(decimal.Zero, PercentOf(dec(600), decimal.Zero)))
		require.Equal(t, "", cmp.Diff(decimal.Zero, PercentOf(dec(600), dec(-10))))
	})
}
