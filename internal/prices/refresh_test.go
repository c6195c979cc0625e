package prices

import (
	"fmt"
	"testing"
	"time"

	"finflow/internal/db/models/postgres/public/model"
	"finflow/internal/domain"
	"finflow/internal/ledger"
	"finflow/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

var testTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type stubPriceSource map[string]decimal.Decimal

func (s stubPriceSource) GetLatestPrice(symbol string) (*Quote, error) {
	price, ok := s[symbol]
	if !ok {
		return nil, fmt.Errorf("no quote for %s", symbol)
	}
	return &Quote{Symbol: symbol, Price: price, AsOf: testTime}, nil
}

func Test_RefreshHoldingPrices(t *testing.T) {
	t.Run("marks every holding and recalculates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		accountRepository := repository.NewMockAccountRepository(ctrl)
		holdingRepository := repository.NewMockHoldingRepository(ctrl)

		account, err := domain.NewPortfolioAccount(uuid.New(), "main", dec(10000), testTime)
		require.NoError(t, err)
		require.NoError(t, account.DebitCash(dec(1000), testTime))
		_, err = ledger.OpenOrIncrease(account, "AAPL", dec(10), dec(100), model.AssetType_Stock, nil, testTime)
		require.NoError(t, err)

		accountRepository.EXPECT().Get(gomock.Nil(), account.AccountID).Return(account, nil)
		holdingRepository.EXPECT().Update(gomock.Nil(), gomock.Any()).Return(nil)
		accountRepository.EXPECT().Update(gomock.Nil(), account).Return(nil)

		source := stubPriceSource{"AAPL": dec(150)}
		out, err := RefreshHoldingPrices(nil, accountRepository, holdingRepository, source, account.AccountID, testTime)
		require.NoError(t, err)

		holding := out.Holdings["AAPL"]
		require.Equal(t, "", cmp.Diff(dec(1500), holding.MarketValue))
		require.Equal(t, "", cmp.Diff(dec(500), holding.UnrealizedPnl))
		require.Equal(t, "", cmp.Diff(dec(10500), out.TotalValue))
		require.Equal(t, "", cmp.Diff(dec(50), out.TotalGainLossPercent))
	})

	t.Run("missing quote aborts the refresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		accountRepository := repository.NewMockAccountRepository(ctrl)
		holdingRepository := repository.NewMockHoldingRepository(ctrl)

		account, err := domain.NewPortfolioAccount(uuid.New(), "main", dec(10000), testTime)
		require.NoError(t, err)
		_, err = ledger.OpenOrIncrease(account, "ZZZZ", dec(1), dec(10), model.AssetType_Stock, nil, testTime)
		require.NoError(t, err)

		accountRepository.EXPECT().Get(gomock.Nil(), account.AccountID).Return(account, nil)

		_, err = RefreshHoldingPrices(nil, accountRepository, holdingRepository, stubPriceSource{}, account.AccountID, testTime)
		require.Error(t, err)
	})
}

func Test_cleanResponseBody(t *testing.T) {
	in := []byte(`{"Global Quote": {"01. symbol": "AAPL", "05. price": "150.0000"}}`)
	out := cleanResponseBody(in)
	require.Equal(t, `{"Global Quote": {"symbol": "AAPL", "price": "150.0000"}}`, string(out))
}
