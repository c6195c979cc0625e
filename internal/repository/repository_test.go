package repository

import (
	"database/sql"
	"os"
	"testing"
	"time"

	finflow_errors "finflow/internal"
	"finflow/internal/db/models/postgres/public/model"
	db "finflow/internal/db/query"
	"finflow/internal/domain"
	"finflow/internal/ledger"
	"finflow/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var repoTestTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func testTx(t *testing.T) *sql.Tx {
	t.Helper()
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	dbConn, err := db.NewTest()
	require.NoError(t, err)
	tx, err := dbConn.Begin()
	require.NoError(t, err)
	db.RollbackAfterTest(t, tx)
	return tx
}

func addTestUser(t *testing.T, tx *sql.Tx) *domain.User {
	t.Helper()
	user := domain.NewUser(uuid.New().String()+"@example.com", nil, repoTestTime)
	require.NoError(t, NewUserRepository().Create(tx, user))
	return user
}

func TestAccountRepository(t *testing.T) {
	t.Run("round trip with holdings", func(t *testing.T) {
		tx := testTx(t)
		user := addTestUser(t, tx)

		accountRepository := NewAccountRepository()
		holdingRepository := NewHoldingRepository()

		account, err := domain.NewPortfolioAccount(user.UserID, "main", decimal.NewFromInt(10000), repoTestTime)
		require.NoError(t, err)
		require.NoError(t, accountRepository.Create(tx, account))

		holding, err := ledger.OpenOrIncrease(account, "AAPL", decimal.NewFromInt(10), decimal.NewFromInt(100), model.AssetType_Stock, util.StringPtr("NASDAQ"), repoTestTime)
		require.NoError(t, err)
		holding.CurrentPrice = util.DecimalPtr(decimal.NewFromInt(120))
		require.NoError(t, holdingRepository.Insert(tx, holding))

		loaded, err := accountRepository.Get(tx, account.AccountID)
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(account.CashBalance, loaded.CashBalance))
		require.Len(t, loaded.Holdings, 1)
		require.Equal(t, "", cmp.Diff(holding.Quantity, loaded.Holdings["AAPL"].Quantity))
		require.Equal(t, "", cmp.Diff(*holding.CurrentPrice, *loaded.Holdings["AAPL"].CurrentPrice))

		byUser, err := accountRepository.GetByUserID(tx, user.UserID)
		require.NoError(t, err)
		require.Equal(t, account.AccountID, byUser.AccountID)
	})

	t.Run("get missing account", func(t *testing.T) {
		tx := testTx(t)

		_, err := NewAccountRepository().Get(tx, uuid.New())
		var notFound finflow_errors.ErrNotFound
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("delete cascades to holdings", func(t *testing.T) {
		tx := testTx(t)
		user := addTestUser(t, tx)

		accountRepository := NewAccountRepository()
		holdingRepository := NewHoldingRepository()

		account, err := domain.NewPortfolioAccount(user.UserID, "main", decimal.NewFromInt(10000), repoTestTime)
		require.NoError(t, err)
		require.NoError(t, accountRepository.Create(tx, account))
		holding, err := ledger.OpenOrIncrease(account, "AAPL", decimal.NewFromInt(10), decimal.NewFromInt(100), model.AssetType_Stock, nil, repoTestTime)
		require.NoError(t, err)
		require.NoError(t, holdingRepository.Insert(tx, holding))

		require.NoError(t, accountRepository.Delete(tx, account.AccountID))

		holdings, err := holdingRepository.ListByUserID(tx, user.UserID)
		require.NoError(t, err)
		require.Empty(t, holdings)
	})
}

func TestOrderRepository(t *testing.T) {
	t.Run("active orders exclude terminal states", func(t *testing.T) {
		tx := testTx(t)
		user := addTestUser(t, tx)

		orderRepository := NewOrderRepository()

		active, err := domain.NewOrder(user.UserID, "AAPL", model.OrderSide_Buy, model.OrderType_Limit, decimal.NewFromInt(10), nil, repoTestTime)
		require.NoError(t, err)
		require.NoError(t, orderRepository.Create(tx, active))

		cancelled, err := domain.NewOrder(user.UserID, "MSFT", model.OrderSide_Sell, model.OrderType_Market, decimal.NewFromInt(5), nil, repoTestTime)
		require.NoError(t, err)
		require.NoError(t, cancelled.Cancel(repoTestTime))
		require.NoError(t, orderRepository.Create(tx, cancelled))

		orders, err := orderRepository.ListActiveByUserID(tx, user.UserID)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		require.Equal(t, active.OrderID, orders[0].OrderID)
	})

	t.Run("update persists fill progress", func(t *testing.T) {
		tx := testTx(t)
		user := addTestUser(t, tx)

		orderRepository := NewOrderRepository()

		order, err := domain.NewOrder(user.UserID, "AAPL", model.OrderSide_Buy, model.OrderType_Market, decimal.NewFromInt(10), nil, repoTestTime)
		require.NoError(t, err)
		require.NoError(t, orderRepository.Create(tx, order))

		require.NoError(t, order.Fill(decimal.NewFromInt(4), repoTestTime))
		require.NoError(t, orderRepository.Update(tx, order))

		loaded, err := orderRepository.Get(tx, order.OrderID)
		require.NoError(t, err)
		require.Equal(t, model.OrderStatus_Partial, loaded.Status)
		require.Equal(t, "", cmp.Diff(decimal.NewFromInt(6), loaded.RemainingQuantity))
	})
}

func TestExternalAccountRepository(t *testing.T) {
	t.Run("token expiry scan", func(t *testing.T) {
		tx := testTx(t)
		user := addTestUser(t, tx)

		externalAccountRepository := NewExternalAccountRepository()

		expired := domain.NewExternalAccount(user.UserID, model.ExternalPlatform_Alpaca, "", repoTestTime)
		expiry := repoTestTime.Add(-time.Hour)
		expired.Connect("token", "", &expiry, repoTestTime)
		require.NoError(t, externalAccountRepository.Create(tx, expired))

		fresh := domain.NewExternalAccount(user.UserID, model.ExternalPlatform_Coinbase, "", repoTestTime)
		freshExpiry := repoTestTime.Add(time.Hour)
		fresh.Connect("token", "", &freshExpiry, repoTestTime)
		require.NoError(t, externalAccountRepository.Create(tx, fresh))

		needing, err := externalAccountRepository.ListNeedingTokenRefresh(tx, repoTestTime)
		require.NoError(t, err)

		ids := map[uuid.UUID]bool{}
		for _, a := range needing {
			ids[a.ExternalAccountID] = true
		}
		require.True(t, ids[expired.ExternalAccountID])
		require.False(t, ids[fresh.ExternalAccountID])
	})
}
