package service

import (
	"testing"
	"time"

	finflow_errors "finflow/internal"
	"finflow/internal/clock"
	"finflow/internal/db/models/postgres/public/model"
	"finflow/internal/domain"
	"finflow/internal/events"
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

type portfolioServiceMocks struct {
	userRepository    *repository.MockUserRepository
	accountRepository *repository.MockAccountRepository
	holdingRepository *repository.MockHoldingRepository
	publisher         *events.MockPublisher
}

func newPortfolioService(t *testing.T) (PortfolioService, portfolioServiceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := portfolioServiceMocks{
		userRepository:    repository.NewMockUserRepository(ctrl),
		accountRepository: repository.NewMockAccountRepository(ctrl),
		holdingRepository: repository.NewMockHoldingRepository(ctrl),
		publisher:         events.NewMockPublisher(ctrl),
	}
	svc := NewPortfolioService(
		mocks.userRepository,
		mocks.accountRepository,
		mocks.holdingRepository,
		mocks.publisher,
		clock.NewFixed(testTime),
	)
	return svc, mocks
}

func testAccount(t *testing.T, cash float64) *domain.PortfolioAccount {
	t.Helper()
	account, err := domain.NewPortfolioAccount(uuid.New(), "main", dec(cash), testTime)
	require.NoError(t, err)
	return account
}

func Test_Create(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		svc, mocks := newPortfolioService(t)
		userID := uuid.New()

		mocks.userRepository.EXPECT().Exists(gomock.Nil(), userID).Return(true, nil)
		mocks.accountRepository.EXPECT().ExistsByUserID(gomock.Nil(), userID).Return(false, nil)
		mocks.accountRepository.EXPECT().Create(gomock.Nil(), gomock.Any()).Return(nil)
		mocks.publisher.EXPECT().PortfolioUpdated(gomock.Any(), gomock.Any())

		account, err := svc.Create(nil, userID, "main", dec(1000))
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff(dec(1000), account.CashBalance))
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, mocks := newPortfolioService(t)
		userID := uuid.New()

		mocks.userRepository.EXPECT().Exists(gomock.Nil(), userID).Return(false, nil)

		_, err := svc.Create(nil, userID, "main", dec(1000))
		var notFound finflow_errors.ErrNotFound
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("second account for user", func(t *testing.T) {
		svc, mocks := newPortfolioService(t)
		userID := uuid.New()

		mocks.userRepository.EXPECT().Exists(gomock.Nil(), userID).Return(true, nil)
		mocks.accountRepository.EXPECT().ExistsByUserID(gomock.Nil(), userID).Return(true, nil)

		_, err := svc.Create(nil, userID, "main", dec(1000))
		var conflict finflow_errors.ErrConflict
		require.ErrorAs(t, err, &conflict)
	})
}

func Test_Buy(t *testing.T) {
	t.Run("new position", func(t *testing.T) {
		svc, mocks := newPortfolioService(t)
		account := testAccount(t, 10000)

		mocks.accountRepository.EXPECT().Get(gomock.Nil(), account.AccountID).Return(account, nil)
		mocks.holdingRepository.EXPECT().Insert(gomock.Nil(), gomock.Any()).Return(nil)
		mocks.accountRepository.EXPECT().Update(gomock.Nil(), account).Return(nil)
		mocks.publisher.EXPECT().PortfolioUpdated(gomock.Any(), gomock.Any())

		out, err := svc.Buy(nil, account.AccountID, "aapl", dec(10), dec(100), model.AssetType_Stock, nil)
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(dec(9000), out.CashBalance))
		holding, ok := out.Holding("AAPL")
		require.True(t, ok)
		require.Equal(t, "", cmp.Diff(dec(10), holding.Quantity))
		// buy at market keeps total value flat
		require.Equal(t, "", cmp.Diff(dec(10000), out.TotalValue))
	})

	t.Run("existing position updates the row", func(t *testing.T) {
		svc, mocks := newPortfolioService(t)
		account := testAccount(t, 10000)

		mocks.accountRepository.EXPECT().Get(gomock.Nil(), account.AccountID).Return(account, nil)
		mocks.holdingRepository.EXPECT().Insert(gomock.Nil(), gomock.Any()).Return(nil)
		mocks.accountRepository.EXPECT().Update(gomock.Nil(), account).Return(nil)
		mocks.publisher.EXPECT().PortfolioUpdated(gomock.Any(), gomock.Any())
		_, err := svc.Buy(nil, account.AccountID, "AAPL", dec(10), dec(100), model.AssetType_Stock, nil)
		require.NoError(t, err)

		mocks.accountRepository.EXPECT().Get(gomock.Nil(), account.AccountID).Return(account, nil)
		mocks.holdingRepository.EXPECT().Update(gomock.Nil(), gomock.Any()).Return(nil)
		mocks.accountRepository.EXPECT().Update(gomock.Nil(), account).Return(nil)
		mocks.publisher.EXPECT().PortfolioUpdated(gomock.Any(), gomock.Any())

		out, err := svc.Buy(nil, account.AccountID, "AAPL", dec(5), dec(130), model.AssetType_Stock, nil)
		require.NoError(t, err)

		holding, ok := out.Holding("AAPL")
		require.True(t, ok)
		require.Equal(t, "", cmp.Diff(dec(110), holding.AverageCost))
	})

	t.Run("insufficient funds", func(t *testing.T) {
		svc, mocks := newPortfolioService(t)
		account := testAccount(t, 500)

		mocks.accountRepository.EXPECT().Get(gomock.Nil(), account.AccountID).Return(account, nil)

		_, err := svc.Buy(nil, account.AccountID, "AAPL", dec(10), dec(100), model.AssetType_Stock, nil)
		var insufficientFunds finflow_errors.ErrInsufficientFunds
		require.ErrorAs(t, err, &insufficientFunds)
		require.Equal(t, "", cmp.Diff(dec(500), account.CashBalance))
	})
}

func Test_Sell(t *testing.T) {
	setupAccount := func(t *testing.T) *domain.PortfolioAccount {
		t.Helper()
		account := testAccount(t, 9000)
		account.AddHolding(&domain.Holding{
			HoldingID:   uuid.New(),
			UserID:      account.UserID,
			Symbol:      "AAPL",
			Quantity:    dec(10),
			AverageCost: dec(100),
			AssetType:   model.AssetType_Stock,
		})
		return account
	}

	t.Run("partial sale credits proceeds", func(t *testing.T) {
		svc, mocks := newPortfolioService(t)
		account := setupAccount(t)

		mocks.accountRepository.EXPECT().Get(gomock.Nil(), account.AccountID).Return(account, nil)
		mocks.holdingRepository.EXPECT().Update(gomock.Nil(), gomock.Any()).Return(nil)
		mocks.accountRepository.EXPECT().Update(gomock.Nil(), account).Return(nil)
		mocks.publisher.EXPECT().PortfolioUpdated(gomock.Any(), gomock.Any())

		out, err := svc.Sell(nil, account.AccountID, "AAPL", dec(4), dec(150))
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(dec(9600), out.CashBalance))
		holding, ok := out.Holding("AAPL")
		require.True(t, ok)
		require.Equal(t, "", cmp.Diff(dec(6), holding.Quantity))
	})

	t.Run("full sale deletes the row", func(t *testing.T) {
		svc, mocks := newPortfolioService(t)
		account := setupAccount(t)

		mocks.accountRepository.EXPECT().Get(gomock.Nil(), account.AccountID).Return(account, nil)
		mocks.holdingRepository.EXPECT().Delete(gomock.Nil(), account.AccountID, "AAPL").Return(nil)
		mocks.accountRepository.EXPECT().Update(gomock.Nil(), account).Return(nil)
		mocks.publisher.EXPECT().PortfolioUpdated(gomock.Any(), gomock.Any())

		out, err := svc.Sell(nil, account.AccountID, "AAPL", dec(10), dec(150))
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(dec(10500), out.CashBalance))
		_, ok := out.Holding("AAPL")
		require.False(t, ok)
	})

	t.Run("overselling", func(t *testing.T) {
		svc, mocks := newPortfolioService(t)
		account := setupAccount(t)

		mocks.accountRepository.EXPECT().Get(gomock.Nil(), account.AccountID).Return(account, nil)

		_, err := svc.Sell(nil, account.AccountID, "AAPL", dec(11), dec(150))
		var insufficientPosition finflow_errors.ErrInsufficientPosition
		require.ErrorAs(t, err, &insufficientPosition)
		require.Equal(t, "", cmp.Diff(dec(9000), account.CashBalance))
	})
}

func Test_Withdraw(t *testing.T) {
	svc, mocks := newPortfolioService(t)
	account := testAccount(t, 100)

	mocks.accountRepository.EXPECT().Get(gomock.Nil(), account.AccountID).Return(account, nil)

	_, err := svc.Withdraw(nil, account.AccountID, dec(1000))
	var insufficientFunds finflow_errors.ErrInsufficientFunds
	require.ErrorAs(t, err, &insufficientFunds)
}
