package service

import (
	"testing"
	"time"

	finflow_errors "finflow/internal"
	"finflow/internal/clock"
	"finflow/internal/db/models/postgres/public/model"
	"finflow/internal/domain"
	"finflow/internal/repository"
	"finflow/internal/util"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type externalAccountServiceMocks struct {
	userRepository            *repository.MockUserRepository
	externalAccountRepository *repository.MockExternalAccountRepository
}

func newExternalAccountService(t *testing.T) (ExternalAccountService, externalAccountServiceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := externalAccountServiceMocks{
		userRepository:            repository.NewMockUserRepository(ctrl),
		externalAccountRepository: repository.NewMockExternalAccountRepository(ctrl),
	}
	svc := NewExternalAccountService(
		mocks.userRepository,
		mocks.externalAccountRepository,
		clock.NewFixed(testTime),
	)
	return svc, mocks
}

func Test_Connect(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		svc, mocks := newExternalAccountService(t)
		userID := uuid.New()

		mocks.userRepository.EXPECT().Exists(gomock.Nil(), userID).Return(true, nil)
		mocks.externalAccountRepository.EXPECT().ExistsByUserIDAndPlatform(gomock.Nil(), userID, model.ExternalPlatform_Alpaca).Return(false, nil)
		mocks.externalAccountRepository.EXPECT().Create(gomock.Nil(), gomock.Any()).Return(nil)

		account, err := svc.Connect(nil, userID, model.ExternalPlatform_Alpaca, "", "token", "", nil)
		require.NoError(t, err)

		require.Equal(t, model.ConnectionStatus_Connected, account.Status)
		// empty name falls back to the platform
		require.Equal(t, "ALPACA", account.AccountName)
		require.True(t, account.SyncEnabled)
	})

	t.Run("duplicate platform link", func(t *testing.T) {
		svc, mocks := newExternalAccountService(t)
		userID := uuid.New()

		mocks.userRepository.EXPECT().Exists(gomock.Nil(), userID).Return(true, nil)
		mocks.externalAccountRepository.EXPECT().ExistsByUserIDAndPlatform(gomock.Nil(), userID, model.ExternalPlatform_Alpaca).Return(true, nil)

		_, err := svc.Connect(nil, userID, model.ExternalPlatform_Alpaca, "", "token", "", nil)
		var conflict finflow_errors.ErrConflict
		require.ErrorAs(t, err, &conflict)
	})
}

func Test_SyncLifecycle(t *testing.T) {
	connected := func(t *testing.T) *domain.ExternalAccount {
		t.Helper()
		account := domain.NewExternalAccount(uuid.New(), model.ExternalPlatform_Coinbase, "coinbase main", testTime)
		account.Connect("token", "refresh", util.TimePtr(testTime.Add(24*time.Hour)), testTime)
		return account
	}

	t.Run("start and complete", func(t *testing.T) {
		svc, mocks := newExternalAccountService(t)
		account := connected(t)

		mocks.externalAccountRepository.EXPECT().Get(gomock.Nil(), account.ExternalAccountID).Return(account, nil).Times(2)
		mocks.externalAccountRepository.EXPECT().Update(gomock.Nil(), account).Return(nil).Times(2)

		out, err := svc.StartSync(nil, account.ExternalAccountID)
		require.NoError(t, err)
		require.Equal(t, model.ConnectionStatus_Syncing, out.Status)

		out, err = svc.CompleteSync(nil, account.ExternalAccountID, true)
		require.NoError(t, err)
		require.Equal(t, model.ConnectionStatus_Connected, out.Status)
		require.NotNil(t, out.LastSyncAt)
	})

	t.Run("sync failure marks error", func(t *testing.T) {
		svc, mocks := newExternalAccountService(t)
		account := connected(t)
		account.MarkSyncing(testTime)

		mocks.externalAccountRepository.EXPECT().Get(gomock.Nil(), account.ExternalAccountID).Return(account, nil)
		mocks.externalAccountRepository.EXPECT().Update(gomock.Nil(), account).Return(nil)

		out, err := svc.CompleteSync(nil, account.ExternalAccountID, false)
		require.NoError(t, err)
		require.Equal(t, model.ConnectionStatus_Error, out.Status)
	})

	t.Run("cannot sync a disconnected account", func(t *testing.T) {
		svc, mocks := newExternalAccountService(t)
		account := connected(t)
		account.Disconnect(testTime)

		mocks.externalAccountRepository.EXPECT().Get(gomock.Nil(), account.ExternalAccountID).Return(account, nil)

		_, err := svc.StartSync(nil, account.ExternalAccountID)
		var conflict finflow_errors.ErrConflict
		require.ErrorAs(t, err, &conflict)
	})
}

func Test_NeedsTokenRefresh(t *testing.T) {
	account := domain.NewExternalAccount(uuid.New(), model.ExternalPlatform_Binance, "", testTime)
	require.False(t, account.NeedsTokenRefresh(testTime))

	expired := testTime.Add(-time.Minute)
	account.Connect("token", "", &expired, testTime)
	require.True(t, account.NeedsTokenRefresh(testTime))
}
