package service

import (
	"database/sql"
	"fmt"
	"time"

	finflow_errors "finflow/internal"
	"finflow/internal/clock"
	"finflow/internal/db/models/postgres/public/model"
	"finflow/internal/domain"
	"finflow/internal/repository"

	"github.com/google/uuid"
)

// ExternalAccountService manages linked brokerage connections: token
// lifecycle and the sync status machine. It never touches the portfolio
// account itself.
type ExternalAccountService interface {
	Connect(tx *sql.Tx, userID uuid.UUID, platform model.ExternalPlatform, accountName, accessToken, refreshToken string, tokenExpiresAt *time.Time) (*domain.ExternalAccount, error)
	Get(tx *sql.Tx, externalAccountID uuid.UUID) (*domain.ExternalAccount, error)
	ListByUserID(tx *sql.Tx, userID uuid.UUID) ([]domain.ExternalAccount, error)
	Disconnect(tx *sql.Tx, externalAccountID uuid.UUID) (*domain.ExternalAccount, error)
	RefreshToken(tx *sql.Tx, externalAccountID uuid.UUID, accessToken, refreshToken string, tokenExpiresAt *time.Time) (*domain.ExternalAccount, error)
	StartSync(tx *sql.Tx, externalAccountID uuid.UUID) (*domain.ExternalAccount, error)
	CompleteSync(tx *sql.Tx, externalAccountID uuid.UUID, ok bool) (*domain.ExternalAccount, error)
	ListSyncable(tx *sql.Tx) ([]domain.ExternalAccount, error)
	ListExpiredTokens(tx *sql.Tx) ([]domain.ExternalAccount, error)
}

func NewExternalAccountService(
	userRepository repository.UserRepository,
	externalAccountRepository repository.ExternalAccountRepository,
	clock clock.Clock,
) ExternalAccountService {
	return externalAccountServiceHandler{
		UserRepository:            userRepository,
		ExternalAccountRepository: externalAccountRepository,
		Clock:                     clock,
	}
}

type externalAccountServiceHandler struct {
	UserRepository            repository.UserRepository
	ExternalAccountRepository repository.ExternalAccountRepository
	Clock                     clock.Clock
}

func (h externalAccountServiceHandler) Connect(tx *sql.Tx, userID uuid.UUID, platform model.ExternalPlatform, accountName, accessToken, refreshToken string, tokenExpiresAt *time.Time) (*domain.ExternalAccount, error) {
	exists, err := h.UserRepository.Exists(tx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, finflow_errors.ErrNotFound{Resource: "user", ID: userID.String()}
	}

	linked, err := h.ExternalAccountRepository.ExistsByUserIDAndPlatform(tx, userID, platform)
	if err != nil {
		return nil, err
	}
	if linked {
		return nil, finflow_errors.ErrConflict{Resource: "external account", Message: fmt.Sprintf("user %s already linked %s", userID.String(), platform.String())}
	}

	now := h.Clock.Now()
	account := domain.NewExternalAccount(userID, platform, accountName, now)
	account.Connect(accessToken, refreshToken, tokenExpiresAt, now)

	err = h.ExternalAccountRepository.Create(tx, account)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (h externalAccountServiceHandler) Get(tx *sql.Tx, externalAccountID uuid.UUID) (*domain.ExternalAccount, error) {
	return h.ExternalAccountRepository.Get(tx, externalAccountID)
}

func (h externalAccountServiceHandler) ListByUserID(tx *sql.Tx, userID uuid.UUID) ([]domain.ExternalAccount, error) {
	return h.ExternalAccountRepository.ListByUserID(tx, userID)
}

func (h externalAccountServiceHandler) Disconnect(tx *sql.Tx, externalAccountID uuid.UUID) (*domain.ExternalAccount, error) {
	account, err := h.ExternalAccountRepository.Get(tx, externalAccountID)
	if err != nil {
		return nil, err
	}

	account.Disconnect(h.Clock.Now())
	err = h.ExternalAccountRepository.Update(tx, account)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (h externalAccountServiceHandler) RefreshToken(tx *sql.Tx, externalAccountID uuid.UUID, accessToken, refreshToken string, tokenExpiresAt *time.Time) (*domain.ExternalAccount, error) {
	account, err := h.ExternalAccountRepository.Get(tx, externalAccountID)
	if err != nil {
		return nil, err
	}

	account.Connect(accessToken, refreshToken, tokenExpiresAt, h.Clock.Now())
	err = h.ExternalAccountRepository.Update(tx, account)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// StartSync moves a connected account into SYNCING. Disconnected and
// errored accounts must reconnect first.
func (h externalAccountServiceHandler) StartSync(tx *sql.Tx, externalAccountID uuid.UUID) (*domain.ExternalAccount, error) {
	account, err := h.ExternalAccountRepository.Get(tx, externalAccountID)
	if err != nil {
		return nil, err
	}
	if !account.IsConnected() {
		return nil, finflow_errors.ErrConflict{Resource: "external account", Message: fmt.Sprintf("account %s is %s, not connected", externalAccountID.String(), account.Status.String())}
	}

	account.MarkSyncing(h.Clock.Now())
	err = h.ExternalAccountRepository.Update(tx, account)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (h externalAccountServiceHandler) CompleteSync(tx *sql.Tx, externalAccountID uuid.UUID, ok bool) (*domain.ExternalAccount, error) {
	account, err := h.ExternalAccountRepository.Get(tx, externalAccountID)
	if err != nil {
		return nil, err
	}

	now := h.Clock.Now()
	if ok {
		account.CompleteSync(now)
	} else {
		account.SyncError(now)
	}
	err = h.ExternalAccountRepository.Update(tx, account)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (h externalAccountServiceHandler) ListSyncable(tx *sql.Tx) ([]domain.ExternalAccount, error) {
	return h.ExternalAccountRepository.ListSyncEnabled(tx)
}

func (h externalAccountServiceHandler) ListExpiredTokens(tx *sql.Tx) ([]domain.ExternalAccount, error) {
	return h.ExternalAccountRepository.ListNeedingTokenRefresh(tx, h.Clock.Now())
}
