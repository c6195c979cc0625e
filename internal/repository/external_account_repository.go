package repository

import (
	"database/sql"
	"fmt"
	"time"

	finflow_errors "finflow/internal"
	"finflow/internal/db/models/postgres/public/model"
	. "finflow/internal/db/models/postgres/public/table"
	db "finflow/internal/db/query"
	"finflow/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type ExternalAccountRepository interface {
	Create(tx *sql.Tx, account *domain.ExternalAccount) error
	Get(tx *sql.Tx, externalAccountID uuid.UUID) (*domain.ExternalAccount, error)
	ListByUserID(tx *sql.Tx, userID uuid.UUID) ([]domain.ExternalAccount, error)
	ExistsByUserIDAndPlatform(tx *sql.Tx, userID uuid.UUID, platform model.ExternalPlatform) (bool, error)
	ListSyncEnabled(tx *sql.Tx) ([]domain.ExternalAccount, error)
	ListNeedingTokenRefresh(tx *sql.Tx, asOf time.Time) ([]domain.ExternalAccount, error)
	Update(tx *sql.Tx, account *domain.ExternalAccount) error
}

type externalAccountRepositoryHandler struct {
}

func NewExternalAccountRepository() ExternalAccountRepository {
	return externalAccountRepositoryHandler{}
}

func externalAccountToDb(a *domain.ExternalAccount) model.ExternalAccount {
	return model.ExternalAccount{
		ExternalAccountID: a.ExternalAccountID,
		UserID:            a.UserID,
		Platform:          a.Platform,
		AccountName:       a.AccountName,
		AccountNumber:     a.AccountNumber,
		Status:            a.Status,
		LastSyncAt:        a.LastSyncAt,
		SyncEnabled:       a.SyncEnabled,
		AccessToken:       a.AccessToken,
		RefreshToken:      a.RefreshToken,
		TokenExpiresAt:    a.TokenExpiresAt,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func externalAccountFromDb(a model.ExternalAccount) *domain.ExternalAccount {
	return &domain.ExternalAccount{
		ExternalAccountID: a.ExternalAccountID,
		UserID:            a.UserID,
		Platform:          a.Platform,
		AccountName:       a.AccountName,
		AccountNumber:     a.AccountNumber,
		Status:            a.Status,
		LastSyncAt:        a.LastSyncAt,
		SyncEnabled:       a.SyncEnabled,
		AccessToken:       a.AccessToken,
		RefreshToken:      a.RefreshToken,
		TokenExpiresAt:    a.TokenExpiresAt,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func (r externalAccountRepositoryHandler) Create(tx *sql.Tx, account *domain.ExternalAccount) error {
	query := ExternalAccount.INSERT(ExternalAccount.AllColumns).MODEL(externalAccountToDb(account))

	_, err := query.Exec(tx)
	if err != nil {
		if db.IsDuplicateEntryErr(err) {
			return finflow_errors.ErrConflict{Resource: "external account", Message: "user " + account.UserID.String() + " already linked " + account.Platform.String()}
		}
		return fmt.Errorf("failed to insert external account: %w", err)
	}

	return nil
}

func (r externalAccountRepositoryHandler) Get(tx *sql.Tx, externalAccountID uuid.UUID) (*domain.ExternalAccount, error) {
	query := ExternalAccount.SELECT(ExternalAccount.AllColumns).WHERE(
		ExternalAccount.ExternalAccountID.EQ(postgres.UUID(externalAccountID)),
	)

	var results []model.ExternalAccount
	err := query.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to load external account %s: %w", externalAccountID, err)
	}
	if len(results) == 0 {
		return nil, finflow_errors.ErrNotFound{Resource: "external account", ID: externalAccountID.String()}
	}

	return externalAccountFromDb(results[0]), nil
}

func (r externalAccountRepositoryHandler) ListByUserID(tx *sql.Tx, userID uuid.UUID) ([]domain.ExternalAccount, error) {
	query := ExternalAccount.SELECT(ExternalAccount.AllColumns).WHERE(
		ExternalAccount.UserID.EQ(postgres.UUID(userID)),
	).ORDER_BY(ExternalAccount.CreatedAt.ASC())

	return r.list(tx, query)
}

func (r externalAccountRepositoryHandler) ExistsByUserIDAndPlatform(tx *sql.Tx, userID uuid.UUID, platform model.ExternalPlatform) (bool, error) {
	query := ExternalAccount.SELECT(ExternalAccount.ExternalAccountID).WHERE(
		postgres.AND(
			ExternalAccount.UserID.EQ(postgres.UUID(userID)),
			ExternalAccount.Platform.EQ(postgres.String(platform.String())),
		),
	)

	var results []model.ExternalAccount
	err := query.Query(tx, &results)
	if err != nil {
		return false, fmt.Errorf("failed to check external account existence: %w", err)
	}

	return len(results) > 0, nil
}

// ListSyncEnabled returns all accounts eligible for the housekeeping sync
// scan, regardless of connection state.
func (r externalAccountRepositoryHandler) ListSyncEnabled(tx *sql.Tx) ([]domain.ExternalAccount, error) {
	query := ExternalAccount.SELECT(ExternalAccount.AllColumns).WHERE(
		ExternalAccount.SyncEnabled.IS_TRUE(),
	).ORDER_BY(ExternalAccount.LastSyncAt.ASC())

	return r.list(tx, query)
}

func (r externalAccountRepositoryHandler) ListNeedingTokenRefresh(tx *sql.Tx, asOf time.Time) ([]domain.ExternalAccount, error) {
	query := ExternalAccount.SELECT(ExternalAccount.AllColumns).WHERE(
		postgres.AND(
			ExternalAccount.SyncEnabled.IS_TRUE(),
			ExternalAccount.TokenExpiresAt.IS_NOT_NULL(),
			ExternalAccount.TokenExpiresAt.LT(postgres.TimestampT(asOf)),
		),
	)

	return r.list(tx, query)
}

func (r externalAccountRepositoryHandler) list(tx *sql.Tx, query postgres.SelectStatement) ([]domain.ExternalAccount, error) {
	var results []model.ExternalAccount
	err := query.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list external accounts: %w", err)
	}

	out := make([]domain.ExternalAccount, len(results))
	for i, a := range results {
		out[i] = *externalAccountFromDb(a)
	}
	return out, nil
}

func (r externalAccountRepositoryHandler) Update(tx *sql.Tx, account *domain.ExternalAccount) error {
	query := ExternalAccount.UPDATE(ExternalAccount.MutableColumns).
		MODEL(externalAccountToDb(account)).
		WHERE(ExternalAccount.ExternalAccountID.EQ(postgres.UUID(account.ExternalAccountID)))

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to update external account %s: %w", account.ExternalAccountID, err)
	}

	return nil
}
