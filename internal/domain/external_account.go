package domain

import (
	"time"

	"finflow/internal/db/models/postgres/public/model"

	"github.com/google/uuid"
)

// ExternalAccount is a connected brokerage account that can be synced into
// the portfolio. It lives outside the accounting core; the sync and
// token-refresh scans are housekeeping, not ledger mutations.
type ExternalAccount struct {
	ExternalAccountID uuid.UUID
	UserID            uuid.UUID
	Platform          model.ExternalPlatform
	AccountName       string
	AccountNumber     *string
	Status            model.ConnectionStatus
	LastSyncAt        *time.Time
	SyncEnabled       bool
	AccessToken       *string
	RefreshToken      *string
	TokenExpiresAt    *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewExternalAccount(userID uuid.UUID, platform model.ExternalPlatform, accountName string, now time.Time) *ExternalAccount {
	if accountName == "" {
		accountName = platform.String()
	}
	return &ExternalAccount{
		ExternalAccountID: uuid.New(),
		UserID:            userID,
		Platform:          platform,
		AccountName:       accountName,
		Status:            model.ConnectionStatus_Disconnected,
		SyncEnabled:       true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (e *ExternalAccount) Connect(accessToken, refreshToken string, tokenExpiresAt *time.Time, now time.Time) {
	e.AccessToken = &accessToken
	if refreshToken != "" {
		e.RefreshToken = &refreshToken
	}
	e.TokenExpiresAt = tokenExpiresAt
	e.Status = model.ConnectionStatus_Connected
	e.UpdatedAt = now
}

func (e *ExternalAccount) Disconnect(now time.Time) {
	e.Status = model.ConnectionStatus_Disconnected
	e.SyncEnabled = false
	e.UpdatedAt = now
}

func (e *ExternalAccount) MarkSyncing(now time.Time) {
	e.Status = model.ConnectionStatus_Syncing
	e.UpdatedAt = now
}

func (e *ExternalAccount) CompleteSync(now time.Time) {
	e.Status = model.ConnectionStatus_Connected
	t := now
	e.LastSyncAt = &t
	e.UpdatedAt = now
}

func (e *ExternalAccount) SyncError(now time.Time) {
	e.Status = model.ConnectionStatus_Error
	e.UpdatedAt = now
}

func (e *ExternalAccount) IsConnected() bool {
	return e.Status == model.ConnectionStatus_Connected
}

// NeedsTokenRefresh reports whether the access token has expired.
func (e *ExternalAccount) NeedsTokenRefresh(now time.Time) bool {
	return e.TokenExpiresAt != nil && e.TokenExpiresAt.Before(now)
}
