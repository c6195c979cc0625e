package resolver

import (
	types "finflow/api-types"

	"github.com/google/uuid"
)

func (r resolverHandler) ConnectExternalAccount(req types.ConnectExternalAccountRequest) (*types.ExternalAccountResponse, error) {
	platform, err := parsePlatform(req.Platform)
	if err != nil {
		return nil, err
	}

	tx, err := r.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	account, err := r.ExternalAccountService.Connect(tx, req.UserID, platform, req.AccountName, req.AccessToken, req.RefreshToken, req.TokenExpiresAt)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}
	return externalAccountResponse(account), nil
}

func (r resolverHandler) ListExternalAccounts(userID uuid.UUID) ([]types.ExternalAccountResponse, error) {
	tx, err := r.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	accounts, err := r.ExternalAccountService.ListByUserID(tx, userID)
	if err != nil {
		return nil, err
	}

	out := []types.ExternalAccountResponse{}
	for i := range accounts {
		out = append(out, *externalAccountResponse(&accounts[i]))
	}
	return out, nil
}

func (r resolverHandler) RefreshExternalAccountToken(externalAccountID uuid.UUID, req types.RefreshTokenRequest) (*types.ExternalAccountResponse, error) {
	tx, err := r.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	account, err := r.ExternalAccountService.RefreshToken(tx, externalAccountID, req.AccessToken, req.RefreshToken, req.TokenExpiresAt)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}
	return externalAccountResponse(account), nil
}

func (r resolverHandler) DisconnectExternalAccount(externalAccountID uuid.UUID) (*types.ExternalAccountResponse, error) {
	tx, err := r.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	account, err := r.ExternalAccountService.Disconnect(tx, externalAccountID)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}
	return externalAccountResponse(account), nil
}
