// Package resolver sits between the HTTP layer and the services. Each
// method owns one transaction: begin, run the service calls, commit.
// Rollback on any error path is handled by the deferred call.
package resolver

import (
	"database/sql"
	"strings"

	types "finflow/api-types"
	finflow_errors "finflow/internal"
	"finflow/internal/db/models/postgres/public/model"
	"finflow/internal/domain"
	"finflow/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Resolver interface {
	// portfolio endpoints
	CreateAccount(req types.CreateAccountRequest) (*types.PortfolioAccountResponse, error)
	GetPortfolio(userID uuid.UUID) (*types.PortfolioAccountResponse, error)
	Deposit(accountID uuid.UUID, req types.CashRequest) (*types.PortfolioAccountResponse, error)
	Withdraw(accountID uuid.UUID, req types.CashRequest) (*types.PortfolioAccountResponse, error)
	Buy(accountID uuid.UUID, req types.TradeRequest) (*types.PortfolioAccountResponse, error)
	Sell(accountID uuid.UUID, req types.TradeRequest) (*types.PortfolioAccountResponse, error)
	Recalculate(accountID uuid.UUID) (*types.PortfolioAccountResponse, error)
	DeleteAccount(accountID uuid.UUID) error

	// order endpoints
	CreateOrder(req types.CreateOrderRequest) (*types.OrderResponse, error)
	FillOrder(orderID uuid.UUID, req types.FillOrderRequest) (*types.OrderResponse, error)
	CancelOrder(orderID uuid.UUID) (*types.OrderResponse, error)
	RejectOrder(orderID uuid.UUID) (*types.OrderResponse, error)
	ListActiveOrders(userID uuid.UUID) ([]types.OrderResponse, error)

	// external account endpoints
	ConnectExternalAccount(req types.ConnectExternalAccountRequest) (*types.ExternalAccountResponse, error)
	ListExternalAccounts(userID uuid.UUID) ([]types.ExternalAccountResponse, error)
	RefreshExternalAccountToken(externalAccountID uuid.UUID, req types.RefreshTokenRequest) (*types.ExternalAccountResponse, error)
	DisconnectExternalAccount(externalAccountID uuid.UUID) (*types.ExternalAccountResponse, error)
}

type resolverHandler struct {
	Db *sql.DB

	PortfolioService       service.PortfolioService
	OrderService           service.OrderService
	ExternalAccountService service.ExternalAccountService
}

func NewResolver(
	db *sql.DB,
	portfolioService service.PortfolioService,
	orderService service.OrderService,
	externalAccountService service.ExternalAccountService,
) Resolver {
	return resolverHandler{
		Db:                     db,
		PortfolioService:       portfolioService,
		OrderService:           orderService,
		ExternalAccountService: externalAccountService,
	}
}

func accountResponse(account *domain.PortfolioAccount) *types.PortfolioAccountResponse {
	holdings := []types.HoldingResponse{}
	for _, symbol := range account.Symbols() {
		h := account.Holdings[symbol]
		var price *decimal.Decimal
		if h.CurrentPrice != nil {
			p := *h.CurrentPrice
			price = &p
		}
		holdings = append(holdings, types.HoldingResponse{
			HoldingID:            h.HoldingID,
			Symbol:               h.Symbol,
			Quantity:             h.Quantity,
			AverageCost:          h.AverageCost,
			CurrentPrice:         price,
			MarketValue:          h.MarketValue,
			UnrealizedPnl:        h.UnrealizedPnl,
			UnrealizedPnlPercent: h.UnrealizedPnlPercent,
			AssetType:            h.AssetType.String(),
			Exchange:             h.Exchange,
		})
	}

	return &types.PortfolioAccountResponse{
		AccountID:            account.AccountID,
		UserID:               account.UserID,
		Name:                 account.Name,
		CashBalance:          account.CashBalance,
		BuyingPower:          account.BuyingPower,
		TotalValue:           account.TotalValue,
		TotalGainLoss:        account.TotalGainLoss,
		TotalGainLossPercent: account.TotalGainLossPercent,
		Holdings:             holdings,
	}
}

func orderResponse(order *domain.Order) *types.OrderResponse {
	return &types.OrderResponse{
		OrderID:           order.OrderID,
		UserID:            order.UserID,
		Symbol:            order.Symbol,
		Side:              order.Side.String(),
		Type:              order.Type.String(),
		Quantity:          order.Quantity,
		FilledQuantity:    order.FilledQuantity,
		RemainingQuantity: order.RemainingQuantity,
		LimitPrice:        order.LimitPrice,
		Status:            order.Status.String(),
		FilledAt:          order.FilledAt,
		CancelledAt:       order.CancelledAt,
	}
}

func externalAccountResponse(account *domain.ExternalAccount) *types.ExternalAccountResponse {
	return &types.ExternalAccountResponse{
		ExternalAccountID: account.ExternalAccountID,
		UserID:            account.UserID,
		Platform:          account.Platform.String(),
		AccountName:       account.AccountName,
		Status:            account.Status.String(),
		LastSyncAt:        account.LastSyncAt,
		SyncEnabled:       account.SyncEnabled,
	}
}

// the generated enum Scan methods already validate values, so reuse them
// instead of maintaining parallel switch statements

func parseAssetType(s string) (model.AssetType, error) {
	if s == "" {
		return model.AssetType_Stock, nil
	}
	var out model.AssetType
	if err := out.Scan(strings.ToUpper(s)); err != nil {
		return "", finflow_errors.ErrInvalidArgument{Field: "assetType", Message: "unknown asset type " + s}
	}
	return out, nil
}

func parseOrderSide(s string) (model.OrderSide, error) {
	var out model.OrderSide
	if err := out.Scan(strings.ToUpper(s)); err != nil {
		return "", finflow_errors.ErrInvalidArgument{Field: "side", Message: "unknown order side " + s}
	}
	return out, nil
}

func parseOrderType(s string) (model.OrderType, error) {
	if s == "" {
		return model.OrderType_Market, nil
	}
	var out model.OrderType
	if err := out.Scan(strings.ToUpper(s)); err != nil {
		return "", finflow_errors.ErrInvalidArgument{Field: "type", Message: "unknown order type " + s}
	}
	return out, nil
}

func parsePlatform(s string) (model.ExternalPlatform, error) {
	var out model.ExternalPlatform
	if err := out.Scan(strings.ToUpper(s)); err != nil {
		return "", finflow_errors.ErrInvalidArgument{Field: "platform", Message: "unknown platform " + s}
	}
	return out, nil
}
