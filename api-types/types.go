package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateAccountRequest struct {
	UserID      uuid.UUID       `json:"userId"`
	Name        string          `json:"name"`
	InitialCash decimal.Decimal `json:"initialCash"`
}

type PortfolioAccountResponse struct {
	AccountID            uuid.UUID         `json:"accountId"`
	UserID               uuid.UUID         `json:"userId"`
	Name                 string            `json:"name"`
	CashBalance          decimal.Decimal   `json:"cashBalance"`
	BuyingPower          decimal.Decimal   `json:"buyingPower"`
	TotalValue           decimal.Decimal   `json:"totalValue"`
	TotalGainLoss        decimal.Decimal   `json:"totalGainLoss"`
	TotalGainLossPercent decimal.Decimal   `json:"totalGainLossPercent"`
	Holdings             []HoldingResponse `json:"holdings"`
}

type HoldingResponse struct {
	HoldingID            uuid.UUID        `json:"holdingId"`
	Symbol               string           `json:"symbol"`
	Quantity             decimal.Decimal  `json:"quantity"`
	AverageCost          decimal.Decimal  `json:"averageCost"`
	CurrentPrice         *decimal.Decimal `json:"currentPrice,omitempty"`
	MarketValue          decimal.Decimal  `json:"marketValue"`
	UnrealizedPnl        decimal.Decimal  `json:"unrealizedPnl"`
	UnrealizedPnlPercent decimal.Decimal  `json:"unrealizedPnlPercent"`
	AssetType            string           `json:"assetType"`
	Exchange             *string          `json:"exchange,omitempty"`
}

type CashRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type TradeRequest struct {
	Symbol    string          `json:"symbol"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	AssetType string          `json:"assetType,omitempty"`
	Exchange  *string         `json:"exchange,omitempty"`
}

type CreateOrderRequest struct {
	UserID     uuid.UUID        `json:"userId"`
	Symbol     string           `json:"symbol"`
	Side       string           `json:"side"`
	Type       string           `json:"type"`
	Quantity   decimal.Decimal  `json:"quantity"`
	LimitPrice *decimal.Decimal `json:"limitPrice,omitempty"`
}

type FillOrderRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

type OrderResponse struct {
	OrderID           uuid.UUID        `json:"orderId"`
	UserID            uuid.UUID        `json:"userId"`
	Symbol            string           `json:"symbol"`
	Side              string           `json:"side"`
	Type              string           `json:"type"`
	Quantity          decimal.Decimal  `json:"quantity"`
	FilledQuantity    decimal.Decimal  `json:"filledQuantity"`
	RemainingQuantity decimal.Decimal  `json:"remainingQuantity"`
	LimitPrice        *decimal.Decimal `json:"limitPrice,omitempty"`
	Status            string           `json:"status"`
	FilledAt          *time.Time       `json:"filledAt,omitempty"`
	CancelledAt       *time.Time       `json:"cancelledAt,omitempty"`
}

type ConnectExternalAccountRequest struct {
	UserID         uuid.UUID  `json:"userId"`
	Platform       string     `json:"platform"`
	AccountName    string     `json:"accountName"`
	AccessToken    string     `json:"accessToken"`
	RefreshToken   string     `json:"refreshToken,omitempty"`
	TokenExpiresAt *time.Time `json:"tokenExpiresAt,omitempty"`
}

type RefreshTokenRequest struct {
	AccessToken    string     `json:"accessToken"`
	RefreshToken   string     `json:"refreshToken,omitempty"`
	TokenExpiresAt *time.Time `json:"tokenExpiresAt,omitempty"`
}

type ExternalAccountResponse struct {
	ExternalAccountID uuid.UUID  `json:"externalAccountId"`
	UserID            uuid.UUID  `json:"userId"`
	Platform          string     `json:"platform"`
	AccountName       string     `json:"accountName"`
	Status            string     `json:"status"`
	LastSyncAt        *time.Time `json:"lastSyncAt,omitempty"`
	SyncEnabled       bool       `json:"syncEnabled"`
}
