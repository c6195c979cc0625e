// Package events notifies downstream consumers after portfolio mutations.
// Delivery is best-effort: a publisher must never block or fail the
// operation that triggered it.
package events

import (
	"context"
	"log/slog"
	"time"
)

// PortfolioEvent describes a completed portfolio mutation.
type PortfolioEvent struct {
	UserID    string    `json:"userId"`
	AccountID string    `json:"accountId"`
	Symbol    string    `json:"symbol"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher is the notification collaborator. Implementations swallow
// their own errors.
type Publisher interface {
	PortfolioUpdated(ctx context.Context, event PortfolioEvent)
}

// Compile-time interface check.
var _ Publisher = (*LogPublisher)(nil)

// LogPublisher writes events to the structured log. It stands in for a
// message broker in development and tests.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) PortfolioUpdated(_ context.Context, event PortfolioEvent) {
	p.logger.Info("portfolio updated",
		"userId", event.UserID,
		"accountId", event.AccountID,
		"symbol", event.Symbol,
		"action", event.Action,
	)
}

var _ Publisher = NopPublisher{}

// NopPublisher discards all events.
type NopPublisher struct{}

func (NopPublisher) PortfolioUpdated(context.Context, PortfolioEvent) {}
