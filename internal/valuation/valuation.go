// Package valuation rolls per-holding figures up into portfolio-level
// totals. Recalculation is on demand; nothing here runs automatically
// after a mutation.
package valuation

import (
	"time"

	"finflow/internal/domain"

	"github.com/shopspring/decimal"
)

// Recalculate refreshes total value, total gain/loss and its percentage
// from the account's current holdings and cash balance. Idempotent.
//
// The percentage is reset to zero when the total cost basis is not
// positive. Leaving the previous value in place (as some implementations
// do) would let a stale figure survive after the last position closes.
func Recalculate(account *domain.PortfolioAccount, now time.Time) {
	holdingsValue := decimal.Zero
	totalGainLoss := decimal.Zero
	totalCostBasis := decimal.Zero

	for _, h := range account.Holdings {
		holdingsValue = holdingsValue.Add(h.MarketValue)
		totalGainLoss = totalGainLoss.Add(h.UnrealizedPnl)
		totalCostBasis = totalCostBasis.Add(h.Quantity.Mul(h.AverageCost))
	}

	account.TotalValue = account.CashBalance.Add(holdingsValue)
	account.TotalGainLoss = totalGainLoss
	account.TotalGainLossPercent = domain.PercentOf(totalGainLoss, totalCostBasis)
	account.UpdatedAt = now
}
