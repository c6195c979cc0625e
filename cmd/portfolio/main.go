package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"finflow/internal/clock"
	db "finflow/internal/db/query"
	"finflow/internal/events"
	"finflow/internal/repository"
	"finflow/internal/service"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// prints a user's portfolio with freshly recalculated totals. read-only:
// the transaction is rolled back instead of committed, and no events are
// published.
func main() {
	userIDStr := flag.String("userId", "", "user whose portfolio to print")
	flag.Parse()

	userID, err := uuid.Parse(*userIDStr)
	if err != nil {
		log.Fatalf("invalid -userId: %v", err)
	}

	dbConn, err := db.New()
	if err != nil {
		log.Fatal(err)
	}
	tx, err := dbConn.Begin()
	if err != nil {
		log.Fatal(err)
	}
	defer tx.Rollback()

	portfolioService := service.NewPortfolioService(
		repository.NewUserRepository(),
		repository.NewAccountRepository(),
		repository.NewHoldingRepository(),
		events.NopPublisher{},
		clock.New(),
	)

	account, err := portfolioService.GetByUserID(tx, userID)
	if err != nil {
		log.Fatal(err)
	}
	account, err = portfolioService.Recalculate(tx, account.AccountID)
	if err != nil {
		log.Fatal(err)
	}

	out := map[string]interface{}{
		"accountId":            account.AccountID,
		"cashBalance":          account.CashBalance,
		"totalValue":           account.TotalValue,
		"totalGainLoss":        account.TotalGainLoss,
		"totalGainLossPercent": account.TotalGainLossPercent,
	}
	holdings := map[string]interface{}{}
	for _, symbol := range account.Symbols() {
		h := account.Holdings[symbol]
		holdings[symbol] = map[string]interface{}{
			"quantity":      h.Quantity,
			"averageCost":   h.AverageCost,
			"marketValue":   h.MarketValue,
			"unrealizedPnl": h.UnrealizedPnl,
		}
	}
	out["holdings"] = holdings

	bytes, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(bytes))
}
