package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"finflow/internal/clock"
	db "finflow/internal/db/query"
	"finflow/internal/prices"
	"finflow/internal/repository"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// re-marks an account's holdings at the latest quoted prices and commits
// the refreshed valuation.
func main() {
	accountIDStr := flag.String("accountId", "", "account whose holdings to refresh")
	flag.Parse()

	accountID, err := uuid.Parse(*accountIDStr)
	if err != nil {
		log.Fatalf("invalid -accountId: %v", err)
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

	source := prices.AlphaVantageClient{
		HttpClient: http.DefaultClient,
		ApiKey:     os.Getenv("ALPHA_VANTAGE_API_KEY"),
	}

	account, err := prices.RefreshHoldingPrices(
		tx,
		repository.NewAccountRepository(),
		repository.NewHoldingRepository(),
		source,
		accountID,
		clock.New().Now(),
	)
	if err != nil {
		log.Fatal(err)
	}

	err = tx.Commit()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("refreshed %d holdings, total value %s\n", len(account.Holdings), account.TotalValue.String())
}
