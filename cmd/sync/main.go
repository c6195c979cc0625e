package main

import (
	"log"

	"finflow/internal/clock"
	db "finflow/internal/db/query"
	"finflow/internal/repository"
	"finflow/internal/service"
	"finflow/internal/util"

	_ "github.com/lib/pq"
)

// housekeeping scan over linked brokerage accounts: expired access tokens
// are flagged as connection errors so they stop being picked up for sync,
// and the remaining sync-enabled accounts are reported.
func main() {
	cfg := util.LoadConfig()
	logger := util.NewLogger(cfg.LogLevel)

	dbConn, err := db.New()
	if err != nil {
		log.Fatal(err)
	}
	tx, err := dbConn.Begin()
	if err != nil {
		log.Fatal(err)
	}
	defer tx.Rollback()

	externalAccountRepository := repository.NewExternalAccountRepository()
	externalAccountService := service.NewExternalAccountService(
		repository.NewUserRepository(),
		externalAccountRepository,
		clock.New(),
	)
	now := clock.New().Now()

	expired, err := externalAccountService.ListExpiredTokens(tx)
	if err != nil {
		log.Fatal(err)
	}
	flagged := 0
	for i := range expired {
		account := &expired[i]

		// one bad row shouldn't sink the whole scan
		savepointName, err := db.AddSavepoint(tx)
		if err != nil {
			log.Fatal(err)
		}
		account.SyncError(now)
		err = externalAccountRepository.Update(tx, account)
		if err != nil {
			if rollbackErr := db.RollbackToSavepoint(tx, savepointName); rollbackErr != nil {
				log.Fatal(rollbackErr)
			}
			logger.Error("failed to flag expired token",
				"externalAccountId", account.ExternalAccountID.String(),
				"error", err.Error(),
			)
			continue
		}
		flagged++
		logger.Warn("access token expired",
			"externalAccountId", account.ExternalAccountID.String(),
			"platform", account.Platform.String(),
		)
	}

	syncable, err := externalAccountService.ListSyncable(tx)
	if err != nil {
		log.Fatal(err)
	}

	platforms := util.NewSet()
	users := util.NewSet()
	for _, account := range syncable {
		platforms.Add(account.Platform.String())
		users.Add(account.UserID.String())
	}

	err = tx.Commit()
	if err != nil {
		log.Fatal(err)
	}

	logger.Info("sync scan complete",
		"expiredTokens", flagged,
		"syncableAccounts", len(syncable),
		"users", users.Length(),
		"platforms", platforms.List(),
	)
}
