package prices

import (
	"database/sql"
	"fmt"
	"time"

	"finflow/internal/domain"
	"finflow/internal/ledger"
	"finflow/internal/repository"
	"finflow/internal/valuation"

	"github.com/google/uuid"
)

// RefreshHoldingPrices re-marks every holding in the account at its
// latest quoted price, then recalculates the account totals. A symbol
// whose quote lookup fails aborts the whole refresh; partial marks
// would leave the totals mixing quote times.
func RefreshHoldingPrices(
	tx *sql.Tx,
	accountRepository repository.AccountRepository,
	holdingRepository repository.HoldingRepository,
	source PriceSource,
	accountID uuid.UUID,
	now time.Time,
) (*domain.PortfolioAccount, error) {
	account, err := accountRepository.Get(tx, accountID)
	if err != nil {
		return nil, err
	}

	for _, symbol := range account.Symbols() {
		quote, err := source.GetLatestPrice(symbol)
		if err != nil {
			return nil, fmt.Errorf("failed to get latest price for %s: %w", symbol, err)
		}

		holding := account.Holdings[symbol]
		err = ledger.MarkPrice(holding, quote.Price, now)
		if err != nil {
			return nil, err
		}
		err = holdingRepository.Update(tx, holding)
		if err != nil {
			return nil, err
		}
	}

	valuation.Recalculate(account, now)
	err = accountRepository.Update(tx, account)
	if err != nil {
		return nil, err
	}

	return account, nil
}
