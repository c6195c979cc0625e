package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// AddSavepoint opens a savepoint with a random name so a failure in one
// statement can be rolled back without abandoning the whole transaction.
func AddSavepoint(tx *sql.Tx) (string, error) {
	name := "sp_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	if _, err := tx.Exec("SAVEPOINT " + name); err != nil {
		return "", fmt.Errorf("failed to add savepoint: %w", err)
	}
	return name, nil
}

func RollbackToSavepoint(tx *sql.Tx, name string) error {
	_, err := tx.Exec("ROLLBACK TO SAVEPOINT " + name)
	return err
}

func IsDuplicateEntryErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key value violates unique constraint")
}
