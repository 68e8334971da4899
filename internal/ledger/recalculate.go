package ledger

import (
	"errors"

	"github.com/google/uuid"
	"github.com/kasbuku/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Recalculate derives the balance of an account from its full journal
// history and writes the result to the account.
//
// It is idempotent: calling it redundantly or out of order with other
// recalculations always converges on the balance the journal implies,
// since the balance is replayed from all items instead of being updated
// incrementally.
func Recalculate(db *gorm.DB, accountID uuid.UUID) error {
	var account models.Account
	err := db.First(&account, "id = ?", accountID).Error
	if err != nil {
		return err
	}

	balance, err := account.BalanceFromJournal(db)
	if err != nil {
		return err
	}

	return db.Model(&account).Update("balance", balance).Error
}

// RecalculateAll re-derives the balance of every account.
//
// This is the recovery path for balances that went stale because a
// recalculation after a posting failed. Individual failures do not stop
// the pass over the remaining accounts.
func RecalculateAll(db *gorm.DB) error {
	var accounts []models.Account
	err := db.Find(&accounts).Error
	if err != nil {
		return err
	}

	var errs []error
	for _, account := range accounts {
		err := Recalculate(db, account.ID)
		if err != nil {
			log.Error().Err(err).Str("account", account.Code).Msg("balance recalculation failed")
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// recalculateAccounts refreshes the balances of the given accounts after
// a journal mutation.
//
// Failures are logged, not returned: the journal write has already
// committed and stays correct, a stale balance is recovered by the next
// recalculation of the account.
func recalculateAccounts(db *gorm.DB, accountIDs []uuid.UUID) {
	for _, id := range accountIDs {
		err := Recalculate(db, id)
		if err != nil {
			log.Error().Err(err).Str("account-id", id.String()).Msg("balance recalculation failed, balance may be stale")
		}
	}
}
