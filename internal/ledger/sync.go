package ledger

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kasbuku/backend/internal/models"
	"gorm.io/gorm"
)

// SyncTransaction posts the journal entry for a finance transaction.
//
// The cash side of the entry is the ledger account linked to the
// transaction's finance account, the category side is resolved through
// the Resolver. For transfers, both sides are linked ledger accounts and
// no category resolution happens.
//
// Sync runs once, when the transaction is created. Invoking it again for
// an already-synced transaction is a no-op that returns the existing
// entry: edits to a synced transaction are not propagated to the journal
// automatically, correcting the entry is an explicit administrative step.
func SyncTransaction(db *gorm.DB, r *Resolver, transaction models.FinanceTransaction, manual map[string]uuid.UUID) (models.JournalEntry, error) {
	existing, err := models.EntryForReference(db, models.ReferenceFinanceTransaction, transaction.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, models.ErrResourceNotFound) {
		return models.JournalEntry{}, err
	}

	cash, err := linkedAccount(db, transaction.FinanceAccountID)
	if err != nil {
		return models.JournalEntry{}, err
	}

	var lines []Line
	description := transaction.Description

	switch transaction.Type {
	case models.TransactionIncome:
		category, err := r.Resolve(db, transaction.Category, manual)
		if err != nil {
			return models.JournalEntry{}, err
		}

		lines = []Line{
			{AccountID: cash.ID, Debit: transaction.Amount},
			{AccountID: category.ID, Credit: transaction.Amount},
		}
		if description == "" {
			description = fmt.Sprintf("Income: %s", transaction.Category)
		}

	case models.TransactionExpense:
		category, err := r.Resolve(db, transaction.Category, manual)
		if err != nil {
			return models.JournalEntry{}, err
		}

		lines = []Line{
			{AccountID: category.ID, Debit: transaction.Amount},
			{AccountID: cash.ID, Credit: transaction.Amount},
		}
		if description == "" {
			description = fmt.Sprintf("Expense: %s", transaction.Category)
		}

	case models.TransactionTransfer:
		if transaction.DestinationID == nil {
			return models.JournalEntry{}, ErrMissingDestination
		}

		destination, err := linkedAccount(db, *transaction.DestinationID)
		if err != nil {
			return models.JournalEntry{}, err
		}

		lines = []Line{
			{AccountID: destination.ID, Debit: transaction.Amount},
			{AccountID: cash.ID, Credit: transaction.Amount},
		}
		if description == "" {
			description = "Transfer between accounts"
		}

	default:
		return models.JournalEntry{}, models.ErrInvalidTransactionType
	}

	referenceID := transaction.ID
	return PostEntry(db, description, transaction.Date, models.ReferenceFinanceTransaction, &referenceID, lines)
}

// linkedAccount returns the ledger account a finance account is linked to.
func linkedAccount(db *gorm.DB, financeAccountID uuid.UUID) (models.Account, error) {
	var financeAccount models.FinanceAccount
	err := db.First(&financeAccount, "id = ?", financeAccountID).Error
	if err != nil {
		return models.Account{}, err
	}

	if financeAccount.LinkedAccountID == nil {
		return models.Account{}, fmt.Errorf("%w: %s", ErrMissingLedgerLink, financeAccount.Name)
	}

	var account models.Account
	err = db.First(&account, "id = ?", *financeAccount.LinkedAccountID).Error
	if err != nil {
		return models.Account{}, err
	}

	return account, nil
}
