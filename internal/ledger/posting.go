package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kasbuku/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// epsilon is the maximum difference between the debit and credit sums of
// an entry that is still considered balanced. It covers rounding of
// amounts that were computed externally, e.g. tax splits.
var epsilon = decimal.NewFromFloat(0.01)

// Line is one side of a posting: a debit or a credit against an account.
type Line struct {
	AccountID uuid.UUID
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}

// PostEntry validates and persists a journal entry with its lines as a
// single atomic unit.
//
// Preconditions: at least two lines, every line has exactly one of
// debit/credit set, all referenced accounts exist and the debit and
// credit sums balance within epsilon. A violation rejects the entry
// before anything is written.
//
// After the entry is committed, the balance of every touched account is
// recalculated. A recalculation failure does not roll back the entry:
// the journal is the source of truth and the cached balances can always
// be rebuilt, so the failure is only logged.
func PostEntry(db *gorm.DB, description string, date time.Time, referenceType models.ReferenceType, referenceID *uuid.UUID, lines []Line) (models.JournalEntry, error) {
	items, err := validateLines(db, lines)
	if err != nil {
		return models.JournalEntry{}, err
	}

	entry := models.JournalEntry{
		Description:   description,
		Date:          date,
		ReferenceType: referenceType,
		ReferenceID:   referenceID,
		Items:         items,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&entry).Error
	})
	if err != nil {
		return models.JournalEntry{}, err
	}

	recalculateAccounts(db, entry.AccountIDs())

	return entry, nil
}

// UpdateEntry replaces the description, date and lines of an existing
// entry. This is an administrative correction, not part of the normal
// posting flow.
//
// The balances of the union of previously and newly touched accounts are
// recalculated, so items moved away from an account correct that
// account's balance too.
func UpdateEntry(db *gorm.DB, id uuid.UUID, description string, date time.Time, lines []Line) (models.JournalEntry, error) {
	var entry models.JournalEntry
	err := db.Preload("Items").First(&entry, "id = ?", id).Error
	if err != nil {
		return models.JournalEntry{}, err
	}

	items, err := validateLines(db, lines)
	if err != nil {
		return models.JournalEntry{}, err
	}

	affected := entry.AccountIDs()

	err = db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("journal_entry_id = ?", entry.ID).Delete(&models.JournalEntryItem{}).Error
		if err != nil {
			return err
		}

		for i := range items {
			items[i].JournalEntryID = entry.ID
			err = tx.Create(&items[i]).Error
			if err != nil {
				return err
			}
		}

		entry.Description = description
		entry.Date = date
		entry.Items = items
		return tx.Select("Description", "Date").Updates(&entry).Error
	})
	if err != nil {
		return models.JournalEntry{}, err
	}

	// Recalculate the union of old and new accounts
	affected = append(affected, entry.AccountIDs()...)
	recalculateAccounts(db, affected)

	return entry, nil
}

// DeleteEntry removes an entry and its items and recalculates the
// balances of all accounts the items were posted against.
func DeleteEntry(db *gorm.DB, id uuid.UUID) error {
	var entry models.JournalEntry
	err := db.Preload("Items").First(&entry, "id = ?", id).Error
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("journal_entry_id = ?", entry.ID).Delete(&models.JournalEntryItem{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&entry).Error
	})
	if err != nil {
		return err
	}

	recalculateAccounts(db, entry.AccountIDs())

	return nil
}

// validateLines checks the posting preconditions and converts the lines
// to journal entry items.
func validateLines(db *gorm.DB, lines []Line) ([]models.JournalEntryItem, error) {
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrTooFewLines, len(lines))
	}

	debits := decimal.Zero
	credits := decimal.Zero
	items := make([]models.JournalEntryItem, 0, len(lines))

	for _, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return nil, models.ErrItemNegative
		}

		if line.Debit.IsPositive() && line.Credit.IsPositive() {
			return nil, models.ErrItemBothSidesSet
		}

		if line.Debit.IsZero() && line.Credit.IsZero() {
			return nil, models.ErrItemNoSideSet
		}

		// Verify the account exists before anything is written
		var account models.Account
		err := db.First(&account, "id = ?", line.AccountID).Error
		if err != nil {
			return nil, err
		}

		debits = debits.Add(line.Debit)
		credits = credits.Add(line.Credit)

		items = append(items, models.JournalEntryItem{
			AccountID: line.AccountID,
			Debit:     line.Debit,
			Credit:    line.Credit,
		})
	}

	if debits.Sub(credits).Abs().GreaterThanOrEqual(epsilon) {
		return nil, fmt.Errorf("%w: debits are %s, credits are %s, difference is %s",
			ErrUnbalancedEntry, debits, credits, debits.Sub(credits).Abs())
	}

	return items, nil
}
