package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType classifies a finance transaction.
type TransactionType string

const (
	TransactionIncome   TransactionType = "income"
	TransactionExpense  TransactionType = "expense"
	TransactionTransfer TransactionType = "transfer"
)

// Valid reports whether the transaction type is one of the known types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionIncome, TransactionExpense, TransactionTransfer:
		return true
	}

	return false
}

// FinanceAccount is an operational cash or bank account, e.g. "BCA".
//
// It is distinct from the ledger Account: money moves through a
// FinanceAccount, the bookkeeping side of that movement is posted to the
// ledger account it is linked to.
type FinanceAccount struct {
	DefaultModel
	Name            string
	Note            string
	LinkedAccountID *uuid.UUID // The ledger account postings for this account go to
	LinkedAccount   *Account   `json:"-"`
}

// BeforeSave trims whitespace from all strings.
func (a *FinanceAccount) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)

	return nil
}

// FinanceTransaction is a cash transaction on a finance account.
//
// Transactions are the business events the journal is posted from. The
// bookkeeping engine reads them, it does not own their editing surface.
type FinanceTransaction struct {
	DefaultModel
	Type             TransactionType
	Amount           decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date             time.Time
	Category         string
	Description      string
	FinanceAccountID uuid.UUID       `gorm:"index"`
	FinanceAccount   FinanceAccount  `json:"-"`
	DestinationID    *uuid.UUID      // Target finance account, set for transfers only
	Destination      *FinanceAccount `json:"-" gorm:"foreignKey:DestinationID"`
}

// BeforeSave validates the type, trims the category and sets the
// timezone for the date to UTC.
func (t *FinanceTransaction) BeforeSave(_ *gorm.DB) error {
	if !t.Type.Valid() {
		return ErrInvalidTransactionType
	}

	t.Category = strings.TrimSpace(t.Category)
	t.Description = strings.TrimSpace(t.Description)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// UnsyncedCategories returns the distinct categories of finance
// transactions that have no journal entry yet.
//
// Transfers are skipped, they never need category resolution.
func UnsyncedCategories(db *gorm.DB) ([]string, error) {
	var categories []string

	err := db.Model(&FinanceTransaction{}).
		Distinct().
		Where("type <> ?", TransactionTransfer).
		Where("category <> ''").
		Where("id NOT IN (?)", db.Model(&JournalEntry{}).
			Select("reference_id").
			Where("reference_type = ?", ReferenceFinanceTransaction).
			Where("reference_id IS NOT NULL")).
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}
