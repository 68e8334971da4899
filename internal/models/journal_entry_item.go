package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// JournalEntryItem is a single debit or credit posting against one account
// within a journal entry.
//
// Exactly one of Debit and Credit is non-zero per item.
type JournalEntryItem struct {
	DefaultModel
	JournalEntryID uuid.UUID `gorm:"index"`
	AccountID      uuid.UUID `gorm:"index"`
	Account        Account   `json:"-"`
	Debit          decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Credit         decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// BeforeSave validates that the item is posted on exactly one side.
func (i *JournalEntryItem) BeforeSave(_ *gorm.DB) error {
	if i.Debit.IsNegative() || i.Credit.IsNegative() {
		return ErrItemNegative
	}

	if i.Debit.IsPositive() && i.Credit.IsPositive() {
		return ErrItemBothSidesSet
	}

	if i.Debit.IsZero() && i.Credit.IsZero() {
		return ErrItemNoSideSet
	}

	return nil
}
