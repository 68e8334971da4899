package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReferenceType names the kind of business object a journal entry was
// created for.
type ReferenceType string

const (
	// ReferenceFinanceTransaction marks entries posted from a finance transaction.
	ReferenceFinanceTransaction ReferenceType = "finance_transaction"
	// ReferenceInvoice marks entries posted from an invoice payment.
	ReferenceInvoice ReferenceType = "invoice"
	// ReferenceManual marks entries posted directly by an operator.
	ReferenceManual ReferenceType = "manual"
)

// JournalEntry is an atomic, balanced set of debit and credit postings
// recording one business event.
type JournalEntry struct {
	DefaultModel
	Description   string
	Date          time.Time
	ReferenceType ReferenceType `gorm:"index:idx_journal_entries_reference"`
	ReferenceID   *uuid.UUID    `gorm:"index:idx_journal_entries_reference"`
	Items         []JournalEntryItem `gorm:"foreignKey:JournalEntryID;constraint:OnDelete:CASCADE"`
}

// BeforeSave sets the timezone for the Date to UTC.
func (e *JournalEntry) BeforeSave(_ *gorm.DB) error {
	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (e *JournalEntry) AfterFind(_ *gorm.DB) error {
	e.Date = e.Date.In(time.UTC)
	return nil
}

// AccountIDs returns the distinct accounts referenced by the entry's items.
func (e JournalEntry) AccountIDs() []uuid.UUID {
	var ids []uuid.UUID
	seen := make(map[uuid.UUID]bool)

	for _, item := range e.Items {
		if seen[item.AccountID] {
			continue
		}
		seen[item.AccountID] = true
		ids = append(ids, item.AccountID)
	}

	return ids
}

// EntryForReference returns the journal entry posted for the referenced
// business object, with its items preloaded.
func EntryForReference(db *gorm.DB, referenceType ReferenceType, referenceID uuid.UUID) (JournalEntry, error) {
	var entry JournalEntry

	err := db.Preload("Items").
		Where("reference_type = ? AND reference_id = ?", referenceType, referenceID).
		First(&entry).Error
	if err != nil {
		return JournalEntry{}, err
	}

	return entry, nil
}
