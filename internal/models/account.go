package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountType classifies an account in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// Valid reports whether the account type is one of the known types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		return true
	}

	return false
}

// DebitNormal reports whether the account type increases on the debit side.
// Asset and expense accounts do, liability, equity and revenue accounts
// increase on the credit side.
func (t AccountType) DebitNormal() bool {
	return t == AccountTypeAsset || t == AccountTypeExpense
}

// Account represents an account in the chart of accounts, e.g. "1-1100 Cash".
type Account struct {
	DefaultModel
	Code     string      `gorm:"uniqueIndex"`
	Name     string
	Note     string
	Type     AccountType
	Balance  decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Derived from the journal, only written by the recalculator
	Archived bool
}

// BeforeSave trims whitespace from all strings.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Code = strings.TrimSpace(a.Code)
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)

	return nil
}

// BeforeDelete blocks the deletion of accounts that are referenced by
// journal entry items. The journal is the source of truth, accounts it
// references must not go away.
func (a *Account) BeforeDelete(tx *gorm.DB) error {
	var count int64
	err := tx.Model(&JournalEntryItem{}).Where("account_id = ?", a.ID).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrAccountReferenced
	}

	return nil
}

// Items returns all journal entry items posted against this account.
func (a Account) Items(db *gorm.DB) ([]JournalEntryItem, error) {
	var items []JournalEntryItem

	err := db.Where(&JournalEntryItem{AccountID: a.ID}).Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

// BalanceFromJournal derives the account balance by replaying every
// journal entry item that references the account.
//
// The sign follows the account type's normal balance side: asset and
// expense accounts sum debit minus credit, all others credit minus debit.
func (a Account) BalanceFromJournal(db *gorm.DB) (decimal.Decimal, error) {
	items, err := a.Items(db)
	if err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero
	for _, item := range items {
		if a.Type.DebitNormal() {
			balance = balance.Add(item.Debit).Sub(item.Credit)
		} else {
			balance = balance.Add(item.Credit).Sub(item.Debit)
		}
	}

	return balance, nil
}

// AccountByCode returns the account with the given code.
func AccountByCode(db *gorm.DB, code string) (Account, error) {
	var account Account

	err := db.Where(&Account{Code: code}).First(&account).Error
	if err != nil {
		return Account{}, err
	}

	return account, nil
}
