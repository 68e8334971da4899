package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// Account errors
	ErrAccountCodeNotUnique = errors.New("the account code must be unique")
	ErrAccountReferenced    = errors.New("the account is referenced by journal entry items and cannot be deleted")

	// Journal entry errors
	ErrItemBothSidesSet = errors.New("a journal entry item must be either a debit or a credit, not both")
	ErrItemNoSideSet    = errors.New("a journal entry item must have a debit or credit amount")
	ErrItemNegative     = errors.New("debit and credit amounts cannot be negative")

	// Category mapping errors
	ErrCategoryNotUnique = errors.New("a mapping for this category already exists")

	// Finance transaction errors
	ErrInvalidTransactionType = errors.New("the transaction type must be income, expense or transfer")
)
