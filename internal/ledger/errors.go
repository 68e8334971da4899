package ledger

import (
	"errors"
)

var (
	// ErrUnbalancedEntry is returned when the debits and credits of an
	// entry do not balance. Nothing is written in that case.
	ErrUnbalancedEntry = errors.New("the journal entry does not balance")

	// ErrTooFewLines is returned for entries with fewer than two lines.
	ErrTooFewLines = errors.New("a journal entry needs at least two lines")

	// ErrUnresolvedCategory is returned when a category cannot be resolved
	// to an account. This is expected in normal operation: the caller is
	// supposed to retry with an explicit manual mapping.
	ErrUnresolvedCategory = errors.New("no account could be resolved for category")

	// ErrMissingLedgerLink is returned when a finance account has no
	// linked ledger account. This is a configuration error, nothing is
	// posted until the link is set.
	ErrMissingLedgerLink = errors.New("the finance account has no linked ledger account")

	// ErrMissingDestination is returned for transfer transactions without
	// a destination finance account.
	ErrMissingDestination = errors.New("a transfer needs a destination finance account")
)
