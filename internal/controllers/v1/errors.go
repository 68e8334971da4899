package v1

import (
	"errors"
	"net/http"

	"github.com/kasbuku/backend/internal/ledger"
	"github.com/kasbuku/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	// Resolution failures are expected in normal operation, the caller
	// retries with a manual mapping or fixes the account link first.
	if errors.Is(err, ledger.ErrUnresolvedCategory) || errors.Is(err, ledger.ErrMissingLedgerLink) {
		return http.StatusUnprocessableEntity
	}

	return http.StatusBadRequest
}

// Account errors
var errAccountTypeInvalid = errors.New("the specified account type is invalid")

// Journal entry errors
var errNoEntryLines = errors.New("a journal entry needs a list of lines")

