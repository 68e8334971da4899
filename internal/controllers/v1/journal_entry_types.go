package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/kasbuku/backend/internal/ledger"
	"github.com/kasbuku/backend/internal/models"
	"github.com/shopspring/decimal"
)

type LineEditable struct {
	AccountID uuid.UUID       `json:"accountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`       // Account the line posts against
	Debit     decimal.Decimal `json:"debit" example:"100000" minimum:"0" default:"0"`                 // Debit amount. Exactly one of debit and credit is non-zero.
	Credit    decimal.Decimal `json:"credit" example:"0" minimum:"0" default:"0"`                     // Credit amount
}

func (editable LineEditable) line() ledger.Line {
	return ledger.Line{
		AccountID: editable.AccountID,
		Debit:     editable.Debit,
		Credit:    editable.Credit,
	}
}

type JournalEntryEditable struct {
	Description string         `json:"description" example:"Office rent June" default:""`     // Description of the business event
	Date        time.Time      `json:"date" example:"2023-06-01T00:00:00Z"`                   // Date of the entry
	Lines       []LineEditable `json:"lines"`                                                 // The debit and credit lines, at least two
}

func (editable JournalEntryEditable) lines() []ledger.Line {
	lines := make([]ledger.Line, 0, len(editable.Lines))
	for _, l := range editable.Lines {
		lines = append(lines, l.line())
	}

	return lines
}

type Line struct {
	AccountID uuid.UUID       `json:"accountId"` // Account the line posts against
	Debit     decimal.Decimal `json:"debit"`     // Debit amount
	Credit    decimal.Decimal `json:"credit"`    // Credit amount
}

// JournalEntry is the representation of a JournalEntry in API v1.
type JournalEntry struct {
	models.DefaultModel
	Description   string               `json:"description"`   // Description of the business event
	Date          time.Time            `json:"date"`          // Date of the entry
	ReferenceType models.ReferenceType `json:"referenceType"` // Kind of business object the entry was posted for
	ReferenceID   *uuid.UUID           `json:"referenceId"`   // ID of the business object the entry was posted for
	Lines         []Line               `json:"lines"`         // The debit and credit lines
}

// newJournalEntry returns the API v1 representation of the resource
func newJournalEntry(model models.JournalEntry) JournalEntry {
	lines := make([]Line, 0, len(model.Items))
	for _, item := range model.Items {
		lines = append(lines, Line{
			AccountID: item.AccountID,
			Debit:     item.Debit,
			Credit:    item.Credit,
		})
	}

	return JournalEntry{
		DefaultModel:  model.DefaultModel,
		Description:   model.Description,
		Date:          model.Date,
		ReferenceType: model.ReferenceType,
		ReferenceID:   model.ReferenceID,
		Lines:         lines,
	}
}

type JournalEntryQueryFilter struct {
	ReferenceType string `form:"referenceType"`              // Filter by reference type
	Description   string `form:"description" filterField:"false"` // Filter by description
	Offset        uint   `form:"offset" filterField:"false"` // The offset of the first JournalEntry returned. Defaults to 0.
	Limit         int    `form:"limit" filterField:"false"`  // Maximum number of JournalEntries to return. Defaults to 50.
}

func (f JournalEntryQueryFilter) model() models.JournalEntry {
	return models.JournalEntry{
		ReferenceType: models.ReferenceType(f.ReferenceType),
	}
}

type JournalEntryResponse struct {
	Data  *JournalEntry `json:"data"`                                                          // The JournalEntry data
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type JournalEntryListResponse struct {
	Data       []JournalEntry `json:"data"`                                                          // List of journal entries
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}
