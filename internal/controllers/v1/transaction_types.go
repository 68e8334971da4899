package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/kasbuku/backend/internal/models"
	kb_uuid "github.com/kasbuku/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Type             models.TransactionType `json:"type" example:"income"`                                           // income, expense or transfer
	Amount           decimal.Decimal        `json:"amount" example:"100000" minimum:"0.00000001"`                    // The amount of the transaction
	Date             time.Time              `json:"date" example:"2023-06-01T00:00:00Z"`                             // Date of the transaction
	Category         string                 `json:"category" example:"Invoice Payment" default:""`                   // Free-text category, resolved to a ledger account when syncing
	Description      string                 `json:"description" example:"Payment for INV-0042" default:""`           // A description
	FinanceAccountID uuid.UUID              `json:"financeAccountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"` // The finance account money moved through
	DestinationID    *uuid.UUID             `json:"destinationId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"`    // Target finance account, only for transfers

	// ManualMappings assigns accounts to categories for this request. A
	// manual mapping is persisted and reused, so it only needs to be
	// supplied once per category.
	ManualMappings map[string]uuid.UUID `json:"manualMappings,omitempty"`
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.FinanceTransaction {
	return models.FinanceTransaction{
		Type:             editable.Type,
		Amount:           editable.Amount,
		Date:             editable.Date,
		Category:         editable.Category,
		Description:      editable.Description,
		FinanceAccountID: editable.FinanceAccountID,
		DestinationID:    editable.DestinationID,
	}
}

// Transaction is the representation of a FinanceTransaction in API v1.
type Transaction struct {
	models.DefaultModel
	Type             models.TransactionType `json:"type"`             // income, expense or transfer
	Amount           decimal.Decimal        `json:"amount"`           // The amount of the transaction
	Date             time.Time              `json:"date"`             // Date of the transaction
	Category         string                 `json:"category"`         // Free-text category
	Description      string                 `json:"description"`      // A description
	FinanceAccountID uuid.UUID              `json:"financeAccountId"` // The finance account money moved through
	DestinationID    *uuid.UUID             `json:"destinationId"`    // Target finance account, only for transfers
	JournalEntry     *JournalEntry          `json:"journalEntry"`     // The journal entry posted for the transaction
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(model models.FinanceTransaction, entry *models.JournalEntry) Transaction {
	transaction := Transaction{
		DefaultModel:     model.DefaultModel,
		Type:             model.Type,
		Amount:           model.Amount,
		Date:             model.Date,
		Category:         model.Category,
		Description:      model.Description,
		FinanceAccountID: model.FinanceAccountID,
		DestinationID:    model.DestinationID,
	}

	if entry != nil {
		data := newJournalEntry(*entry)
		transaction.JournalEntry = &data
	}

	return transaction
}

type TransactionQueryFilter struct {
	Type             string       `form:"type"`                       // Filter by transaction type
	Category         string       `form:"category"`                   // Filter by category
	FinanceAccountID kb_uuid.UUID `form:"financeAccount"`             // Filter by finance account
	Offset           uint         `form:"offset" filterField:"false"` // The offset of the first Transaction returned. Defaults to 0.
	Limit            int          `form:"limit" filterField:"false"`  // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.FinanceTransaction {
	return models.FinanceTransaction{
		Type:             models.TransactionType(f.Type),
		Category:         f.Category,
		FinanceAccountID: f.FinanceAccountID.UUID,
	}
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // The Transaction data
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type UnresolvedCategoriesResponse struct {
	Data  []string `json:"data"`                                                          // Categories that do not resolve to an account yet
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
