package v1

import (
	"github.com/google/uuid"
	"github.com/kasbuku/backend/internal/models"
)

type FinanceAccountEditable struct {
	Name            string     `json:"name" example:"BCA"`                                             // Name of the cash or bank account
	Note            string     `json:"note" example:"Main operating account" default:""`               // A note
	LinkedAccountID *uuid.UUID `json:"linkedAccountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"` // The ledger account postings for this account go to
}

// model returns the database resource for the API representation of the editable fields
func (editable FinanceAccountEditable) model() models.FinanceAccount {
	return models.FinanceAccount{
		Name:            editable.Name,
		Note:            editable.Note,
		LinkedAccountID: editable.LinkedAccountID,
	}
}

// FinanceAccount is the representation of a FinanceAccount in API v1.
type FinanceAccount struct {
	models.DefaultModel
	FinanceAccountEditable
}

// newFinanceAccount returns the API v1 representation of the resource
func newFinanceAccount(model models.FinanceAccount) FinanceAccount {
	return FinanceAccount{
		DefaultModel: model.DefaultModel,
		FinanceAccountEditable: FinanceAccountEditable{
			Name:            model.Name,
			Note:            model.Note,
			LinkedAccountID: model.LinkedAccountID,
		},
	}
}

type FinanceAccountResponse struct {
	Data  *FinanceAccount `json:"data"`                                                          // The FinanceAccount data
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type FinanceAccountListResponse struct {
	Data  []FinanceAccount `json:"data"`                                                          // List of finance accounts
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type FinanceAccountCreateResponse struct {
	Error *string                  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []FinanceAccountResponse `json:"data"`                                                          // List of created FinanceAccounts
}

func (a *FinanceAccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, FinanceAccountResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		currentStatus = newStatus
	}

	return currentStatus
}
