package v1

import (
	"github.com/kasbuku/backend/internal/models"
	"github.com/shopspring/decimal"
)

type AccountEditable struct {
	Code     string             `json:"code" example:"1-1100"`                  // Unique code of the account in the chart of accounts
	Name     string             `json:"name" example:"Cash"`                    // Name of the account
	Note     string             `json:"note" example:"Petty cash" default:""`   // A note
	Type     models.AccountType `json:"type" example:"asset"`                   // Type of the account
	Archived bool               `json:"archived" example:"true" default:"false"` // Is the account archived?
}

// model returns the database resource for the API representation of the editable fields
func (editable AccountEditable) model() models.Account {
	return models.Account{
		Code:     editable.Code,
		Name:     editable.Name,
		Note:     editable.Note,
		Type:     editable.Type,
		Archived: editable.Archived,
	}
}

// Account is the representation of an Account in API v1.
type Account struct {
	models.DefaultModel
	AccountEditable
	Balance decimal.Decimal `json:"balance" example:"1270.12"` // Balance derived from the journal
}

// newAccount returns the API v1 representation of the resource
func newAccount(model models.Account) Account {
	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			Code:     model.Code,
			Name:     model.Name,
			Note:     model.Note,
			Type:     model.Type,
			Archived: model.Archived,
		},
		Balance: model.Balance,
	}
}

type AccountQueryFilter struct {
	Code     string `form:"code"`                        // Filter by code
	Name     string `form:"name" filterField:"false"`    // Filter by name
	Type     string `form:"type"`                        // Filter by account type
	Archived bool   `form:"archived"`                    // Is the account archived?
	Offset   uint   `form:"offset" filterField:"false"`  // The offset of the first Account returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`   // Maximum number of Accounts to return. Defaults to 50.
}

func (f AccountQueryFilter) model() models.Account {
	return models.Account{
		Code:     f.Code,
		Type:     models.AccountType(f.Type),
		Archived: f.Archived,
	}
}

type AccountResponse struct {
	Data  *Account `json:"data"`                                                          // The Account data
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AccountListResponse struct {
	Data       []Account   `json:"data"`                                                          // List of accounts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type AccountCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AccountResponse `json:"data"`                                                          // List of created Accounts
}

func (a *AccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AccountResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		currentStatus = newStatus
	}

	return currentStatus
}
