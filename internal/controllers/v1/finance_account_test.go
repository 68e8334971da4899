package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/kasbuku/backend/internal/controllers/v1"
	"github.com/kasbuku/backend/internal/models"
	"github.com/kasbuku/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFinanceAccountsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestFinanceAccountsOptions() {
	account := createTestFinanceAccount(suite.T(), v1.FinanceAccountEditable{})

	tests := []struct {
		name   string
		id     string // path at the FinanceAccounts endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No FinanceAccount with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"FinanceAccount exists", account.Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/finance-accounts", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH", r.Header().Get("allow"))
			}
		})
	}
}

// TestFinanceAccountsCreate verifies finance account creation with and
// without a ledger account link.
func (suite *TestSuiteStandard) TestFinanceAccountsCreate() {
	cash := createTestAccount(suite.T(), v1.AccountEditable{Type: models.AccountTypeAsset})

	linked := createTestFinanceAccount(suite.T(), v1.FinanceAccountEditable{
		Name:            "BCA",
		LinkedAccountID: &cash.Data.ID,
	})
	require.NotNil(suite.T(), linked.Data.LinkedAccountID)
	assert.Equal(suite.T(), cash.Data.ID, *linked.Data.LinkedAccountID)

	// Without a link: allowed, but transactions will not sync until one is set
	unlinked := createTestFinanceAccount(suite.T(), v1.FinanceAccountEditable{Name: "Petty Cash"})
	assert.Nil(suite.T(), unlinked.Data.LinkedAccountID)

	// The linked ledger account has to exist
	ghost := uuid.New()
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/finance-accounts", []v1.FinanceAccountEditable{
		{Name: "Broken", LinkedAccountID: &ghost},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestFinanceAccountsUpdate verifies that the ledger link can be set
// after creation.
func (suite *TestSuiteStandard) TestFinanceAccountsUpdate() {
	cash := createTestAccount(suite.T(), v1.AccountEditable{Type: models.AccountTypeAsset})
	account := createTestFinanceAccount(suite.T(), v1.FinanceAccountEditable{Name: "Petty Cash"})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/finance-accounts/%s", account.Data.ID), v1.FinanceAccountEditable{
		Name:            "Petty Cash",
		LinkedAccountID: &cash.Data.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/finance-accounts/%s", account.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.FinanceAccountResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data.LinkedAccountID)
	assert.Equal(suite.T(), cash.Data.ID, *response.Data.LinkedAccountID)
}

// TestFinanceAccountsList verifies that finance accounts are listed in
// name order.
func (suite *TestSuiteStandard) TestFinanceAccountsList() {
	for _, name := range []string{"Mandiri", "BCA", "Petty Cash"} {
		createTestFinanceAccount(suite.T(), v1.FinanceAccountEditable{Name: name})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/finance-accounts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.FinanceAccountListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	names := make([]string, 0, len(response.Data))
	for _, account := range response.Data {
		names = append(names, account.Name)
	}
	assert.Equal(suite.T(), []string{"BCA", "Mandiri", "Petty Cash"}, names)
}
