package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/kasbuku/backend/internal/controllers/v1"
	"github.com/kasbuku/backend/internal/ledger"
	"github.com/kasbuku/backend/internal/models"
	"github.com/kasbuku/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accountBalance reads an account via the API and returns its balance.
func accountBalance(t *testing.T, id uuid.UUID) decimal.Decimal {
	r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/accounts/%s", id), "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.AccountResponse
	test.DecodeResponse(t, &r, &response)

	return response.Data.Balance
}

// TestTransactionsCreateIncome verifies that an income transaction posts
// a journal entry debiting the cash account and crediting the category
// account.
func (suite *TestSuiteStandard) TestTransactionsCreateIncome() {
	cash := createTestAccount(suite.T(), v1.AccountEditable{Code: "1-1100", Name: "Bank BCA", Type: models.AccountTypeAsset})
	revenue := createTestAccount(suite.T(), v1.AccountEditable{Code: "2-1300", Name: "Invoice Payment", Type: models.AccountTypeRevenue})

	bca := createTestFinanceAccount(suite.T(), v1.FinanceAccountEditable{Name: "BCA", LinkedAccountID: &cash.Data.ID})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:             models.TransactionIncome,
		Amount:           decimal.NewFromInt(100000),
		Date:             time.Now(),
		Category:         "Invoice Payment",
		FinanceAccountID: bca.Data.ID,
	})

	require.NotNil(suite.T(), transaction.Data)
	require.NotNil(suite.T(), transaction.Data.JournalEntry)
	require.Len(suite.T(), transaction.Data.JournalEntry.Lines, 2)

	entry := transaction.Data.JournalEntry
	assert.Equal(suite.T(), models.ReferenceFinanceTransaction, entry.ReferenceType)
	assert.Equal(suite.T(), cash.Data.ID, entry.Lines[0].AccountID)
	assert.True(suite.T(), entry.Lines[0].Debit.Equal(decimal.NewFromInt(100000)))
	assert.Equal(suite.T(), revenue.Data.ID, entry.Lines[1].AccountID)
	assert.True(suite.T(), entry.Lines[1].Credit.Equal(decimal.NewFromInt(100000)))

	assert.True(suite.T(), accountBalance(suite.T(), cash.Data.ID).Equal(decimal.NewFromInt(100000)))
	assert.True(suite.T(), accountBalance(suite.T(), revenue.Data.ID).Equal(decimal.NewFromInt(100000)))
}

// TestTransactionsCreateExpense verifies that an expense transaction
// debits the category account and credits the cash account.
func (suite *TestSuiteStandard) TestTransactionsCreateExpense() {
	cash := createTestAccount(suite.T(), v1.AccountEditable{Code: "1-1100", Type: models.AccountTypeAsset})
	maintenance := createTestAccount(suite.T(), v1.AccountEditable{Code: "5-2000", Name: "Maintenance", Type: models.AccountTypeExpense})

	bca := createTestFinanceAccount(suite.T(), v1.FinanceAccountEditable{LinkedAccountID: &cash.Data.ID})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:             models.TransactionExpense,
		Amount:           decimal.NewFromInt(50000),
		Date:             time.Now(),
		Category:         "Maintenance",
		FinanceAccountID: bca.Data.ID,
	})

	require.NotNil(suite.T(), transaction.Data.JournalEntry)
	require.Len(suite.T(), transaction.Data.JournalEntry.Lines, 2)

	entry := transaction.Data.JournalEntry
	assert.Equal(suite.T(), maintenance.Data.ID, entry.Lines[0].AccountID)
	assert.True(suite.T(), entry.Lines[0].Debit.Equal(decimal.NewFromInt(50000)))
	assert.Equal(suite.T(), cash.Data.ID, entry.Lines[1].AccountID)
	assert.True(suite.T(), entry.Lines[1].Credit.Equal(decimal.NewFromInt(50000)))

	assert.True(suite.T(), accountBalance(suite.T(), cash.Data.ID).Equal(decimal.NewFromInt(-50000)))
	assert.True(suite.T(), accountBalance(suite.T(), maintenance.Data.ID).Equal(decimal.NewFromInt(50000)))
}

// TestTransactionsCreateTransfer verifies that a transfer moves money
// between the linked ledger accounts of two finance accounts.
func (suite *TestSuiteStandard) TestTransactionsCreateTransfer() {
	source := createTestAccount(suite.T(), v1.AccountEditable{Code: "1-1100", Type: models.AccountTypeAsset})
	target := createTestAccount(suite.T(), v1.AccountEditable{Code: "1-1200", Type: models.AccountTypeAsset})

	bca := createTestFinanceAccount(suite.T(), v1.FinanceAccountEditable{Name: "BCA", LinkedAccountID: &source.Data.ID})
	mandiri := createTestFinanceAccount(suite.T(), v1.FinanceAccountEditable{Name: "Mandiri", LinkedAccountID: &target.Data.ID})

	createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:             models.TransactionTransfer,
		Amount:           decimal.NewFromInt(25000),
		Date:             time.Now(),
		FinanceAccountID: bca.Data.ID,
		DestinationID:    &mandiri.Data.ID,
	})

	assert.True(suite.T(), accountBalance(suite.T(), source.Data.ID).Equal(decimal.NewFromInt(-25000)))
	assert.True(suite.T(), accountBalance(suite.T(), target.Data.ID).Equal(decimal.NewFromInt(25000)))
}

// TestTransactionsCreateUnresolved verifies that a transaction with an
// unknown category is rejected without saving anything.
func (suite *TestSuiteStandard) TestTransactionsCreateUnresolved() {
	cash := createTestAccount(suite.T(), v1.AccountEditable{Type: models.AccountTypeAsset})
	bca := createTestFinanceAccount(suite.T(), v1.FinanceAccountEditable{LinkedAccountID: &cash.Data.ID})

	response := createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:             models.TransactionExpense,
		Amount:           decimal.NewFromInt(100),
		Category:         "Mystery Category",
		FinanceAccountID: bca.Data.ID,
	}, http.StatusUnprocessableEntity)

	assert.Contains(suite.T(), *response.Error, ledger.ErrUnresolvedCategory.Error())

	// The transaction was rolled back together with the journal entry
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Empty(suite.T(), list.Data)
}

// TestTransactionsCreateManualMapping verifies that a manual mapping
// resolves the category and is remembered for later transactions.
func (suite *TestSuiteStandard) TestTransactionsCreateManualMapping() {
	cash := createTestAccount(suite.T(), v1.AccountEditable{Type: models.AccountTypeAsset})
	snacks := createTestAccount(suite.T(), v1.AccountEditable{Name: "Snacks", Type: models.AccountTypeExpense})
	bca := createTestFinanceAccount(suite.T(), v1.FinanceAccountEditable{LinkedAccountID: &cash.Data.ID})

	createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:             models.TransactionExpense,
		Amount:           decimal.NewFromInt(75),
		Category:         "Snacks",
		FinanceAccountID: bca.Data.ID,
		ManualMappings:   map[string]uuid.UUID{"Snacks": snacks.Data.ID},
	})

	// The next transaction with the same category resolves without a hint
	createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:             models.TransactionExpense,
		Amount:           decimal.NewFromInt(25),
		Category:         "Snacks",
		FinanceAccountID: bca.Data.ID,
	})

	assert.True(suite.T(), accountBalance(suite.T(), snacks.Data.ID).Equal(decimal.NewFromInt(100)))

	// The learned mapping is visible as a resource
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/category-mappings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var mappings v1.CategoryMappingListResponse
	test.DecodeResponse(suite.T(), &r, &mappings)
	require.Len(suite.T(), mappings.Data, 1)
	assert.Equal(suite.T(), "Snacks", mappings.Data[0].Category)
	assert.Equal(suite.T(), snacks.Data.ID, mappings.Data[0].AccountID)
}

// TestTransactionsCreateMissingLink verifies that a transaction through
// a finance account without a ledger link is rejected.
func (suite *TestSuiteStandard) TestTransactionsCreateMissingLink() {
	unlinked := createTestFinanceAccount(suite.T(), v1.FinanceAccountEditable{Name: "Petty Cash Box"})

	response := createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:             models.TransactionIncome,
		Amount:           decimal.NewFromInt(100),
		Category:         "Invoice Payment",
		FinanceAccountID: unlinked.Data.ID,
	}, http.StatusUnprocessableEntity)

	assert.Contains(suite.T(), *response.Error, ledger.ErrMissingLedgerLink.Error())
}

// TestTransactionsGetSingle verifies that a transaction is returned with
// its journal entry.
func (suite *TestSuiteStandard) TestTransactionsGetSingle() {
	cash := createTestAccount(suite.T(), v1.AccountEditable{Code: "1-1100", Type: models.AccountTypeAsset})
	createTestAccount(suite.T(), v1.AccountEditable{Code: "2-1300", Type: models.AccountTypeRevenue})
	bca := createTestFinanceAccount(suite.T(), v1.FinanceAccountEditable{LinkedAccountID: &cash.Data.ID})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:             models.TransactionIncome,
		Amount:           decimal.NewFromInt(100000),
		Category:         "Invoice Payment",
		FinanceAccountID: bca.Data.ID,
	})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing Transaction", transaction.Data.ID.String(), http.StatusOK},
		{"No Transaction with this ID", uuid.New().String(), http.StatusNotFound},
		{"Invalid ID", "definitely-not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusOK {
				var response v1.TransactionResponse
				test.DecodeResponse(t, &r, &response)
				assert.NotNil(t, response.Data.JournalEntry)
			}
		})
	}
}

// TestTransactionsGetFiltered verifies the query filters of the
// transaction list.
func (suite *TestSuiteStandard) TestTransactionsGetFiltered() {
	cash := createTestAccount(suite.T(), v1.AccountEditable{Code: "1-1100", Type: models.AccountTypeAsset})
	createTestAccount(suite.T(), v1.AccountEditable{Code: "2-1300", Type: models.AccountTypeRevenue})
	createTestAccount(suite.T(), v1.AccountEditable{Code: "5-2000", Type: models.AccountTypeExpense})
	bca := createTestFinanceAccount(suite.T(), v1.FinanceAccountEditable{LinkedAccountID: &cash.Data.ID})

	createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:             models.TransactionIncome,
		Amount:           decimal.NewFromInt(100000),
		Category:         "Invoice Payment",
		FinanceAccountID: bca.Data.ID,
	})
	createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:             models.TransactionExpense,
		Amount:           decimal.NewFromInt(50000),
		Category:         "Maintenance",
		FinanceAccountID: bca.Data.ID,
	})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"All", "", 2},
		{"Type", "type=income", 1},
		{"Category", "category=Maintenance", 1},
		{"Finance account", fmt.Sprintf("financeAccount=%s", bca.Data.ID), 2},
		{"No matches", "category=Snacks", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

// TestUnresolvedCategories verifies the unresolved category listing.
func (suite *TestSuiteStandard) TestUnresolvedCategories() {
	cash := createTestAccount(suite.T(), v1.AccountEditable{Type: models.AccountTypeAsset})
	bca := createTestFinanceAccount(suite.T(), v1.FinanceAccountEditable{LinkedAccountID: &cash.Data.ID})

	// Transactions written directly: the API rejects unresolvable
	// categories, but imports from other systems do not.
	for _, category := range []string{"Snacks", "Travel"} {
		transaction := models.FinanceTransaction{
			Type:             models.TransactionExpense,
			Amount:           decimal.NewFromInt(100),
			Category:         category,
			FinanceAccountID: bca.Data.ID,
		}
		suite.Require().Nil(models.DB.Create(&transaction).Error)
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories/unresolved", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UnresolvedCategoriesResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), []string{"Snacks", "Travel"}, response.Data)
}
