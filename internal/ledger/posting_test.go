package ledger_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/kasbuku/backend/internal/ledger"
	"github.com/kasbuku/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestPostEntry() {
	cash := suite.createTestAccount(models.Account{Code: "1-1100", Name: "Cash at Bank", Type: models.AccountTypeAsset})
	revenue := suite.createTestAccount(models.Account{Code: "2-1300", Name: "Invoice Payment", Type: models.AccountTypeRevenue})

	entry, err := ledger.PostEntry(models.DB, "Invoice paid", time.Now(), models.ReferenceManual, nil, []ledger.Line{
		{AccountID: cash.ID, Debit: decimal.NewFromInt(100000)},
		{AccountID: revenue.ID, Credit: decimal.NewFromInt(100000)},
	})
	suite.Assert().Nil(err)
	suite.Assert().Len(entry.Items, 2)
	suite.Assert().NotEqual(uuid.Nil, entry.ID)

	suite.Assert().Equal("100000", suite.balance(cash.ID))
	suite.Assert().Equal("100000", suite.balance(revenue.ID))
}

func (suite *TestSuiteStandard) TestPostEntryUnbalanced() {
	cash := suite.createTestAccount(models.Account{Type: models.AccountTypeAsset})
	revenue := suite.createTestAccount(models.Account{Type: models.AccountTypeRevenue})

	_, err := ledger.PostEntry(models.DB, "Does not add up", time.Now(), models.ReferenceManual, nil, []ledger.Line{
		{AccountID: cash.ID, Debit: decimal.NewFromInt(100)},
		{AccountID: revenue.ID, Credit: decimal.NewFromInt(90)},
	})
	suite.Assert().ErrorIs(err, ledger.ErrUnbalancedEntry)

	// Nothing may be persisted for a rejected entry.
	var count int64
	models.DB.Model(&models.JournalEntry{}).Count(&count)
	suite.Assert().Equal(int64(0), count)

	suite.Assert().Equal("0", suite.balance(cash.ID))
}

func (suite *TestSuiteStandard) TestPostEntryWithinEpsilon() {
	cash := suite.createTestAccount(models.Account{Type: models.AccountTypeAsset})
	revenue := suite.createTestAccount(models.Account{Type: models.AccountTypeRevenue})

	// A difference below 0.01 is accepted as rounding noise.
	_, err := ledger.PostEntry(models.DB, "Rounding", time.Now(), models.ReferenceManual, nil, []ledger.Line{
		{AccountID: cash.ID, Debit: decimal.NewFromFloat(10.009)},
		{AccountID: revenue.ID, Credit: decimal.NewFromFloat(10.005)},
	})
	suite.Assert().Nil(err)

	_, err = ledger.PostEntry(models.DB, "Too far off", time.Now(), models.ReferenceManual, nil, []ledger.Line{
		{AccountID: cash.ID, Debit: decimal.NewFromFloat(10.01)},
		{AccountID: revenue.ID, Credit: decimal.NewFromInt(10)},
	})
	suite.Assert().ErrorIs(err, ledger.ErrUnbalancedEntry)
}

func (suite *TestSuiteStandard) TestPostEntryTooFewLines() {
	cash := suite.createTestAccount(models.Account{Type: models.AccountTypeAsset})

	_, err := ledger.PostEntry(models.DB, "Single sided", time.Now(), models.ReferenceManual, nil, []ledger.Line{
		{AccountID: cash.ID, Debit: decimal.NewFromInt(100)},
	})
	suite.Assert().ErrorIs(err, ledger.ErrTooFewLines)
}

func (suite *TestSuiteStandard) TestPostEntryLineSides() {
	cash := suite.createTestAccount(models.Account{Type: models.AccountTypeAsset})
	revenue := suite.createTestAccount(models.Account{Type: models.AccountTypeRevenue})

	_, err := ledger.PostEntry(models.DB, "Both sides", time.Now(), models.ReferenceManual, nil, []ledger.Line{
		{AccountID: cash.ID, Debit: decimal.NewFromInt(100), Credit: decimal.NewFromInt(100)},
		{AccountID: revenue.ID, Credit: decimal.NewFromInt(100)},
	})
	suite.Assert().ErrorIs(err, models.ErrItemBothSidesSet)

	_, err = ledger.PostEntry(models.DB, "No side", time.Now(), models.ReferenceManual, nil, []ledger.Line{
		{AccountID: cash.ID},
		{AccountID: revenue.ID, Credit: decimal.NewFromInt(100)},
	})
	suite.Assert().ErrorIs(err, models.ErrItemNoSideSet)

	_, err = ledger.PostEntry(models.DB, "Negative", time.Now(), models.ReferenceManual, nil, []ledger.Line{
		{AccountID: cash.ID, Debit: decimal.NewFromInt(-100)},
		{AccountID: revenue.ID, Credit: decimal.NewFromInt(-100)},
	})
	suite.Assert().ErrorIs(err, models.ErrItemNegative)
}

func (suite *TestSuiteStandard) TestPostEntryAccountNotFound() {
	cash := suite.createTestAccount(models.Account{Type: models.AccountTypeAsset})

	_, err := ledger.PostEntry(models.DB, "Ghost account", time.Now(), models.ReferenceManual, nil, []ledger.Line{
		{AccountID: cash.ID, Debit: decimal.NewFromInt(100)},
		{AccountID: uuid.New(), Credit: decimal.NewFromInt(100)},
	})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	var count int64
	models.DB.Model(&models.JournalEntry{}).Count(&count)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestPostEntryMultiLine() {
	cash := suite.createTestAccount(models.Account{Type: models.AccountTypeAsset})
	revenue := suite.createTestAccount(models.Account{Type: models.AccountTypeRevenue})
	fees := suite.createTestAccount(models.Account{Type: models.AccountTypeExpense})

	// Split posting: gross revenue with a fee deducted from the cash leg.
	_, err := ledger.PostEntry(models.DB, "Invoice with fee", time.Now(), models.ReferenceManual, nil, []ledger.Line{
		{AccountID: cash.ID, Debit: decimal.NewFromInt(9700)},
		{AccountID: fees.ID, Debit: decimal.NewFromInt(300)},
		{AccountID: revenue.ID, Credit: decimal.NewFromInt(10000)},
	})
	suite.Assert().Nil(err)

	suite.Assert().Equal("9700", suite.balance(cash.ID))
	suite.Assert().Equal("300", suite.balance(fees.ID))
	suite.Assert().Equal("10000", suite.balance(revenue.ID))
}

func (suite *TestSuiteStandard) TestUpdateEntry() {
	cash := suite.createTestAccount(models.Account{Type: models.AccountTypeAsset})
	revenue := suite.createTestAccount(models.Account{Type: models.AccountTypeRevenue})
	other := suite.createTestAccount(models.Account{Type: models.AccountTypeRevenue})

	entry, err := ledger.PostEntry(models.DB, "Initial", time.Now(), models.ReferenceManual, nil, []ledger.Line{
		{AccountID: cash.ID, Debit: decimal.NewFromInt(500)},
		{AccountID: revenue.ID, Credit: decimal.NewFromInt(500)},
	})
	suite.Require().Nil(err)

	// Move the credit to another account and change the amount.
	updated, err := ledger.UpdateEntry(models.DB, entry.ID, "Corrected", time.Now(), []ledger.Line{
		{AccountID: cash.ID, Debit: decimal.NewFromInt(800)},
		{AccountID: other.ID, Credit: decimal.NewFromInt(800)},
	})
	suite.Assert().Nil(err)
	suite.Assert().Equal("Corrected", updated.Description)
	suite.Assert().Len(updated.Items, 2)

	// Accounts on both the old and the new lines are recalculated.
	suite.Assert().Equal("800", suite.balance(cash.ID))
	suite.Assert().Equal("0", suite.balance(revenue.ID))
	suite.Assert().Equal("800", suite.balance(other.ID))
}

func (suite *TestSuiteStandard) TestUpdateEntryUnbalancedKeepsOld() {
	cash := suite.createTestAccount(models.Account{Type: models.AccountTypeAsset})
	revenue := suite.createTestAccount(models.Account{Type: models.AccountTypeRevenue})

	entry, err := ledger.PostEntry(models.DB, "Initial", time.Now(), models.ReferenceManual, nil, []ledger.Line{
		{AccountID: cash.ID, Debit: decimal.NewFromInt(500)},
		{AccountID: revenue.ID, Credit: decimal.NewFromInt(500)},
	})
	suite.Require().Nil(err)

	_, err = ledger.UpdateEntry(models.DB, entry.ID, "Broken", time.Now(), []ledger.Line{
		{AccountID: cash.ID, Debit: decimal.NewFromInt(800)},
		{AccountID: revenue.ID, Credit: decimal.NewFromInt(700)},
	})
	suite.Assert().ErrorIs(err, ledger.ErrUnbalancedEntry)

	var reloaded models.JournalEntry
	err = models.DB.Preload("Items").First(&reloaded, "id = ?", entry.ID).Error
	suite.Require().Nil(err)
	suite.Assert().Equal("Initial", reloaded.Description)
	suite.Assert().Len(reloaded.Items, 2)

	suite.Assert().Equal("500", suite.balance(cash.ID))
}

func (suite *TestSuiteStandard) TestUpdateEntryNotFound() {
	_, err := ledger.UpdateEntry(models.DB, uuid.New(), "Nope", time.Now(), nil)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteEntry() {
	cash := suite.createTestAccount(models.Account{Type: models.AccountTypeAsset})
	revenue := suite.createTestAccount(models.Account{Type: models.AccountTypeRevenue})

	entry, err := ledger.PostEntry(models.DB, "To be removed", time.Now(), models.ReferenceManual, nil, []ledger.Line{
		{AccountID: cash.ID, Debit: decimal.NewFromInt(250)},
		{AccountID: revenue.ID, Credit: decimal.NewFromInt(250)},
	})
	suite.Require().Nil(err)
	suite.Assert().Equal("250", suite.balance(cash.ID))

	err = ledger.DeleteEntry(models.DB, entry.ID)
	suite.Assert().Nil(err)

	suite.Assert().Equal("0", suite.balance(cash.ID))
	suite.Assert().Equal("0", suite.balance(revenue.ID))

	var count int64
	models.DB.Model(&models.JournalEntry{}).Count(&count)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestDeleteEntryNotFound() {
	err := ledger.DeleteEntry(models.DB, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
