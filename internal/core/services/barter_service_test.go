package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/barterbase/barter_books_app/internal/core/domain"
	"github.com/barterbase/barter_books_app/internal/core/services"
	"github.com/barterbase/barter_books_app/internal/utils/accounting"
)

func barterFixture(received, provided string) (domain.BarterDetail, domain.BarterAccounts) {
	detail := domain.BarterDetail{
		TransactionID:            "txn-1",
		GoodsProvidedDescription: "web design services",
		GoodsReceivedDescription: "office furniture",
		FMVProvided:              decimal.RequireFromString(provided),
		FMVReceived:              decimal.RequireFromString(received),
	}
	accounts := domain.BarterAccounts{
		IncomeAccountID:   "acc-income",
		ExpenseAccountID:  "acc-expense",
		ClearingAccountID: "acc-clearing",
	}
	return detail, accounts
}

func TestGenerateBarterEntries_UnequalFMVs(t *testing.T) {
	detail, accounts := barterFixture("1000.00", "900.00")

	entries, warning, err := services.GenerateBarterEntries("txn-1", detail, accounts, decimal.NewFromInt(5))

	assert.NoError(t, err)
	assert.Len(t, entries, 3)

	income, expense, clearing := entries[0], entries[1], entries[2]

	assert.Equal(t, "acc-income", income.AccountID)
	assert.Equal(t, domain.Credit, income.Direction)
	assert.True(t, income.Amount.Equal(decimal.RequireFromString("1000.00")))

	assert.Equal(t, "acc-expense", expense.AccountID)
	assert.Equal(t, domain.Debit, expense.Direction)
	assert.True(t, expense.Amount.Equal(decimal.RequireFromString("900.00")))

	// Received exceeds provided, so the clearing entry debits the difference.
	assert.Equal(t, "acc-clearing", clearing.AccountID)
	assert.Equal(t, domain.Debit, clearing.Direction)
	assert.True(t, clearing.Amount.Equal(decimal.RequireFromString("100.00")))

	for _, e := range entries {
		assert.Equal(t, "txn-1", e.TransactionID)
		assert.Equal(t, domain.Draft, e.State)
	}

	// The generated set must always satisfy the posting validation.
	assert.NoError(t, accounting.ValidateEntries(entries))

	// 100/1000 = 10% divergence against a 5% tolerance.
	assert.NotNil(t, warning)
	assert.True(t, warning.Delta.Equal(decimal.RequireFromString("100.00")))
}

func TestGenerateBarterEntries_EqualFMVs(t *testing.T) {
	detail, accounts := barterFixture("500.00", "500.00")

	entries, warning, err := services.GenerateBarterEntries("txn-1", detail, accounts, decimal.NewFromInt(5))

	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Nil(t, warning)
	assert.NoError(t, accounting.ValidateEntries(entries))
}

func TestGenerateBarterEntries_ProvidedExceedsReceived(t *testing.T) {
	detail, accounts := barterFixture("900.00", "1000.00")

	entries, _, err := services.GenerateBarterEntries("txn-1", detail, accounts, decimal.NewFromInt(50))

	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, domain.Credit, entries[2].Direction)
	assert.True(t, entries[2].Amount.Equal(decimal.RequireFromString("100.00")))
	assert.NoError(t, accounting.ValidateEntries(entries))
}

func TestGenerateBarterEntries_Deterministic(t *testing.T) {
	detail, accounts := barterFixture("1000.00", "900.00")

	first, _, err := services.GenerateBarterEntries("txn-1", detail, accounts, decimal.NewFromInt(5))
	assert.NoError(t, err)
	second, _, err := services.GenerateBarterEntries("txn-1", detail, accounts, decimal.NewFromInt(5))
	assert.NoError(t, err)

	for i := range first {
		assert.Equal(t, first[i].EntryID, second[i].EntryID)
	}

	// A different transaction gets different entry IDs.
	other, _, err := services.GenerateBarterEntries("txn-2", detail, accounts, decimal.NewFromInt(5))
	assert.NoError(t, err)
	assert.NotEqual(t, first[0].EntryID, other[0].EntryID)
}

func TestGenerateBarterEntries_NonPositiveFMV(t *testing.T) {
	detail, accounts := barterFixture("1000.00", "900.00")
	detail.FMVReceived = decimal.Zero

	entries, warning, err := services.GenerateBarterEntries("txn-1", detail, accounts, decimal.NewFromInt(5))

	assert.ErrorIs(t, err, services.ErrFMVNotPositive)
	assert.Nil(t, entries)
	assert.Nil(t, warning)
}

func TestGenerateBarterEntries_MissingAccounts(t *testing.T) {
	detail, accounts := barterFixture("1000.00", "900.00")
	accounts.ClearingAccountID = ""

	_, _, err := services.GenerateBarterEntries("txn-1", detail, accounts, decimal.NewFromInt(5))

	assert.ErrorIs(t, err, services.ErrMissingBarterAccounts)
}
