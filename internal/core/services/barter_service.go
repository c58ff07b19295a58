package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/barterbase/barter_books_app/internal/core/domain"
	"github.com/barterbase/barter_books_app/internal/utils/accounting"
)

var (
	ErrFMVNotPositive        = errors.New("barter fair market values must be positive")
	ErrMissingBarterAccounts = errors.New("barter transactions require income, expense and clearing accounts")
)

// barterEntryNamespace seeds the deterministic entry IDs for generated barter
// entries. Regenerating the offsets for the same transaction yields the same
// entry IDs, so an edited draft replaces its rows instead of orphaning them.
var barterEntryNamespace = uuid.MustParse("9f2c41de-8a67-4c11-b3d5-0e7a62c90f14")

const (
	roleBarterIncome   = "barter-income"
	roleBarterExpense  = "barter-expense"
	roleBarterClearing = "barter-clearing"
)

func barterEntryID(transactionID, role string) string {
	return uuid.NewSHA1(barterEntryNamespace, []byte(transactionID+"/"+role)).String()
}

// GenerateBarterEntries derives the balanced ledger entries for a barter
// exchange: a credit to the income account for the FMV of goods received, a
// debit to the expense account for the FMV of goods provided, and, when the
// two sides differ, a clearing entry that absorbs the difference. The returned
// warning is non-nil when the FMVs diverge past tolerancePct; it never blocks
// generation.
func GenerateBarterEntries(transactionID string, detail domain.BarterDetail, accounts domain.BarterAccounts, tolerancePct decimal.Decimal) ([]domain.LedgerEntry, *accounting.FMVMismatchWarning, error) {
	if detail.FMVReceived.LessThanOrEqual(decimal.Zero) || detail.FMVProvided.LessThanOrEqual(decimal.Zero) {
		return nil, nil, fmt.Errorf("%w: received %s, provided %s", ErrFMVNotPositive, detail.FMVReceived, detail.FMVProvided)
	}
	if accounts.IncomeAccountID == "" || accounts.ExpenseAccountID == "" || accounts.ClearingAccountID == "" {
		return nil, nil, ErrMissingBarterAccounts
	}

	entries := []domain.LedgerEntry{
		{
			EntryID:       barterEntryID(transactionID, roleBarterIncome),
			TransactionID: transactionID,
			AccountID:     accounts.IncomeAccountID,
			Direction:     domain.Credit,
			Amount:        detail.FMVReceived,
			State:         domain.Draft,
			Notes:         "barter income: " + detail.GoodsReceivedDescription,
		},
		{
			EntryID:       barterEntryID(transactionID, roleBarterExpense),
			TransactionID: transactionID,
			AccountID:     accounts.ExpenseAccountID,
			Direction:     domain.Debit,
			Amount:        detail.FMVProvided,
			State:         domain.Draft,
			Notes:         "barter expense: " + detail.GoodsProvidedDescription,
		},
	}

	diff := detail.FMVReceived.Sub(detail.FMVProvided)
	if !diff.IsZero() {
		direction := domain.Debit
		if diff.IsNegative() {
			// Provided more than received, credits need topping up.
			direction = domain.Credit
		}
		entries = append(entries, domain.LedgerEntry{
			EntryID:       barterEntryID(transactionID, roleBarterClearing),
			TransactionID: transactionID,
			AccountID:     accounts.ClearingAccountID,
			Direction:     direction,
			Amount:        diff.Abs(),
			State:         domain.Draft,
			Notes:         "barter clearing",
		})
	}

	warning := accounting.CheckFMVMismatch(detail.FMVReceived, detail.FMVProvided, tolerancePct)
	return entries, warning, nil
}
