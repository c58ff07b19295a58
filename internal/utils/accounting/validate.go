// Package accounting holds the pure double-entry arithmetic shared by
// services and repositories: entry-set validation, fair-market-value
// mismatch detection, and the balance sheet equation.
package accounting

import (
	"errors"
	"fmt"

	"github.com/barterbase/barter_books_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MinorUnitTolerance is the epsilon for "balanced" comparisons: totals that
// differ by at most one minor unit (one cent) are considered equal. This
// absorbs rounding in fixed-point arithmetic and is the single tolerance used
// everywhere a balance is checked.
var MinorUnitTolerance = decimal.New(1, -2) // 0.01

// ErrEmptyEntrySet indicates validation was asked to run on zero entries.
var ErrEmptyEntrySet = errors.New("entry set is empty")

// NegativeAmountError reports an entry whose amount is zero or negative.
// Zero-amount entries are rejected: amounts must be strictly positive.
type NegativeAmountError struct {
	EntryIndex int
	Amount     decimal.Decimal
}

func (e *NegativeAmountError) Error() string {
	return fmt.Sprintf("entry %d has non-positive amount %s", e.EntryIndex, e.Amount.String())
}

// UnbalancedError reports debit and credit totals that differ by more than
// one minor unit.
type UnbalancedError struct {
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("entries do not balance: debits sum to %s, credits sum to %s",
		e.DebitTotal.String(), e.CreditTotal.String())
}

// Delta returns the absolute difference between the two totals.
func (e *UnbalancedError) Delta() decimal.Decimal {
	return e.DebitTotal.Sub(e.CreditTotal).Abs()
}

// WithinTolerance reports whether a and b differ by at most one minor unit.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(MinorUnitTolerance)
}

// ValidateEntries checks that a set of ledger entries is non-empty, that
// every amount is strictly positive, and that debits equal credits within one
// minor unit. It is a pure function: it is run before posting a transaction
// and never re-checked after (posted entries are immutable).
func ValidateEntries(entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return ErrEmptyEntrySet
	}

	debitTotal := decimal.Zero
	creditTotal := decimal.Zero
	for i, entry := range entries {
		if entry.Amount.LessThanOrEqual(decimal.Zero) {
			return &NegativeAmountError{EntryIndex: i, Amount: entry.Amount}
		}
		if entry.Direction == domain.Debit {
			debitTotal = debitTotal.Add(entry.Amount)
		} else {
			creditTotal = creditTotal.Add(entry.Amount)
		}
	}

	if !WithinTolerance(debitTotal, creditTotal) {
		return &UnbalancedError{DebitTotal: debitTotal, CreditTotal: creditTotal}
	}
	return nil
}
