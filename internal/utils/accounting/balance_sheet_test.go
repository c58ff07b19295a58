package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/barterbase/barter_books_app/internal/core/domain"
	"github.com/barterbase/barter_books_app/internal/utils/accounting"
)

func lineItem(section domain.BalanceSheetSection, amount string) domain.BalanceSheetLineItem {
	return domain.BalanceSheetLineItem{
		Section: section,
		Amount:  decimal.RequireFromString(amount),
	}
}

func TestSummarizeBalanceSheet_Balanced(t *testing.T) {
	items := []domain.BalanceSheetLineItem{
		lineItem(domain.CurrentAssets, "7000.00"),
		lineItem(domain.FixedAssets, "3000.00"),
		lineItem(domain.CurrentLiabilities, "4000.00"),
		lineItem(domain.LongTermLiabilities, "2000.00"),
		lineItem(domain.EquitySection, "4000.00"),
	}

	summary := accounting.SummarizeBalanceSheet(items)

	assert.True(t, summary.TotalAssets.Equal(decimal.RequireFromString("10000.00")))
	assert.True(t, summary.TotalLiabilities.Equal(decimal.RequireFromString("6000.00")))
	assert.True(t, summary.TotalEquity.Equal(decimal.RequireFromString("4000.00")))
	assert.True(t, summary.TotalLiabilitiesAndEquity.Equal(decimal.RequireFromString("10000.00")))
	assert.True(t, summary.Delta.IsZero())
	assert.True(t, summary.IsBalanced)
}

func TestSummarizeBalanceSheet_Unbalanced(t *testing.T) {
	items := []domain.BalanceSheetLineItem{
		lineItem(domain.CurrentAssets, "10000.00"),
		lineItem(domain.CurrentLiabilities, "6000.00"),
		lineItem(domain.EquitySection, "2000.00"),
	}

	summary := accounting.SummarizeBalanceSheet(items)

	assert.False(t, summary.IsBalanced)
	assert.True(t, summary.Delta.Equal(decimal.RequireFromString("2000.00")))
}

func TestSummarizeBalanceSheet_MultipleItemsPerSection(t *testing.T) {
	items := []domain.BalanceSheetLineItem{
		lineItem(domain.CurrentAssets, "100.00"),
		lineItem(domain.CurrentAssets, "50.00"),
		lineItem(domain.EquitySection, "150.00"),
	}

	summary := accounting.SummarizeBalanceSheet(items)

	assert.True(t, summary.SectionTotals[domain.CurrentAssets].Equal(decimal.RequireFromString("150.00")))
	assert.True(t, summary.IsBalanced)
}

func TestSummarizeBalanceSheet_Empty(t *testing.T) {
	summary := accounting.SummarizeBalanceSheet(nil)

	assert.True(t, summary.TotalAssets.IsZero())
	assert.True(t, summary.TotalLiabilitiesAndEquity.IsZero())
	assert.True(t, summary.IsBalanced)
}

func TestSummarizeBalanceSheet_WithinMinorUnit(t *testing.T) {
	items := []domain.BalanceSheetLineItem{
		lineItem(domain.CurrentAssets, "100.00"),
		lineItem(domain.EquitySection, "100.01"),
	}

	summary := accounting.SummarizeBalanceSheet(items)
	assert.True(t, summary.IsBalanced)
}
