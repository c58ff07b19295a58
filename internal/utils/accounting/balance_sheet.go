package accounting

import (
	"github.com/barterbase/barter_books_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSheetSummary is the result of folding a snapshot's line items into
// section totals and evaluating the accounting identity
// Assets = Liabilities + Equity. Delta is TotalAssets minus
// TotalLiabilitiesAndEquity and explains the mismatch when IsBalanced is
// false.
type BalanceSheetSummary struct {
	SectionTotals             map[domain.BalanceSheetSection]decimal.Decimal `json:"sectionTotals"`
	TotalAssets               decimal.Decimal                                `json:"totalAssets"`
	TotalLiabilities          decimal.Decimal                                `json:"totalLiabilities"`
	TotalEquity               decimal.Decimal                                `json:"totalEquity"`
	TotalLiabilitiesAndEquity decimal.Decimal                                `json:"totalLiabilitiesAndEquity"`
	Delta                     decimal.Decimal                                `json:"delta"`
	IsBalanced                bool                                           `json:"isBalanced"`
}

// SummarizeBalanceSheet sums line items per section and evaluates the
// accounting identity with the same minor-unit tolerance as entry
// validation. Pure function; the caller decides what to do with an
// unbalanced result (the UI gate blocks saving).
func SummarizeBalanceSheet(items []domain.BalanceSheetLineItem) BalanceSheetSummary {
	totals := map[domain.BalanceSheetSection]decimal.Decimal{
		domain.CurrentAssets:       decimal.Zero,
		domain.FixedAssets:         decimal.Zero,
		domain.CurrentLiabilities:  decimal.Zero,
		domain.LongTermLiabilities: decimal.Zero,
		domain.EquitySection:       decimal.Zero,
	}
	for _, item := range items {
		totals[item.Section] = totals[item.Section].Add(item.Amount)
	}

	totalAssets := totals[domain.CurrentAssets].Add(totals[domain.FixedAssets])
	totalLiabilities := totals[domain.CurrentLiabilities].Add(totals[domain.LongTermLiabilities])
	totalEquity := totals[domain.EquitySection]
	liabilitiesAndEquity := totalLiabilities.Add(totalEquity)

	return BalanceSheetSummary{
		SectionTotals:             totals,
		TotalAssets:               totalAssets,
		TotalLiabilities:          totalLiabilities,
		TotalEquity:               totalEquity,
		TotalLiabilitiesAndEquity: liabilitiesAndEquity,
		Delta:                     totalAssets.Sub(liabilitiesAndEquity),
		IsBalanced:                WithinTolerance(totalAssets, liabilitiesAndEquity),
	}
}
