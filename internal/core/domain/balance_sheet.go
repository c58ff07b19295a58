package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceSheetSection is one of the five sections a line item belongs to.
type BalanceSheetSection string

const (
	CurrentAssets        BalanceSheetSection = "CURRENT_ASSETS"
	FixedAssets          BalanceSheetSection = "FIXED_ASSETS"
	CurrentLiabilities   BalanceSheetSection = "CURRENT_LIABILITIES"
	LongTermLiabilities  BalanceSheetSection = "LONG_TERM_LIABILITIES"
	EquitySection        BalanceSheetSection = "EQUITY"
)

// PeriodType describes the reporting period of a snapshot.
type PeriodType string

const (
	PeriodMonth   PeriodType = "MONTH"
	PeriodQuarter PeriodType = "QUARTER"
	PeriodYear    PeriodType = "YEAR"
)

// BalanceSheetLineItem is a single user-entered row of a snapshot.
// Position preserves the entry order for display.
type BalanceSheetLineItem struct {
	Section     BalanceSheetSection `json:"section"`
	Description string              `json:"description"`
	Amount      decimal.Decimal     `json:"amount"`
	Position    int                 `json:"position"`
}

// BalanceSheetSnapshot is a point-in-time, user-entered statement. It is not
// derived from the ledger; it is validated for balance before save and
// immutable afterwards except through a new snapshot.
type BalanceSheetSnapshot struct {
	SnapshotID  string                 `json:"snapshotID"`
	PeriodType  PeriodType             `json:"periodType"`
	PeriodStart time.Time              `json:"periodStart"`
	PeriodEnd   time.Time              `json:"periodEnd"`
	LineItems   []BalanceSheetLineItem `json:"lineItems"`
	AuditFields
}
