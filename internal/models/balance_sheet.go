package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceSheetSnapshot represents a point-in-time balance sheet for a period.
type BalanceSheetSnapshot struct {
	SnapshotID  string    `db:"snapshot_id"`
	PeriodType  string    `db:"period_type"`
	PeriodStart time.Time `db:"period_start"`
	PeriodEnd   time.Time `db:"period_end"`
	AuditFields
}

// BalanceSheetLineItem is one row of a snapshot, ordered by position within
// its section.
type BalanceSheetLineItem struct {
	SnapshotID  string          `db:"snapshot_id"`
	Section     string          `db:"section"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Position    int             `db:"position"`
}
