package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxnKind distinguishes ordinary money transactions from barter exchanges.
type TxnKind string

const (
	Standard TxnKind = "STANDARD"
	Barter   TxnKind = "BARTER"
)

// TxnState is the lifecycle state of a transaction and its entries.
type TxnState string

const (
	Draft  TxnState = "DRAFT"
	Posted TxnState = "POSTED"
	Void   TxnState = "VOID"
)

// Transaction represents a financial event composed of ledger entries.
type Transaction struct {
	TransactionID   string     `db:"transaction_id"`
	Kind            TxnKind    `db:"kind"`
	Description     string     `db:"description"`
	CounterpartyID  *string    `db:"counterparty_id"` // Nullable
	State           TxnState   `db:"state"`
	TransactionDate time.Time  `db:"transaction_date"`
	PostedAt        *time.Time `db:"posted_at"`
	VoidedAt        *time.Time `db:"voided_at"`
	VoidReason      string     `db:"void_reason"`
	AuditFields
}

// EntryDirection is the side of the ledger an entry hits.
type EntryDirection string

const (
	Debit  EntryDirection = "DEBIT"
	Credit EntryDirection = "CREDIT"
)

// LedgerEntry represents a single debit or credit line of a transaction.
// State is denormalized from the parent transaction so reports can filter on
// the entry rows alone.
type LedgerEntry struct {
	EntryID       string          `db:"entry_id"`
	TransactionID string          `db:"transaction_id"`
	AccountID     string          `db:"account_id"`
	Direction     EntryDirection  `db:"direction"`
	Amount        decimal.Decimal `db:"amount"`
	State         TxnState        `db:"state"`
	PostedAt      *time.Time      `db:"posted_at"`
	Notes         string          `db:"notes"`
	AuditFields
}

// BarterDetail is the one-to-one extension row for barter transactions.
type BarterDetail struct {
	TransactionID            string          `db:"transaction_id"`
	GoodsReceivedDescription string          `db:"goods_received_description"`
	GoodsProvidedDescription string          `db:"goods_provided_description"`
	FMVReceived              decimal.Decimal `db:"fmv_received"`
	FMVProvided              decimal.Decimal `db:"fmv_provided"`
	FMVBasis                 string          `db:"fmv_basis"`
	FMVMismatchAcknowledged  bool            `db:"fmv_mismatch_acknowledged"`
}
