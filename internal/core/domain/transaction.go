package domain

import "time"

// TxnKind distinguishes ordinary transactions from barter exchanges.
type TxnKind string

const (
	Standard TxnKind = "STANDARD"
	Barter   TxnKind = "BARTER"
)

// TxnState is the lifecycle state of a transaction.
// DRAFT is the initial state, VOID is terminal.
type TxnState string

const (
	Draft  TxnState = "DRAFT"
	Posted TxnState = "POSTED"
	Void   TxnState = "VOID"
)

// Transaction is a single financial event owning one or more ledger entries.
// Entries are owned exclusively: they cannot outlive or be reassigned from
// their transaction. Once a transaction leaves DRAFT it is immutable.
type Transaction struct {
	TransactionID   string        `json:"transactionID"`   // Primary Key (e.g., UUID)
	Kind            TxnKind       `json:"kind"`            // STANDARD or BARTER
	Description     string        `json:"description"`     // User description
	CounterpartyID  *string       `json:"counterpartyID"`  // Required for BARTER, else nullable
	State           TxnState      `json:"state"`           // DRAFT, POSTED, VOID
	TransactionDate time.Time     `json:"transactionDate"` // Date the event occurred
	PostedAt        *time.Time    `json:"postedAt"`        // Set on posting
	VoidedAt        *time.Time    `json:"voidedAt"`        // Set on voiding
	VoidReason      string        `json:"voidReason"`      // Required when VOID
	Entries         []LedgerEntry `json:"entries,omitempty"`
	BarterDetail    *BarterDetail `json:"barterDetail,omitempty"` // Present iff Kind == BARTER
	AuditFields
}

// IsTerminal reports whether the transaction can never transition again.
func (t *Transaction) IsTerminal() bool {
	return t.State == Void
}
