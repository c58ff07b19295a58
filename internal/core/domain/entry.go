package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryDirection indicates whether a ledger entry is a Debit or a Credit.
type EntryDirection string

const (
	Debit  EntryDirection = "DEBIT"
	Credit EntryDirection = "CREDIT"
)

// LedgerEntry is a single line item owned by a Transaction, affecting one account.
// Amount is always positive; the direction carries the sign. An entry's State
// always mirrors its owning transaction's state, and PostedAt is stamped when
// the parent transitions to POSTED.
type LedgerEntry struct {
	EntryID       string          `json:"entryID"`       // Primary Key (e.g., UUID)
	TransactionID string          `json:"transactionID"` // FK -> Transaction.transactionID (Not Null)
	AccountID     string          `json:"accountID"`     // FK -> Account.accountID (Not Null)
	Direction     EntryDirection  `json:"direction"`     // DEBIT or CREDIT (Not Null)
	Amount        decimal.Decimal `json:"amount"`        // Positive value; precise decimal type
	State         TxnState        `json:"state"`         // Mirrors owning transaction
	PostedAt      *time.Time      `json:"postedAt"`      // Set when the transaction posts
	Notes         string          `json:"notes"`         // Nullable
	AuditFields
}
