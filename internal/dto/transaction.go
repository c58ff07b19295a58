package dto

import (
	"time"

	"github.com/barterbase/barter_books_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest is one caller-supplied ledger entry line for a STANDARD
// transaction. Barter entries are generated, never supplied.
type CreateEntryRequest struct {
	AccountID string                `json:"accountID" binding:"required"`
	Direction domain.EntryDirection `json:"direction" binding:"required,oneof=DEBIT CREDIT"`
	Amount    decimal.Decimal       `json:"amount" binding:"required"`
	Notes     string                `json:"notes"`
}

// BarterDetailRequest carries the barter exchange description plus the
// accounts the generated offsetting entries are routed to.
type BarterDetailRequest struct {
	GoodsReceivedDescription string          `json:"goodsReceivedDescription" binding:"required"`
	GoodsProvidedDescription string          `json:"goodsProvidedDescription" binding:"required"`
	FMVReceived              decimal.Decimal `json:"fmvReceived" binding:"required"`
	FMVProvided              decimal.Decimal `json:"fmvProvided" binding:"required"`
	FMVBasis                 string          `json:"fmvBasis"`
	FMVMismatchAcknowledged  bool            `json:"fmvMismatchAcknowledged"`
	IncomeAccountID          string          `json:"incomeAccountID" binding:"required"`
	ExpenseAccountID         string          `json:"expenseAccountID" binding:"required"`
	ClearingAccountID        string          `json:"clearingAccountID" binding:"required"`
}

// ToDomainDetail converts the request to a domain BarterDetail owned by the
// given transaction.
func (r *BarterDetailRequest) ToDomainDetail(transactionID string) domain.BarterDetail {
	return domain.BarterDetail{
		TransactionID:            transactionID,
		GoodsReceivedDescription: r.GoodsReceivedDescription,
		GoodsProvidedDescription: r.GoodsProvidedDescription,
		FMVReceived:              r.FMVReceived,
		FMVProvided:              r.FMVProvided,
		FMVBasis:                 r.FMVBasis,
		FMVMismatchAcknowledged:  r.FMVMismatchAcknowledged,
	}
}

// Accounts returns the offset routing accounts named by the request.
func (r *BarterDetailRequest) Accounts() domain.BarterAccounts {
	return domain.BarterAccounts{
		IncomeAccountID:   r.IncomeAccountID,
		ExpenseAccountID:  r.ExpenseAccountID,
		ClearingAccountID: r.ClearingAccountID,
	}
}

// CreateTransactionRequest creates a new DRAFT transaction.
type CreateTransactionRequest struct {
	Kind            domain.TxnKind       `json:"kind" binding:"required,oneof=STANDARD BARTER"`
	Description     string               `json:"description" binding:"required"`
	TransactionDate time.Time            `json:"transactionDate" binding:"required"`
	CounterpartyID  *string              `json:"counterpartyID"`
	Entries         []CreateEntryRequest `json:"entries"`      // STANDARD only
	BarterDetail    *BarterDetailRequest `json:"barterDetail"` // BARTER only
}

// UpdateTransactionRequest edits a DRAFT transaction. Nil fields are left
// unchanged; a new barter detail regenerates the offsetting entries.
type UpdateTransactionRequest struct {
	Description     *string              `json:"description"`
	TransactionDate *time.Time           `json:"transactionDate"`
	BarterDetail    *BarterDetailRequest `json:"barterDetail"`
}

// VoidTransactionRequest voids a POSTED transaction.
type VoidTransactionRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ListTransactionsParams holds parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// EntryResponse defines the data returned for a ledger entry.
type EntryResponse struct {
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	Direction string          `json:"direction"`
	Amount    decimal.Decimal `json:"amount"`
	State     string          `json:"state"`
	PostedAt  *time.Time      `json:"postedAt,omitempty"`
	Notes     string          `json:"notes,omitempty"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string               `json:"transactionID"`
	Kind            string               `json:"kind"`
	Description     string               `json:"description"`
	CounterpartyID  *string              `json:"counterpartyID,omitempty"`
	State           string               `json:"state"`
	TransactionDate time.Time            `json:"transactionDate"`
	PostedAt        *time.Time           `json:"postedAt,omitempty"`
	VoidedAt        *time.Time           `json:"voidedAt,omitempty"`
	VoidReason      string               `json:"voidReason,omitempty"`
	Entries         []EntryResponse      `json:"entries,omitempty"`
	BarterDetail    *domain.BarterDetail `json:"barterDetail,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	CreatedBy       string               `json:"createdBy"`
}

// ListTransactionsResponse is a page of transactions plus the cursor for the
// next page, if any.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToEntryResponse converts a domain.LedgerEntry to its response DTO.
func ToEntryResponse(e *domain.LedgerEntry) EntryResponse {
	return EntryResponse{
		EntryID:   e.EntryID,
		AccountID: e.AccountID,
		Direction: string(e.Direction),
		Amount:    e.Amount,
		State:     string(e.State),
		PostedAt:  e.PostedAt,
		Notes:     e.Notes,
	}
}

// ToEntryResponses converts a slice of domain entries.
func ToEntryResponses(entries []domain.LedgerEntry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		Kind:            string(t.Kind),
		Description:     t.Description,
		CounterpartyID:  t.CounterpartyID,
		State:           string(t.State),
		TransactionDate: t.TransactionDate,
		PostedAt:        t.PostedAt,
		VoidedAt:        t.VoidedAt,
		VoidReason:      t.VoidReason,
		Entries:         ToEntryResponses(t.Entries),
		BarterDetail:    t.BarterDetail,
		CreatedAt:       t.CreatedAt,
		CreatedBy:       t.CreatedBy,
	}
}
