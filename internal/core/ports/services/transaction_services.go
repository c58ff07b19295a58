package services

import (
	"context"

	"github.com/barterbase/barter_books_app/internal/core/domain"
	"github.com/barterbase/barter_books_app/internal/dto"
	"github.com/barterbase/barter_books_app/internal/utils/accounting"
)

// TransactionReaderSvc defines read operations for transactions.
type TransactionReaderSvc interface {
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines operations that change transaction state.
// Creation and update return a non-nil FMV mismatch warning when the two
// sides of a barter exchange diverge past the configured tolerance; the
// warning never blocks the write.
type TransactionWriterSvc interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, *accounting.FMVMismatchWarning, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, *accounting.FMVMismatchWarning, error)
	PostTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error)
	VoidTransaction(ctx context.Context, transactionID string, reason string, userID string) (*domain.Transaction, error)
}

// BarterPreviewSvc generates the offsetting entries for a barter exchange
// without persisting anything.
type BarterPreviewSvc interface {
	PreviewBarterEntries(ctx context.Context, req dto.BarterDetailRequest) ([]domain.LedgerEntry, *accounting.FMVMismatchWarning, error)
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	BarterPreviewSvc
}
