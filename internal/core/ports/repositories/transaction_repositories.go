package repositories

import (
	"context"
	"time"

	"github.com/barterbase/barter_books_app/internal/core/domain"
)

// TransactionReader defines read operations for transactions and their entries.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction with its entries and, for
	// barter transactions, its detail.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a paginated list of transactions using
	// token-based pagination. Entries are not populated.
	ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for transactions.
type TransactionWriter interface {
	// SaveTransaction persists a new draft transaction together with its
	// entries and optional barter detail atomically.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateDraftTransaction replaces the mutable fields, entries and barter
	// detail of a DRAFT transaction atomically. Returns
	// apperrors.ErrConflict when the row is no longer in DRAFT state.
	UpdateDraftTransaction(ctx context.Context, txn domain.Transaction) error

	// MarkTransactionPosted flips a DRAFT transaction and all of its entries
	// to POSTED, stamping postedAt, in a single database transaction. The
	// state flip is a compare-and-swap on the current state: if the row is no
	// longer DRAFT the whole operation fails with apperrors.ErrConflict and
	// nothing is changed.
	MarkTransactionPosted(ctx context.Context, transactionID string, userID string, postedAt time.Time) error

	// MarkTransactionVoided flips a POSTED transaction and all of its entries
	// to VOID, stamping voidedAt and the reason, with the same
	// compare-and-swap semantics as MarkTransactionPosted.
	MarkTransactionVoided(ctx context.Context, transactionID string, reason string, userID string, voidedAt time.Time) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends the facade with transaction capabilities.
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
