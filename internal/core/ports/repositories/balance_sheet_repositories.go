package repositories

import (
	"context"

	"github.com/barterbase/barter_books_app/internal/core/domain"
)

// BalanceSheetRepositoryFacade defines persistence operations for balance
// sheet snapshots. Snapshots are immutable once saved; there is no update.
type BalanceSheetRepositoryFacade interface {
	// SaveSnapshot persists a snapshot and its ordered line items atomically.
	SaveSnapshot(ctx context.Context, snapshot domain.BalanceSheetSnapshot) error

	// FindSnapshotByID retrieves a snapshot with its line items in entry order.
	FindSnapshotByID(ctx context.Context, snapshotID string) (*domain.BalanceSheetSnapshot, error)

	// ListSnapshots retrieves snapshots ordered by period end descending.
	// Line items are not populated.
	ListSnapshots(ctx context.Context, limit int, offset int) ([]domain.BalanceSheetSnapshot, error)
}
