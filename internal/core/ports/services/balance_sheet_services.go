package services

import (
	"context"

	"github.com/barterbase/barter_books_app/internal/core/domain"
	"github.com/barterbase/barter_books_app/internal/dto"
	"github.com/barterbase/barter_books_app/internal/utils/accounting"
)

// BalanceSheetSvcFacade defines operations on balance sheet snapshots.
// CreateSnapshot rejects snapshots whose sections do not satisfy
// Assets = Liabilities + Equity within the minor-unit tolerance.
type BalanceSheetSvcFacade interface {
	CreateSnapshot(ctx context.Context, req dto.CreateBalanceSheetRequest, creatorUserID string) (*domain.BalanceSheetSnapshot, error)
	GetSnapshotByID(ctx context.Context, snapshotID string) (*domain.BalanceSheetSnapshot, error)
	ListSnapshots(ctx context.Context, limit int, offset int) ([]domain.BalanceSheetSnapshot, error)
	SummarizeLineItems(lineItems []domain.BalanceSheetLineItem) accounting.BalanceSheetSummary
}
