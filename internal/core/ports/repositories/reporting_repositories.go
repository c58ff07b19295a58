package repositories

import (
	"context"

	"github.com/barterbase/barter_books_app/internal/core/domain"
)

// ReportingRepositoryFacade defines the read-side queries the report
// projections fold over. Only POSTED (non-VOID) barter transactions are
// returned; projections never mutate anything.
type ReportingRepositoryFacade interface {
	// FindPostedBarterRows retrieves one row per posted barter transaction
	// whose transaction date falls in the given calendar year, joined with
	// its barter detail and counterparty.
	FindPostedBarterRows(ctx context.Context, year int) ([]domain.BarterReportRow, error)
}
