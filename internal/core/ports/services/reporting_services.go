package services

import (
	"context"

	"github.com/barterbase/barter_books_app/internal/core/domain"
	"github.com/barterbase/barter_books_app/internal/dto"
)

// ReportingSvcFacade defines read-only report projections over posted barter
// transactions. Voided and draft transactions never contribute.
type ReportingSvcFacade interface {
	GetBarterSummary(ctx context.Context, year int) (*domain.BarterSummaryReport, error)
	GetBarterDetail(ctx context.Context, params dto.BarterDetailReportParams) ([]domain.BarterReportRow, error)
	GetForm1099B(ctx context.Context, year int) ([]domain.Form1099BRow, error)
}
