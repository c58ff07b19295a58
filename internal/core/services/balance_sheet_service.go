package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/barterbase/barter_books_app/internal/apperrors"
	"github.com/barterbase/barter_books_app/internal/core/domain"
	portsrepo "github.com/barterbase/barter_books_app/internal/core/ports/repositories"
	portssvc "github.com/barterbase/barter_books_app/internal/core/ports/services"
	"github.com/barterbase/barter_books_app/internal/dto"
	"github.com/barterbase/barter_books_app/internal/middleware"
	"github.com/barterbase/barter_books_app/internal/utils/accounting"
)

var ErrSnapshotUnbalanced = errors.New("balance sheet does not satisfy assets = liabilities + equity")

// balanceSheetService manages balance sheet snapshots.
type balanceSheetService struct {
	balanceSheetRepo portsrepo.BalanceSheetRepositoryFacade
}

// NewBalanceSheetService creates a new BalanceSheetService.
func NewBalanceSheetService(balanceSheetRepo portsrepo.BalanceSheetRepositoryFacade) portssvc.BalanceSheetSvcFacade {
	return &balanceSheetService{balanceSheetRepo: balanceSheetRepo}
}

var _ portssvc.BalanceSheetSvcFacade = (*balanceSheetService)(nil)

// CreateSnapshot validates and persists a balance sheet snapshot. A snapshot
// whose sections do not satisfy the accounting equation within the minor-unit
// tolerance is rejected.
func (s *balanceSheetService) CreateSnapshot(ctx context.Context, req dto.CreateBalanceSheetRequest, creatorUserID string) (*domain.BalanceSheetSnapshot, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.PeriodEnd.After(req.PeriodStart) {
		return nil, fmt.Errorf("%w: period end must be after period start", apperrors.ErrValidation)
	}

	lineItems := req.ToDomainLineItems()
	summary := accounting.SummarizeBalanceSheet(lineItems)
	if !summary.IsBalanced {
		return nil, fmt.Errorf("%w: assets %s, liabilities+equity %s, delta %s",
			ErrSnapshotUnbalanced, summary.TotalAssets, summary.TotalLiabilitiesAndEquity, summary.Delta)
	}

	now := time.Now().UTC()
	snapshot := domain.BalanceSheetSnapshot{
		SnapshotID:  uuid.NewString(),
		PeriodType:  req.PeriodType,
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
		LineItems:   lineItems,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.balanceSheetRepo.SaveSnapshot(ctx, snapshot); err != nil {
		logger.Error("Failed to save balance sheet snapshot", slog.String("error", err.Error()), slog.String("snapshot_id", snapshot.SnapshotID))
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}

	logger.Info("Balance sheet snapshot created", slog.String("snapshot_id", snapshot.SnapshotID), slog.String("period_type", string(snapshot.PeriodType)))
	return &snapshot, nil
}

// GetSnapshotByID retrieves a snapshot with its line items.
func (s *balanceSheetService) GetSnapshotByID(ctx context.Context, snapshotID string) (*domain.BalanceSheetSnapshot, error) {
	snapshot, err := s.balanceSheetRepo.FindSnapshotByID(ctx, snapshotID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find snapshot", slog.String("error", err.Error()), slog.String("snapshot_id", snapshotID))
		}
		return nil, fmt.Errorf("failed to find snapshot %s: %w", snapshotID, err)
	}
	return snapshot, nil
}

// ListSnapshots retrieves snapshots ordered by period start, newest first.
func (s *balanceSheetService) ListSnapshots(ctx context.Context, limit int, offset int) ([]domain.BalanceSheetSnapshot, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	snapshots, err := s.balanceSheetRepo.ListSnapshots(ctx, limit, offset)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list snapshots", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snapshots, nil
}

// SummarizeLineItems evaluates section totals and the accounting equation for
// a set of line items without persisting anything.
func (s *balanceSheetService) SummarizeLineItems(lineItems []domain.BalanceSheetLineItem) accounting.BalanceSheetSummary {
	return accounting.SummarizeBalanceSheet(lineItems)
}
