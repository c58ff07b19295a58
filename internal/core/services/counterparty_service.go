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
)

// counterpartyService manages the counterparties barter exchanges are
// recorded against.
type counterpartyService struct {
	counterpartyRepo portsrepo.CounterpartyRepositoryFacade
}

// NewCounterpartyService creates a new CounterpartyService.
func NewCounterpartyService(counterpartyRepo portsrepo.CounterpartyRepositoryFacade) portssvc.CounterpartySvcFacade {
	return &counterpartyService{counterpartyRepo: counterpartyRepo}
}

var _ portssvc.CounterpartySvcFacade = (*counterpartyService)(nil)

// CreateCounterparty creates a new active counterparty.
func (s *counterpartyService) CreateCounterparty(ctx context.Context, req dto.CreateCounterpartyRequest, creatorUserID string) (*domain.Counterparty, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	cp := domain.Counterparty{
		CounterpartyID: uuid.NewString(),
		Name:           req.Name,
		TaxID:          req.TaxID,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.counterpartyRepo.SaveCounterparty(ctx, cp); err != nil {
		logger.Error("Failed to save counterparty", slog.String("error", err.Error()), slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save counterparty: %w", err)
	}

	logger.Info("Counterparty created", slog.String("counterparty_id", cp.CounterpartyID))
	return &cp, nil
}

// GetCounterpartyByID retrieves a single counterparty.
func (s *counterpartyService) GetCounterpartyByID(ctx context.Context, counterpartyID string) (*domain.Counterparty, error) {
	cp, err := s.counterpartyRepo.FindCounterpartyByID(ctx, counterpartyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find counterparty", slog.String("error", err.Error()), slog.String("counterparty_id", counterpartyID))
		}
		return nil, fmt.Errorf("failed to find counterparty %s: %w", counterpartyID, err)
	}
	return cp, nil
}

// ListCounterparties retrieves a page of counterparties.
func (s *counterpartyService) ListCounterparties(ctx context.Context, limit int, offset int) ([]domain.Counterparty, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	cps, err := s.counterpartyRepo.ListCounterparties(ctx, limit, offset)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list counterparties", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list counterparties: %w", err)
	}
	return cps, nil
}
