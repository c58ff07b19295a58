package services

import (
	"context"

	"github.com/barterbase/barter_books_app/internal/core/domain"
	"github.com/barterbase/barter_books_app/internal/dto"
)

// CounterpartySvcFacade defines operations on counterparties.
type CounterpartySvcFacade interface {
	CreateCounterparty(ctx context.Context, req dto.CreateCounterpartyRequest, creatorUserID string) (*domain.Counterparty, error)
	GetCounterpartyByID(ctx context.Context, counterpartyID string) (*domain.Counterparty, error)
	ListCounterparties(ctx context.Context, limit int, offset int) ([]domain.Counterparty, error)
}
