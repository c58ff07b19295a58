package repositories

import (
	"context"

	"github.com/barterbase/barter_books_app/internal/core/domain"
)

// AccountRepositoryFacade defines persistence operations for accounts.
type AccountRepositoryFacade interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// CounterpartyRepositoryFacade defines persistence operations for counterparties.
type CounterpartyRepositoryFacade interface {
	SaveCounterparty(ctx context.Context, cp domain.Counterparty) error
	FindCounterpartyByID(ctx context.Context, counterpartyID string) (*domain.Counterparty, error)
	ListCounterparties(ctx context.Context, limit int, offset int) ([]domain.Counterparty, error)
}
