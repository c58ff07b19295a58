package services

import (
	"context"

	"github.com/barterbase/barter_books_app/internal/core/domain"
	"github.com/barterbase/barter_books_app/internal/dto"
)

// AccountSvcFacade defines operations on ledger accounts.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
	DeactivateAccount(ctx context.Context, accountID string, userID string) error
}
