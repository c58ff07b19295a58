package dto

import (
	"github.com/barterbase/barter_books_app/internal/core/domain"
)

// CreateAccountRequest creates a new ledger account.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Description string             `json:"description"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID   string `json:"accountID"`
	Name        string `json:"name"`
	AccountType string `json:"accountType"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		Name:        a.Name,
		AccountType: string(a.AccountType),
		Description: a.Description,
		IsActive:    a.IsActive,
	}
}
