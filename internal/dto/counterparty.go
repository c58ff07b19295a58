package dto

import (
	"github.com/barterbase/barter_books_app/internal/core/domain"
)

// CreateCounterpartyRequest creates a new counterparty.
type CreateCounterpartyRequest struct {
	Name  string `json:"name" binding:"required"`
	TaxID string `json:"taxID"`
}

// CounterpartyResponse defines the data returned for a counterparty.
type CounterpartyResponse struct {
	CounterpartyID string `json:"counterpartyID"`
	Name           string `json:"name"`
	TaxID          string `json:"taxID,omitempty"`
	IsActive       bool   `json:"isActive"`
}

// ToCounterpartyResponse converts a domain.Counterparty to its response DTO.
func ToCounterpartyResponse(cp *domain.Counterparty) CounterpartyResponse {
	return CounterpartyResponse{
		CounterpartyID: cp.CounterpartyID,
		Name:           cp.Name,
		TaxID:          cp.TaxID,
		IsActive:       cp.IsActive,
	}
}
