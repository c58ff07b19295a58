package dto

import (
	"time"

	"github.com/barterbase/barter_books_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSheetLineItemRequest is one user-entered row of a snapshot. Order of
// the request slice is preserved as display order.
type BalanceSheetLineItemRequest struct {
	Section     domain.BalanceSheetSection `json:"section" binding:"required,oneof=CURRENT_ASSETS FIXED_ASSETS CURRENT_LIABILITIES LONG_TERM_LIABILITIES EQUITY"`
	Description string                     `json:"description" binding:"required"`
	Amount      decimal.Decimal            `json:"amount" binding:"required"`
}

// CreateBalanceSheetRequest creates a new snapshot. The snapshot must balance
// (Assets = Liabilities + Equity) or the save is rejected.
type CreateBalanceSheetRequest struct {
	PeriodType  domain.PeriodType             `json:"periodType" binding:"required,oneof=MONTH QUARTER YEAR"`
	PeriodStart time.Time                     `json:"periodStart" binding:"required"`
	PeriodEnd   time.Time                     `json:"periodEnd" binding:"required"`
	LineItems   []BalanceSheetLineItemRequest `json:"lineItems" binding:"required,min=1,dive"`
}

// ToDomainLineItems converts request line items, assigning positions in
// request order.
func (r *CreateBalanceSheetRequest) ToDomainLineItems() []domain.BalanceSheetLineItem {
	items := make([]domain.BalanceSheetLineItem, len(r.LineItems))
	for i, li := range r.LineItems {
		items[i] = domain.BalanceSheetLineItem{
			Section:     li.Section,
			Description: li.Description,
			Amount:      li.Amount,
			Position:    i,
		}
	}
	return items
}

// SummarizeBalanceSheetRequest asks for the balance evaluation of a set of
// line items without persisting anything (the UI recomputes this per edit).
type SummarizeBalanceSheetRequest struct {
	LineItems []BalanceSheetLineItemRequest `json:"lineItems" binding:"required,dive"`
}

// ToDomainLineItems converts preview line items in request order.
func (r *SummarizeBalanceSheetRequest) ToDomainLineItems() []domain.BalanceSheetLineItem {
	items := make([]domain.BalanceSheetLineItem, len(r.LineItems))
	for i, li := range r.LineItems {
		items[i] = domain.BalanceSheetLineItem{
			Section:     li.Section,
			Description: li.Description,
			Amount:      li.Amount,
			Position:    i,
		}
	}
	return items
}

// BalanceSheetResponse defines the data returned for a snapshot.
type BalanceSheetResponse struct {
	SnapshotID  string                        `json:"snapshotID"`
	PeriodType  string                        `json:"periodType"`
	PeriodStart time.Time                     `json:"periodStart"`
	PeriodEnd   time.Time                     `json:"periodEnd"`
	LineItems   []domain.BalanceSheetLineItem `json:"lineItems,omitempty"`
	CreatedAt   time.Time                     `json:"createdAt"`
	CreatedBy   string                        `json:"createdBy"`
}

// ToBalanceSheetResponse converts a domain snapshot to its response DTO.
func ToBalanceSheetResponse(s *domain.BalanceSheetSnapshot) BalanceSheetResponse {
	return BalanceSheetResponse{
		SnapshotID:  s.SnapshotID,
		PeriodType:  string(s.PeriodType),
		PeriodStart: s.PeriodStart,
		PeriodEnd:   s.PeriodEnd,
		LineItems:   s.LineItems,
		CreatedAt:   s.CreatedAt,
		CreatedBy:   s.CreatedBy,
	}
}
