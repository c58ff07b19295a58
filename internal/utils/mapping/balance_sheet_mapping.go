package mapping

import (
	"github.com/barterbase/barter_books_app/internal/core/domain"
	"github.com/barterbase/barter_books_app/internal/models"
)

// ToModelSnapshot converts a domain BalanceSheetSnapshot to its model,
// excluding line items.
func ToModelSnapshot(d domain.BalanceSheetSnapshot) models.BalanceSheetSnapshot {
	return models.BalanceSheetSnapshot{
		SnapshotID:  d.SnapshotID,
		PeriodType:  string(d.PeriodType),
		PeriodStart: d.PeriodStart,
		PeriodEnd:   d.PeriodEnd,
		AuditFields: toModelAudit(d.AuditFields),
	}
}

// ToDomainSnapshot converts a model BalanceSheetSnapshot to its domain form.
// Line items are attached by the caller.
func ToDomainSnapshot(m models.BalanceSheetSnapshot) domain.BalanceSheetSnapshot {
	return domain.BalanceSheetSnapshot{
		SnapshotID:  m.SnapshotID,
		PeriodType:  domain.PeriodType(m.PeriodType),
		PeriodStart: m.PeriodStart,
		PeriodEnd:   m.PeriodEnd,
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

// ToModelLineItem converts a domain line item belonging to the given snapshot.
func ToModelLineItem(snapshotID string, d domain.BalanceSheetLineItem) models.BalanceSheetLineItem {
	return models.BalanceSheetLineItem{
		SnapshotID:  snapshotID,
		Section:     string(d.Section),
		Description: d.Description,
		Amount:      d.Amount,
		Position:    d.Position,
	}
}

// ToDomainLineItem converts a model line item to its domain form.
func ToDomainLineItem(m models.BalanceSheetLineItem) domain.BalanceSheetLineItem {
	return domain.BalanceSheetLineItem{
		Section:     domain.BalanceSheetSection(m.Section),
		Description: m.Description,
		Amount:      m.Amount,
		Position:    m.Position,
	}
}
