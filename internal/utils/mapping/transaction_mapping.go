package mapping

import (
	"github.com/barterbase/barter_books_app/internal/core/domain"
	"github.com/barterbase/barter_books_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		Kind:            models.TxnKind(d.Kind),
		Description:     d.Description,
		CounterpartyID:  d.CounterpartyID,
		State:           models.TxnState(d.State),
		TransactionDate: d.TransactionDate,
		PostedAt:        d.PostedAt,
		VoidedAt:        d.VoidedAt,
		VoidReason:      d.VoidReason,
		AuditFields:     toModelAudit(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
// Entries and barter detail are attached by the caller.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		Kind:            domain.TxnKind(m.Kind),
		Description:     m.Description,
		CounterpartyID:  m.CounterpartyID,
		State:           domain.TxnState(m.State),
		TransactionDate: m.TransactionDate,
		PostedAt:        m.PostedAt,
		VoidedAt:        m.VoidedAt,
		VoidReason:      m.VoidReason,
		AuditFields:     toDomainAudit(m.AuditFields),
	}
}

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:       d.EntryID,
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		Direction:     models.EntryDirection(d.Direction),
		Amount:        d.Amount,
		State:         models.TxnState(d.State),
		PostedAt:      d.PostedAt,
		Notes:         d.Notes,
		AuditFields:   toModelAudit(d.AuditFields),
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:       m.EntryID,
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		Direction:     domain.EntryDirection(m.Direction),
		Amount:        m.Amount,
		State:         domain.TxnState(m.State),
		PostedAt:      m.PostedAt,
		Notes:         m.Notes,
		AuditFields:   toDomainAudit(m.AuditFields),
	}
}

// ToDomainLedgerEntrySlice converts a slice of model entries.
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}

// ToModelBarterDetail converts a domain BarterDetail to a model BarterDetail.
func ToModelBarterDetail(d domain.BarterDetail) models.BarterDetail {
	return models.BarterDetail{
		TransactionID:            d.TransactionID,
		GoodsReceivedDescription: d.GoodsReceivedDescription,
		GoodsProvidedDescription: d.GoodsProvidedDescription,
		FMVReceived:              d.FMVReceived,
		FMVProvided:              d.FMVProvided,
		FMVBasis:                 d.FMVBasis,
		FMVMismatchAcknowledged:  d.FMVMismatchAcknowledged,
	}
}

// ToDomainBarterDetail converts a model BarterDetail to a domain BarterDetail.
func ToDomainBarterDetail(m models.BarterDetail) domain.BarterDetail {
	return domain.BarterDetail{
		TransactionID:            m.TransactionID,
		GoodsReceivedDescription: m.GoodsReceivedDescription,
		GoodsProvidedDescription: m.GoodsProvidedDescription,
		FMVReceived:              m.FMVReceived,
		FMVProvided:              m.FMVProvided,
		FMVBasis:                 m.FMVBasis,
		FMVMismatchAcknowledged:  m.FMVMismatchAcknowledged,
	}
}

func toModelAudit(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

func toDomainAudit(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}
