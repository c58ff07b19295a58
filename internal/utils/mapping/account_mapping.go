package mapping

import (
	"github.com/barterbase/barter_books_app/internal/core/domain"
	"github.com/barterbase/barter_books_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.AccountID,
		Name:        d.Name,
		AccountType: models.AccountType(d.AccountType),
		Description: d.Description,
		IsActive:    d.IsActive,
		AuditFields: toModelAudit(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		Name:        m.Name,
		AccountType: domain.AccountType(m.AccountType),
		Description: m.Description,
		IsActive:    m.IsActive,
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

// ToModelCounterparty converts a domain Counterparty to a model Counterparty.
func ToModelCounterparty(d domain.Counterparty) models.Counterparty {
	return models.Counterparty{
		CounterpartyID: d.CounterpartyID,
		Name:           d.Name,
		TaxID:          d.TaxID,
		IsActive:       d.IsActive,
		AuditFields:    toModelAudit(d.AuditFields),
	}
}

// ToDomainCounterparty converts a model Counterparty to a domain Counterparty.
func ToDomainCounterparty(m models.Counterparty) domain.Counterparty {
	return domain.Counterparty{
		CounterpartyID: m.CounterpartyID,
		Name:           m.Name,
		TaxID:          m.TaxID,
		IsActive:       m.IsActive,
		AuditFields:    toDomainAudit(m.AuditFields),
	}
}
