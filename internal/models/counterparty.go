package models

// Counterparty represents the other party of a barter exchange.
type Counterparty struct {
	CounterpartyID string `db:"counterparty_id"`
	Name           string `db:"name"`
	TaxID          string `db:"tax_id"`
	IsActive       bool   `db:"is_active"`
	AuditFields
}
