package domain

// Counterparty is the other party to a barter exchange. 1099-B aggregation
// groups posted barter transactions by counterparty.
type Counterparty struct {
	CounterpartyID string `json:"counterpartyID"`
	Name           string `json:"name"`
	TaxID          string `json:"taxID"` // Nullable; needed for information returns
	IsActive       bool   `json:"isActive"`
	AuditFields
}
