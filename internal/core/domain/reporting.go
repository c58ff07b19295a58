package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BarterReportRow is the flattened read-model row the report projections fold
// over: one POSTED barter transaction joined with its detail and counterparty.
type BarterReportRow struct {
	TransactionID    string          `json:"transactionID"`
	TransactionDate  time.Time       `json:"transactionDate"`
	Description      string          `json:"description"`
	CounterpartyID   string          `json:"counterpartyID"`
	CounterpartyName string          `json:"counterpartyName"`
	IncomeAmount     decimal.Decimal `json:"incomeAmount"`  // FMV received
	ExpenseAmount    decimal.Decimal `json:"expenseAmount"` // FMV provided
}

// BarterSummaryReport totals posted barter activity for one tax year.
type BarterSummaryReport struct {
	Year             int             `json:"year"`
	TransactionCount int             `json:"transactionCount"`
	IncomeTotal      decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal     decimal.Decimal `json:"expenseTotal"`
}

// Form1099BRow is one counterparty's annual barter aggregate. Only
// counterparties whose total meets the reporting threshold are included.
type Form1099BRow struct {
	CounterpartyID   string          `json:"counterpartyID"`
	CounterpartyName string          `json:"counterpartyName"`
	TransactionCount int             `json:"transactionCount"`
	FMVTotal         decimal.Decimal `json:"fmvTotal"`
}
