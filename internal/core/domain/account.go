package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Account represents a financial account ledger entries are posted against.
type Account struct {
	AccountID   string      `json:"accountID"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	Description string      `json:"description"`
	IsActive    bool        `json:"isActive"`
	AuditFields
}

// BarterAccounts names the accounts the offset generator routes barter
// entries to. The clearing account absorbs any residual between the two
// declared fair-market values so the generated entry set balances.
type BarterAccounts struct {
	IncomeAccountID   string
	ExpenseAccountID  string
	ClearingAccountID string
}
