package domain

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceRow is a per-account summary of total debits and credits
// over a period. AccountName and AccountType are nil when the account
// code has no chart-of-accounts entry; such rows are included on purpose
// so data-integrity problems show up in reports instead of being hidden.
type TrialBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	AccountName *string         `json:"accountName"`
	AccountType *AccountType    `json:"accountType"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// ProfitAndLoss summarises income and expense activity over a period.
type ProfitAndLoss struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
}

// BalanceSheet is a point-in-time statement of financial position.
// Equity includes the profit accumulated up to the as-of date.
// Reconciles is assets minus (liabilities plus equity); anything other
// than zero signals a data-integrity fault and is returned to the caller
// exactly as computed, never rounded away.
type BalanceSheet struct {
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Equity      decimal.Decimal `json:"equity"`
	Reconciles  decimal.Decimal `json:"reconciles"`
}
