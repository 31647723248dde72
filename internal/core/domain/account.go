package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "asset"
	Liability AccountType = "liability"
	Equity    AccountType = "equity"
	Income    AccountType = "income"
	Expense   AccountType = "expense"
)

// BalanceSide identifies the side of the ledger on which an account's
// value conventionally increases.
type BalanceSide string

const (
	DebitSide  BalanceSide = "debit"
	CreditSide BalanceSide = "credit"
)

// Account is a chart-of-accounts entry. Accounts are seeded once and
// never updated or deleted through the core; metadata changes are an
// administrative action outside it.
type Account struct {
	Code          string      `json:"code"`
	Name          string      `json:"name"`
	Type          AccountType `json:"type"`
	NormalBalance BalanceSide `json:"normalBalance"`
}

// DefaultChart is the minimal chart of accounts seeded for a fresh ledger.
// Seeding is idempotent: codes already present are left untouched.
var DefaultChart = []Account{
	{Code: "1000", Name: "Cash", Type: Asset, NormalBalance: DebitSide},
	{Code: "1100", Name: "Bank", Type: Asset, NormalBalance: DebitSide},
	{Code: "2000", Name: "Accounts Payable", Type: Liability, NormalBalance: CreditSide},
	{Code: "3000", Name: "Equity / Capital", Type: Equity, NormalBalance: CreditSide},
	{Code: "4000", Name: "Sales / Revenue", Type: Income, NormalBalance: CreditSide},
	{Code: "5000", Name: "Cost of Goods Sold", Type: Expense, NormalBalance: DebitSide},
	{Code: "5100", Name: "Rent Expense", Type: Expense, NormalBalance: DebitSide},
	{Code: "5200", Name: "Utilities Expense", Type: Expense, NormalBalance: DebitSide},
}
