package dto

import (
	"github.com/xylo-fin/xylo-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceRowResponse is one row of a trial balance report.
// AccountName and AccountType are null for codes with no chart entry.
type TrialBalanceRowResponse struct {
	AccountCode string          `json:"accountCode"`
	AccountName *string         `json:"accountName"`
	AccountType *string         `json:"accountType"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// ProfitAndLossResponse is the profit-and-loss report payload.
type ProfitAndLossResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
}

// BalanceSheetResponse is the balance sheet report payload.
type BalanceSheetResponse struct {
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Equity      decimal.Decimal `json:"equity"`
	Reconciles  decimal.Decimal `json:"reconciles"`
}

// ToTrialBalanceResponses converts domain trial balance rows to DTOs.
func ToTrialBalanceResponses(rows []domain.TrialBalanceRow) []TrialBalanceRowResponse {
	responses := make([]TrialBalanceRowResponse, len(rows))
	for i, row := range rows {
		responses[i] = TrialBalanceRowResponse{
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			TotalDebit:  row.TotalDebit,
			TotalCredit: row.TotalCredit,
		}
		if row.AccountType != nil {
			t := string(*row.AccountType)
			responses[i].AccountType = &t
		}
	}
	return responses
}

// ToProfitAndLossResponse converts a domain report to its DTO.
func ToProfitAndLossResponse(r *domain.ProfitAndLoss) ProfitAndLossResponse {
	return ProfitAndLossResponse{Income: r.Income, Expense: r.Expense, Profit: r.Profit}
}

// ToBalanceSheetResponse converts a domain report to its DTO.
func ToBalanceSheetResponse(r *domain.BalanceSheet) BalanceSheetResponse {
	return BalanceSheetResponse{
		Assets:      r.Assets,
		Liabilities: r.Liabilities,
		Equity:      r.Equity,
		Reconciles:  r.Reconciles,
	}
}
