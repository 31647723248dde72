package accounting

import (
	"github.com/xylo-fin/xylo-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Quantize rounds a monetary value to two decimal places using
// round-half-up. Line amounts are non-negative by validation, so
// decimal.Round (half away from zero) implements half-up here.
// This is used in both services and repositories to ensure consistent
// monetary precision across the ledger.
func Quantize(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// EntryTotals sums the debit and credit sides of a set of journal lines
// independently. Summation is decimal-exact; binary floating point would
// accumulate rounding drift and break the balance invariant.
func EntryTotals(lines []domain.JournalLine) (totalDebit, totalCredit decimal.Decimal) {
	totalDebit = decimal.Zero
	totalCredit = decimal.Zero
	for _, line := range lines {
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}
	return totalDebit, totalCredit
}

// NetForType folds a trial balance row into the directional net used by
// derived reports: debit-normal types (asset, expense) net debit-credit,
// credit-normal types net credit-debit.
func NetForType(row domain.TrialBalanceRow, accountType domain.AccountType) decimal.Decimal {
	switch accountType {
	case domain.Asset, domain.Expense:
		return row.TotalDebit.Sub(row.TotalCredit)
	default:
		return row.TotalCredit.Sub(row.TotalDebit)
	}
}
