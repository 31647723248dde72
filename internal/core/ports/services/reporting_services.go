package services

import (
	"context"
	"time"

	"github.com/xylo-fin/xylo-backend/internal/core/domain"
)

// ReportingSvc defines the read-side report computations. All three are
// pure queries over posted journal lines: nothing here mutates ledger
// state, and only posted lines count toward totals (unprocessed
// transactions are invisible to every report).
type ReportingSvc interface {
	// TrialBalance summarises debits and credits per account over the
	// inclusive [from, to] entry-date range; nil bounds are open-ended.
	TrialBalance(ctx context.Context, from, to *time.Time) ([]domain.TrialBalanceRow, error)

	// ProfitAndLoss derives income, expense and profit over the range.
	ProfitAndLoss(ctx context.Context, from, to *time.Time) (*domain.ProfitAndLoss, error)

	// BalanceSheet derives assets, liabilities and equity (including
	// accumulated profit) as of a date, along with the reconciliation value.
	BalanceSheet(ctx context.Context, asOf *time.Time) (*domain.BalanceSheet, error)
}
