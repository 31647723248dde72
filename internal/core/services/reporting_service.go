package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xylo-fin/xylo-backend/internal/core/domain"
	portsrepo "github.com/xylo-fin/xylo-backend/internal/core/ports/repositories"
	portssvc "github.com/xylo-fin/xylo-backend/internal/core/ports/services"
	"github.com/xylo-fin/xylo-backend/internal/middleware"
	"github.com/xylo-fin/xylo-backend/internal/utils/accounting"
)

// reportingService implements the read-side report computations. It never
// mutates ledger state: every report is recomputed from posted journal
// lines on demand rather than served from materialized balances.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvc {
	return &reportingService{reportingRepo: reportingRepo}
}

// Ensure reportingService implements the portssvc.ReportingSvc interface
var _ portssvc.ReportingSvc = (*reportingService)(nil)

// TrialBalance summarises debits and credits per account over the range.
func (s *reportingService) TrialBalance(ctx context.Context, from, to *time.Time) ([]domain.TrialBalanceRow, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rows, err := s.reportingRepo.GetTrialBalanceData(ctx, from, to)
	if err != nil {
		logger.Error("Failed to retrieve trial balance data", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}
	if rows == nil {
		rows = []domain.TrialBalanceRow{}
	}

	logger.Debug("Trial balance computed", slog.Int("row_count", len(rows)))
	return rows, nil
}

// ProfitAndLoss derives income, expense and profit from the trial
// balance. Rows whose account code has no chart entry carry a nil type
// and contribute to neither side; they still show up in the trial
// balance itself, which is where the integrity fault is surfaced.
func (s *reportingService) ProfitAndLoss(ctx context.Context, from, to *time.Time) (*domain.ProfitAndLoss, error) {
	rows, err := s.TrialBalance(ctx, from, to)
	if err != nil {
		return nil, err
	}
	report := deriveProfitAndLoss(rows)
	return &report, nil
}

// BalanceSheet derives assets, liabilities and equity as of a date, with
// the accumulated profit up to that date folded into equity.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf *time.Time) (*domain.BalanceSheet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rows, err := s.TrialBalance(ctx, nil, asOf)
	if err != nil {
		return nil, err
	}

	assets := decimal.Zero
	liabilities := decimal.Zero
	equity := decimal.Zero

	for _, row := range rows {
		if row.AccountType == nil {
			continue
		}
		switch *row.AccountType {
		case domain.Asset:
			assets = assets.Add(accounting.NetForType(row, domain.Asset))
		case domain.Liability:
			liabilities = liabilities.Add(accounting.NetForType(row, domain.Liability))
		case domain.Equity:
			equity = equity.Add(accounting.NetForType(row, domain.Equity))
		}
	}

	pnl := deriveProfitAndLoss(rows)
	equity = equity.Add(pnl.Profit)

	reconciles := assets.Sub(liabilities.Add(equity))
	if !reconciles.IsZero() {
		// Data-integrity fault: never rounded away, always handed to the caller.
		logger.Warn("Balance sheet does not reconcile",
			slog.String("assets", assets.StringFixed(2)),
			slog.String("liabilities", liabilities.StringFixed(2)),
			slog.String("equity", equity.StringFixed(2)),
			slog.String("reconciles", reconciles.String()))
	}

	return &domain.BalanceSheet{
		Assets:      assets,
		Liabilities: liabilities,
		Equity:      equity,
		Reconciles:  reconciles,
	}, nil
}

// deriveProfitAndLoss folds trial balance rows into the P&L totals.
func deriveProfitAndLoss(rows []domain.TrialBalanceRow) domain.ProfitAndLoss {
	income := decimal.Zero
	expense := decimal.Zero

	for _, row := range rows {
		if row.AccountType == nil {
			continue
		}
		switch *row.AccountType {
		case domain.Income:
			income = income.Add(accounting.NetForType(row, domain.Income))
		case domain.Expense:
			expense = expense.Add(accounting.NetForType(row, domain.Expense))
		}
	}

	return domain.ProfitAndLoss{
		Income:  income,
		Expense: expense,
		Profit:  income.Sub(expense),
	}
}
