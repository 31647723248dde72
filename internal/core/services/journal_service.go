package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/xylo-fin/xylo-backend/internal/apperrors"
	"github.com/xylo-fin/xylo-backend/internal/core/domain"
	portsrepo "github.com/xylo-fin/xylo-backend/internal/core/ports/repositories"
	portssvc "github.com/xylo-fin/xylo-backend/internal/core/ports/services"
	"github.com/xylo-fin/xylo-backend/internal/dto"
	"github.com/xylo-fin/xylo-backend/internal/middleware"
	"github.com/xylo-fin/xylo-backend/internal/utils/accounting"
)

var (
	ErrEntryNoLines   = errors.New("journal entry must have at least one line")
	ErrNegativeAmount = errors.New("journal line amounts must not be negative")
	ErrUnknownAccount = errors.New("journal line references an account code not in the chart")
)

// journalService is the posting engine. All validation runs before any
// write, so a rejected entry needs no compensating rollback: state is
// only touched once the entry is known to be balanced.
type journalService struct {
	journalRepo    portsrepo.JournalRepositoryFacade
	chartSvc       portssvc.ChartOfAccountsSvc
	strictAccounts bool
}

// JournalServiceOption is a functional option for configuring the journal service.
type JournalServiceOption func(*journalService)

// WithStrictAccounts makes PostEntry reject lines whose account code has
// no chart-of-accounts entry. The default is lenient: postings are never
// blocked by administrative lag in the chart, and orphaned codes surface
// in the trial balance instead.
func WithStrictAccounts() JournalServiceOption {
	return func(s *journalService) {
		s.strictAccounts = true
	}
}

// NewJournalService creates a new journal service.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, chartSvc portssvc.ChartOfAccountsSvc, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		journalRepo: journalRepo,
		chartSvc:    chartSvc,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// PostEntry validates and commits a balanced journal entry.
//
// The pipeline: reject empty or negative lines, quantize every side to
// two decimals (round-half-up), sum both sides decimal-exactly, reject
// on imbalance with both totals, then persist header, lines and the
// source transaction's processed flag in one atomic unit.
func (s *journalService) PostEntry(ctx context.Context, req dto.PostEntryRequest) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Lines) == 0 {
		return nil, ErrEntryNoLines
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()

	lines := make([]domain.JournalLine, len(req.Lines))
	for i, spec := range req.Lines {
		if spec.Debit.IsNegative() || spec.Credit.IsNegative() {
			return nil, fmt.Errorf("%w: account %s", ErrNegativeAmount, spec.AccountCode)
		}
		lines[i] = domain.JournalLine{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountCode: spec.AccountCode,
			Debit:       accounting.Quantize(spec.Debit),
			Credit:      accounting.Quantize(spec.Credit),
		}
	}

	totalDebit, totalCredit := accounting.EntryTotals(lines)
	if !totalDebit.Equal(totalCredit) {
		logger.Warn("Rejected unbalanced journal entry",
			slog.String("total_debit", totalDebit.StringFixed(2)),
			slog.String("total_credit", totalCredit.StringFixed(2)))
		return nil, &apperrors.UnbalancedEntryError{TotalDebit: totalDebit, TotalCredit: totalCredit}
	}

	if s.strictAccounts {
		if err := s.checkAccountCodes(ctx, lines); err != nil {
			return nil, err
		}
	}

	entry := domain.JournalEntry{
		EntryID:       entryID,
		TransactionID: req.TransactionID,
		EntryDate:     req.EntryDate,
		Description:   req.Description,
		CreatedAt:     now,
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, lines, req.TransactionID); err != nil {
		logger.Error("Failed to save journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	logger.Info("Journal entry posted", slog.String("entry_id", entryID), slog.Int("line_count", len(lines)))
	// Return the header only; callers fetch lines via GetEntryByID when needed.
	return &entry, nil
}

// checkAccountCodes verifies every distinct line code against the chart.
func (s *journalService) checkAccountCodes(ctx context.Context, lines []domain.JournalLine) error {
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.AccountCode]; ok {
			continue
		}
		seen[line.AccountCode] = struct{}{}

		if _, err := s.chartSvc.GetAccountByCode(ctx, line.AccountCode); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: %s", ErrUnknownAccount, line.AccountCode)
			}
			return fmt.Errorf("failed to verify account %s: %w", line.AccountCode, err)
		}
	}
	return nil
}

// GetEntryByID retrieves a journal entry with its lines populated.
func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find journal entry by ID", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		}
		return nil, err
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		logger.Error("Failed to fetch lines for journal entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, err)
	}
	entry.Lines = lines

	logger.Debug("Journal entry retrieved", slog.String("entry_id", entryID), slog.Int("line_count", len(lines)))
	return entry, nil
}

// ReverseEntry posts a new entry offsetting an existing one. Each line's
// debit and credit sides are swapped and the result goes through the
// normal posting pipeline; the original entry is never modified.
func (s *journalService) ReverseEntry(ctx context.Context, entryID string, entryDate time.Time) (*domain.JournalEntry, error) {
	original, err := s.GetEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	specs := make([]dto.LineSpec, len(original.Lines))
	for i, line := range original.Lines {
		specs[i] = dto.LineSpec{
			AccountCode: line.AccountCode,
			Debit:       line.Credit,
			Credit:      line.Debit,
		}
	}

	return s.PostEntry(ctx, dto.PostEntryRequest{
		EntryDate:   entryDate,
		Description: fmt.Sprintf("Reversal of entry: %s", original.Description),
		Lines:       specs,
	})
}
