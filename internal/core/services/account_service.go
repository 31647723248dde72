package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/xylo-fin/xylo-backend/internal/apperrors"
	"github.com/xylo-fin/xylo-backend/internal/core/domain"
	portsrepo "github.com/xylo-fin/xylo-backend/internal/core/ports/repositories"
	portssvc "github.com/xylo-fin/xylo-backend/internal/core/ports/services"
	"github.com/xylo-fin/xylo-backend/internal/middleware"
)

// chartService provides chart-of-accounts operations.
type chartService struct {
	chartRepo portsrepo.ChartRepositoryFacade
}

// NewChartOfAccountsService creates a new chart-of-accounts service.
func NewChartOfAccountsService(chartRepo portsrepo.ChartRepositoryFacade) portssvc.ChartOfAccountsSvc {
	return &chartService{chartRepo: chartRepo}
}

// Ensure chartService implements the portssvc.ChartOfAccountsSvc interface
var _ portssvc.ChartOfAccountsSvc = (*chartService)(nil)

// SeedAccounts inserts each account whose code is not already present.
// Pre-existing codes keep their metadata untouched, so reseeding cannot
// clobber manual edits.
func (s *chartService) SeedAccounts(ctx context.Context, accounts []domain.Account) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	inserted := 0
	for _, account := range accounts {
		if account.Code == "" {
			return inserted, fmt.Errorf("%w: account code must not be empty", apperrors.ErrValidation)
		}
		ok, err := s.chartRepo.SaveAccountIfAbsent(ctx, account)
		if err != nil {
			logger.Error("Failed to seed account", slog.String("code", account.Code), slog.String("error", err.Error()))
			return inserted, fmt.Errorf("failed to seed account %s: %w", account.Code, err)
		}
		if ok {
			inserted++
		}
	}

	logger.Info("Chart of accounts seeded", slog.Int("requested", len(accounts)), slog.Int("inserted", inserted))
	return inserted, nil
}

// SeedDefaultAccounts seeds the built-in minimal chart.
func (s *chartService) SeedDefaultAccounts(ctx context.Context) (int, error) {
	return s.SeedAccounts(ctx, domain.DefaultChart)
}

// GetAccountByCode retrieves a single account by code.
func (s *chartService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.chartRepo.FindAccountByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by code", slog.String("code", code), slog.String("error", err.Error()))
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves the full chart ordered by code ascending.
func (s *chartService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.chartRepo.ListAccounts(ctx)
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}
