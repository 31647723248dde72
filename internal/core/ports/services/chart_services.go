package services

import (
	"context"

	"github.com/xylo-fin/xylo-backend/internal/core/domain"
)

// ChartOfAccountsSvc defines operations over the chart of accounts.
type ChartOfAccountsSvc interface {
	// SeedAccounts inserts every account whose code is not already present
	// and returns the number of accounts actually inserted. Re-seeding is
	// a no-op for existing codes so manual edits are never clobbered.
	SeedAccounts(ctx context.Context, accounts []domain.Account) (int, error)

	// SeedDefaultAccounts seeds the built-in minimal chart.
	SeedDefaultAccounts(ctx context.Context) (int, error)

	// GetAccountByCode retrieves a single account by code.
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// ListAccounts retrieves the full chart ordered by code ascending.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
