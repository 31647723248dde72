package repositories

import (
	"context"

	"github.com/xylo-fin/xylo-backend/internal/core/domain"
)

// ChartReader defines read operations for chart-of-accounts data
type ChartReader interface {
	// FindAccountByCode retrieves a specific account by its code.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// ListAccounts retrieves all accounts ordered by code ascending.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// ChartWriter defines write operations for chart-of-accounts data
type ChartWriter interface {
	// SaveAccountIfAbsent inserts the account when its code is not yet
	// present and reports whether an insert happened. Existing codes are
	// never overwritten, which keeps reseeding idempotent.
	SaveAccountIfAbsent(ctx context.Context, account domain.Account) (bool, error)
}

// ChartRepositoryFacade combines all chart-of-accounts repository interfaces
type ChartRepositoryFacade interface {
	ChartReader
	ChartWriter
}
