package repositories

import (
	"context"
	"time"

	"github.com/xylo-fin/xylo-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionFilter narrows a transaction listing. Nil fields are open-ended.
type TransactionFilter struct {
	From      *time.Time
	To        *time.Time
	MinAmount *decimal.Decimal
	Processed *bool
}

// TransactionReader defines read operations for raw transaction records
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered, paginated list of transactions
	// ordered by date descending (created_at as tie-breaker) using
	// token-based pagination. It returns the transactions, a token for the
	// next page, and an error.
	ListTransactions(ctx context.Context, filter TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for raw transaction records
type TransactionWriter interface {
	// SaveTransaction persists a new transaction record.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
// The processed flag is deliberately absent here: it flips only inside
// JournalWriter.SaveEntry, within the same atomic unit as the posting.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
