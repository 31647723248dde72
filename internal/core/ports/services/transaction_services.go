package services

import (
	"context"

	"github.com/xylo-fin/xylo-backend/internal/core/domain"
	"github.com/xylo-fin/xylo-backend/internal/dto"
)

// TransactionSvc defines operations over raw transaction records.
type TransactionSvc interface {
	// Record creates a new unprocessed transaction record. It always
	// succeeds beyond basic input binding; the record is a historical fact
	// and carries no ledger validation.
	Record(ctx context.Context, req dto.RecordTransactionRequest) (*domain.Transaction, error)

	// GetTransaction retrieves a transaction by id.
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered, paginated transaction listing.
	// Automation callers use this to derive their own notions such as
	// overdue status; the core does not model due dates.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}
