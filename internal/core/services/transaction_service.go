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
)

const defaultListLimit = 20

// transactionService provides operations over raw transaction records.
type transactionService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	defaultCurrency string
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, defaultCurrency string) portssvc.TransactionSvc {
	return &transactionService{
		transactionRepo: transactionRepo,
		defaultCurrency: defaultCurrency,
	}
}

// Ensure transactionService implements the portssvc.TransactionSvc interface
var _ portssvc.TransactionSvc = (*transactionService)(nil)

// Record creates a new unprocessed transaction record. The record is a
// historical fact: amount and description are fixed at creation, and the
// only later mutation is the processed flag flipping when the journal
// ledger posts against it.
func (s *transactionService) Record(ctx context.Context, req dto.RecordTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	date := now
	if req.Date != nil {
		date = req.Date.UTC()
	}

	source := domain.TransactionSource(req.Source)
	if source == "" {
		source = domain.SourceManual
	}

	reference := ""
	if req.Reference != nil {
		reference = *req.Reference
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        req.UserID,
		Source:        source,
		Reference:     reference,
		Date:          date,
		Amount:        req.Amount,
		Currency:      s.defaultCurrency,
		Description:   req.Description,
		CreatedAt:     now,
		Processed:     false,
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	logger.Info("Transaction recorded", slog.String("transaction_id", txn.TransactionID), slog.String("source", string(txn.Source)))
	return &txn, nil
}

// GetTransaction retrieves a transaction by id.
func (s *transactionService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction by ID", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		}
		return nil, err
	}
	return txn, nil
}

// ListTransactions retrieves a filtered, paginated transaction listing.
func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	filter := portsrepo.TransactionFilter{
		From:      params.From,
		To:        params.To,
		MinAmount: params.MinAmount,
		Processed: params.Processed,
	}

	transactions, nextToken, err := s.transactionRepo.ListTransactions(ctx, filter, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}

	resp := &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(transactions),
		NextToken:    nextToken,
	}

	logger.Debug("Transactions listed", slog.Int("count", len(transactions)))
	return resp, nil
}
