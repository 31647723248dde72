package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xylo-fin/xylo-backend/internal/apperrors"
	"github.com/xylo-fin/xylo-backend/internal/core/domain"
	portsrepo "github.com/xylo-fin/xylo-backend/internal/core/ports/repositories"
	"github.com/xylo-fin/xylo-backend/internal/utils/pagination"
)

// uniqueViolationCode is the Postgres error code for unique constraint violations
const uniqueViolationCode = "23505"

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for raw transaction records.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts a new transaction record.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, user_id, source, reference, date, amount, currency, description, created_at, processed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.UserID,
		string(txn.Source),
		txn.Reference,
		txn.Date,
		txn.Amount,
		txn.Currency,
		txn.Description,
		txn.CreatedAt,
		txn.Processed,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert transaction "+txn.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a specific transaction by its unique identifier.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, user_id, source, reference, date, amount, currency, description, created_at, processed
		FROM transactions
		WHERE transaction_id = $1;
	`
	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction by ID "+transactionID, err)
	}
	return txn, nil
}

// ListTransactions retrieves a filtered, paginated list of transactions
// ordered by date descending with created_at as tie-breaker, using
// token-based pagination.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to determine whether there is a next page.
	fetchLimit := limit + 1

	query := `
		SELECT transaction_id, user_id, source, reference, date, amount, currency, description, created_at, processed
		FROM transactions
		WHERE 1=1
	`
	args := []interface{}{}

	if filter.From != nil {
		args = append(args, *filter.From)
		query += " AND date >= $" + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += " AND date <= $" + strconv.Itoa(len(args))
	}
	if filter.MinAmount != nil {
		args = append(args, *filter.MinAmount)
		query += " AND amount >= $" + strconv.Itoa(len(args))
	}
	if filter.Processed != nil {
		args = append(args, *filter.Processed)
		query += " AND processed = $" + strconv.Itoa(len(args))
	}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		// Tuple comparison keeps the cursor stable on equal dates.
		args = append(args, lastDate, lastCreatedAt)
		query += " AND (date, created_at) < ($" + strconv.Itoa(len(args)-1) + ", $" + strconv.Itoa(len(args)) + ")"
	}

	args = append(args, fetchLimit)
	query += " ORDER BY date DESC, created_at DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0, fetchLimit)
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		transactions = append(transactions, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	var nextTokenVal *string
	if len(transactions) > limit {
		last := transactions[limit-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		nextTokenVal = &token
		transactions = transactions[:limit]
	}

	return transactions, nextTokenVal, nil
}

// scanTransaction reads one transaction row from either a Row or Rows.
func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	var source string
	err := row.Scan(
		&txn.TransactionID,
		&txn.UserID,
		&source,
		&txn.Reference,
		&txn.Date,
		&txn.Amount,
		&txn.Currency,
		&txn.Description,
		&txn.CreatedAt,
		&txn.Processed,
	)
	if err != nil {
		return nil, err
	}
	txn.Source = domain.TransactionSource(source)
	return &txn, nil
}
