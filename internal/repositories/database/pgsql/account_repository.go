package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xylo-fin/xylo-backend/internal/apperrors"
	"github.com/xylo-fin/xylo-backend/internal/core/domain"
	portsrepo "github.com/xylo-fin/xylo-backend/internal/core/ports/repositories"
)

type PgxChartRepository struct {
	BaseRepository
}

// newPgxChartRepository creates a new repository for chart-of-accounts data.
func newPgxChartRepository(pool *pgxpool.Pool) portsrepo.ChartRepositoryFacade {
	return &PgxChartRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxChartRepository implements portsrepo.ChartRepositoryFacade
var _ portsrepo.ChartRepositoryFacade = (*PgxChartRepository)(nil)

// SaveAccountIfAbsent inserts the account unless its code already exists.
// ON CONFLICT DO NOTHING makes the insert race-safe: two concurrent seeds
// of the same code cannot fail, and exactly one reports an insert.
func (r *PgxChartRepository) SaveAccountIfAbsent(ctx context.Context, account domain.Account) (bool, error) {
	query := `
		INSERT INTO accounts (code, name, account_type, normal_balance)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (code) DO NOTHING;
	`
	tag, err := r.Pool.Exec(ctx, query,
		account.Code,
		account.Name,
		string(account.Type),
		string(account.NormalBalance),
	)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to insert account "+account.Code, err)
	}
	return tag.RowsAffected() > 0, nil
}

// FindAccountByCode retrieves a specific account by its code.
func (r *PgxChartRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	query := `
		SELECT code, name, account_type, normal_balance
		FROM accounts
		WHERE code = $1;
	`
	var account domain.Account
	var accountType, normalBalance string

	err := r.Pool.QueryRow(ctx, query, code).Scan(
		&account.Code,
		&account.Name,
		&accountType,
		&normalBalance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by code "+code, err)
	}

	account.Type = domain.AccountType(accountType)
	account.NormalBalance = domain.BalanceSide(normalBalance)
	return &account, nil
}

// ListAccounts retrieves all accounts ordered by code ascending.
func (r *PgxChartRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT code, name, account_type, normal_balance
		FROM accounts
		ORDER BY code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var account domain.Account
		var accountType, normalBalance string
		if err := rows.Scan(&account.Code, &account.Name, &accountType, &normalBalance); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		account.Type = domain.AccountType(accountType)
		account.NormalBalance = domain.BalanceSide(normalBalance)
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}

	return accounts, nil
}
