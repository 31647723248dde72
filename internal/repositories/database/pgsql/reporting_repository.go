package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xylo-fin/xylo-backend/internal/core/domain"
	portsrepo "github.com/xylo-fin/xylo-backend/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure reportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetTrialBalanceData groups journal lines by account code over the
// inclusive entry-date range. The LEFT JOIN keeps lines whose account
// code has no chart entry: such rows come back with NULL name and type
// so the integrity problem is visible in the report.
func (r *reportingRepository) GetTrialBalanceData(ctx context.Context, from, to *time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			l.account_code,
			a.name AS account_name,
			a.account_type,
			COALESCE(SUM(l.debit), 0) AS total_debit,
			COALESCE(SUM(l.credit), 0) AS total_credit
		FROM journal_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		LEFT JOIN accounts a ON l.account_code = a.code
		WHERE 1=1
	`
	args := []interface{}{}
	if from != nil {
		args = append(args, *from)
		query += " AND e.entry_date >= $" + strconv.Itoa(len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += " AND e.entry_date <= $" + strconv.Itoa(len(args))
	}
	query += `
		GROUP BY l.account_code, a.name, a.account_type
		ORDER BY l.account_code;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying trial balance data: %w", err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType *string

		if err := rows.Scan(
			&row.AccountCode,
			&row.AccountName,
			&accountType,
			&row.TotalDebit,
			&row.TotalCredit,
		); err != nil {
			return nil, fmt.Errorf("error scanning trial balance row: %w", err)
		}

		if accountType != nil {
			t := domain.AccountType(*accountType)
			row.AccountType = &t
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}

	return result, nil
}
