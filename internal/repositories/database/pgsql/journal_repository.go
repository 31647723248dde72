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

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entry data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveEntry persists a journal entry header, its lines and, when
// markTransactionID is set, the source transaction's processed flag, all
// within a single DB transaction. Partial postings are impossible: any
// failure rolls the whole unit back.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, markTransactionID *string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored when the transaction commits successfully.
	defer r.Rollback(ctx, tx)

	entryQuery := `
		INSERT INTO journal_entries (entry_id, transaction_id, entry_date, description, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err = tx.Exec(ctx, entryQuery,
		entry.EntryID,
		entry.TransactionID,
		entry.EntryDate,
		entry.Description,
		entry.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal entry "+entry.EntryID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (line_id, entry_id, account_code, debit, credit)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, line := range lines {
		batch.Queue(lineQuery,
			line.LineID,
			line.EntryID,
			line.AccountCode,
			line.Debit,
			line.Credit,
		)
	}
	if markTransactionID != nil {
		batch.Queue(`UPDATE transactions SET processed = TRUE WHERE transaction_id = $1;`, *markTransactionID)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute line batch for entry "+entry.EntryID, err)
	}

	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves a journal entry header by its unique identifier.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT entry_id, transaction_id, entry_date, description, created_at
		FROM journal_entries
		WHERE entry_id = $1;
	`
	var entry domain.JournalEntry
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(
		&entry.EntryID,
		&entry.TransactionID,
		&entry.EntryDate,
		&entry.Description,
		&entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry by ID "+entryID, err)
	}
	return &entry, nil
}

// FindLinesByEntryID retrieves all lines belonging to a journal entry.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, entry_id, account_code, debit, credit
		FROM journal_lines
		WHERE entry_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	defer rows.Close()

	lines := []domain.JournalLine{}
	for rows.Next() {
		var line domain.JournalLine
		if err := rows.Scan(&line.LineID, &line.EntryID, &line.AccountCode, &line.Debit, &line.Credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for entry "+entryID, err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for entry "+entryID, err)
	}

	return lines, nil
}
