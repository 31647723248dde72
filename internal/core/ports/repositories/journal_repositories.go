package repositories

import (
	"context"

	"github.com/xylo-fin/xylo-backend/internal/core/domain"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindEntryByID retrieves a journal entry header by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves all lines belonging to a journal entry.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// SaveEntry persists a journal entry header and all of its lines as a
	// single atomic unit. When markTransactionID is non-nil, the referenced
	// transaction's processed flag flips to true inside the same unit.
	// Either every row becomes visible or none do.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, markTransactionID *string) error
}

// JournalRepositoryFacade combines all journal repository interfaces.
// There is no update or delete operation: the journal is append-only so
// that any historical balance is reproducible from the stored lines.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
