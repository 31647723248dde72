package services

import (
	"context"
	"time"

	"github.com/xylo-fin/xylo-backend/internal/core/domain"
	"github.com/xylo-fin/xylo-backend/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetEntryByID retrieves a journal entry with its lines populated.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// PostEntry validates and commits a balanced journal entry. Validation
	// completes before any write: an unbalanced or otherwise invalid entry
	// leaves no state behind.
	PostEntry(ctx context.Context, req dto.PostEntryRequest) (*domain.JournalEntry, error)

	// ReverseEntry posts a new entry offsetting an existing one by swapping
	// its lines' debit and credit sides. The original entry is untouched;
	// corrections are always new entries.
	ReverseEntry(ctx context.Context, entryID string, entryDate time.Time) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
