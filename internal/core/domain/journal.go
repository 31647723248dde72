package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the header of an atomic, balanced posting. Entries are
// immutable once created: there is no amendment API, and a correction is
// a new offsetting entry rather than an edit.
type JournalEntry struct {
	EntryID       string    `json:"entryID"`
	TransactionID *string   `json:"transactionID,omitempty"` // source transaction, if any
	EntryDate     time.Time `json:"entryDate"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
	// Lines is populated on read paths that fetch the full entry.
	Lines []JournalLine `json:"lines,omitempty"`
}

// JournalLine is a single debit or credit against one account within a
// journal entry. Debit and Credit are both non-negative and quantized to
// two decimal places; a reduction of an asset is expressed as a
// credit-side line, never a negative debit.
type JournalLine struct {
	LineID      string          `json:"lineID"`
	EntryID     string          `json:"entryID"`
	AccountCode string          `json:"accountCode"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}
