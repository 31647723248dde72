package dto

import (
	"time"

	"github.com/xylo-fin/xylo-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineSpec is one debit/credit line of a posting request. Omitted sides
// default to zero; both sides must be non-negative.
type LineSpec struct {
	AccountCode string          `json:"accountCode" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// PostEntryRequest defines the input for posting a journal entry.
type PostEntryRequest struct {
	TransactionID *string    `json:"transactionID"`
	EntryDate     time.Time  `json:"entryDate" binding:"required"`
	Description   string     `json:"description"`
	Lines         []LineSpec `json:"lines" binding:"required,dive"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID      string          `json:"lineID"`
	AccountCode string          `json:"accountCode"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID       string                `json:"entryID"`
	TransactionID *string               `json:"transactionID,omitempty"`
	EntryDate     time.Time             `json:"entryDate"`
	Description   string                `json:"description"`
	CreatedAt     time.Time             `json:"createdAt"`
	Lines         []JournalLineResponse `json:"lines,omitempty"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(entry *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:       entry.EntryID,
		TransactionID: entry.TransactionID,
		EntryDate:     entry.EntryDate,
		Description:   entry.Description,
		CreatedAt:     entry.CreatedAt,
	}
	if len(entry.Lines) > 0 {
		resp.Lines = make([]JournalLineResponse, len(entry.Lines))
		for i, line := range entry.Lines {
			resp.Lines[i] = JournalLineResponse{
				LineID:      line.LineID,
				AccountCode: line.AccountCode,
				Debit:       line.Debit,
				Credit:      line.Credit,
			}
		}
	}
	return resp
}
