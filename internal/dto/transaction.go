package dto

import (
	"time"

	"github.com/xylo-fin/xylo-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordTransactionRequest defines the input for recording a raw transaction.
type RecordTransactionRequest struct {
	UserID      string          `json:"userID"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        *time.Time      `json:"date"` // defaults to today (UTC) when omitted
	Description string          `json:"description"`
	Source      string          `json:"source"` // defaults to "manual"
	Reference   *string         `json:"reference"`
}

// ListTransactionsParams holds filters and pagination for a transaction listing.
type ListTransactionsParams struct {
	From      *time.Time
	To        *time.Time
	MinAmount *decimal.Decimal
	Processed *bool
	Limit     int
	NextToken *string
}

// TransactionResponse defines the data returned for a transaction record.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	UserID        string          `json:"userID,omitempty"`
	Source        string          `json:"source"`
	Reference     string          `json:"reference,omitempty"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"createdAt"`
	Processed     bool            `json:"processed"`
}

// ListTransactionsResponse wraps a page of transactions with the cursor
// for the next page, if any.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		UserID:        txn.UserID,
		Source:        string(txn.Source),
		Reference:     txn.Reference,
		Date:          txn.Date,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		Description:   txn.Description,
		CreatedAt:     txn.CreatedAt,
		Processed:     txn.Processed,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}
