package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionSource tags where a raw transaction record came from.
type TransactionSource string

const (
	SourceManual        TransactionSource = "manual"
	SourceInvoiceUpload TransactionSource = "invoice_upload"
	SourceBankImport    TransactionSource = "bank_import"
)

// Transaction is a raw financial event recorded before posting. It is a
// historical fact: amount and description never change after creation,
// and the record is never deleted. The only mutation in its lifecycle is
// the Processed flag flipping false->true when a journal entry is posted
// against it.
type Transaction struct {
	TransactionID string            `json:"transactionID"`
	UserID        string            `json:"userID,omitempty"`
	Source        TransactionSource `json:"source"`
	Reference     string            `json:"reference,omitempty"`
	Date          time.Time         `json:"date"`
	Amount        decimal.Decimal   `json:"amount"`
	Currency      string            `json:"currency"`
	Description   string            `json:"description"`
	CreatedAt     time.Time         `json:"createdAt"`
	Processed     bool              `json:"processed"`
}
