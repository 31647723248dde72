package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnbalanced indicates that a journal entry's debit and credit totals differ.
var ErrUnbalanced = errors.New("journal entry is unbalanced")

// UnbalancedEntryError reports a rejected journal entry together with the
// debit and credit totals it was rejected with. It matches ErrUnbalanced
// under errors.Is, so callers can branch without inspecting the totals.
type UnbalancedEntryError struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("journal entry is unbalanced: total debit %s, total credit %s",
		e.TotalDebit.StringFixed(2), e.TotalCredit.StringFixed(2))
}

func (e *UnbalancedEntryError) Is(target error) bool {
	return target == ErrUnbalanced
}

// AppError wraps a lower-level failure (typically from the storage layer)
// with a status code and a human-readable message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound under errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
