package ledger

import (
	"errors"
	"fmt"
)

// Validation error codes
const (
	CodeInvalidAmount          = "invalid_amount"
	CodeInsufficientBalance    = "insufficient_balance"
	CodeDailyLimitExceeded     = "daily_limit_exceeded"
	CodeMaxTransactionExceeded = "max_transaction_exceeded"
	CodeEntryNotFound          = "entry_not_found"
	CodeEntryAlreadyReversed   = "entry_already_reversed"
	CodeEntryNotPending        = "entry_not_pending"
	CodeUnknownTransactionType = "unknown_transaction_type"
)

// ValidationError is a business-rule rejection. It is caller-visible,
// never retryable as-is, and always accompanied by an audit log entry.
type ValidationError struct {
	Code   string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError creates a validation error with a machine-readable code
func NewValidationError(code, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Code:   code,
		Reason: fmt.Sprintf(format, args...),
	}
}

// IsValidationError reports whether err is a business-rule rejection rather
// than an infrastructure failure
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Shared entry lifecycle errors
var (
	ErrEntryNotFound        = NewValidationError(CodeEntryNotFound, "ledger entry not found")
	ErrEntryAlreadyReversed = NewValidationError(CodeEntryAlreadyReversed, "ledger entry already reversed")
	ErrEntryNotPending      = NewValidationError(CodeEntryNotPending, "ledger entry is not pending")
)
