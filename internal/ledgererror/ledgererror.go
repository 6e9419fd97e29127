package ledgererror

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

type ErrorCode string

const (
	ErrNotFound          ErrorCode = "NOT_FOUND"
	ErrConflict          ErrorCode = "CONFLICT"
	ErrInvalidAmount     ErrorCode = "INVALID_AMOUNT"
	ErrInsufficientFunds ErrorCode = "INSUFFICIENT_FUNDS"
	ErrSameAccount       ErrorCode = "SAME_ACCOUNT"
)

// LedgerError is the typed failure every core operation returns. The core
// never panics and never terminates the process; the front end decides how
// to present the code to a human.
type LedgerError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e LedgerError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code ErrorCode, message string, details interface{}) LedgerError {
	if details != nil {
		logrus.Error(details)
	}
	return LedgerError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// CodeOf extracts the error code from err, or the empty code if err is not a
// LedgerError.
func CodeOf(err error) ErrorCode {
	var ledgerErr LedgerError
	if errors.As(err, &ledgerErr) {
		return ledgerErr.Code
	}
	return ""
}

// Is reports whether err is a LedgerError carrying the given code.
func Is(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
