package finance

import (
	"errors"
	"fmt"
)

// Error kinds returned by the ledger. Every failure unwraps to exactly one of
// them, so callers can test it with errors.Is and print the error as is.
var (
	// ErrInvalidRequest indicates an unrecognized action keyword or a
	// missing or mismatched argument.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrAccount indicates a violated account precondition: duplicate name,
	// unknown name or no active account.
	ErrAccount = errors.New("account error")

	// ErrTransactionNotFound indicates a transaction number outside of
	// [1, count], or an operation on an account without transactions.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrMalformedRecord indicates structurally invalid input data: a
	// missing required field or an unparsable number, integer or date.
	ErrMalformedRecord = errors.New("malformed record")
)

// kindError is a user facing message attached to one of the error kinds.
type kindError struct {
	kind  error
	msg   string
	cause error
}

func (e *kindError) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

// Unwrap returns both the kind and the cause so that errors.Is matches either.
func (e *kindError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}

func newError(kind error, format string, args ...any) error {
	return &kindError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// wrapError is like newError but keeps a lower level cause.
func wrapError(kind, cause error, format string, args ...any) error {
	return &kindError{kind: kind, msg: fmt.Sprintf(format, args...), cause: cause}
}

func invalidRequest(format string, args ...any) error {
	return newError(ErrInvalidRequest, format, args...)
}

func accountError(format string, args ...any) error {
	return newError(ErrAccount, format, args...)
}

func malformed(format string, args ...any) error {
	return newError(ErrMalformedRecord, format, args...)
}
