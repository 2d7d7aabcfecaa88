// Package errors defines the domain error kinds surfaced by the services.
// Every error carries a stable code so callers can match on kind with
// errors.Is while services keep specific messages per failure.
package errors

import "fmt"

// DomainError is an error with a machine-readable kind code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string { return e.Message }

// Is matches any DomainError carrying the same code, so a specific
// error compares equal (via errors.Is) to its kind sentinel.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// New returns a DomainError with the given code and message.
func New(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Newf returns a DomainError with a formatted message.
func Newf(code, format string, args ...any) *DomainError {
	return &DomainError{Code: code, Message: fmt.Sprintf(format, args...)}
}
