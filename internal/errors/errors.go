// Package errors provides typed errors for promptsmith.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode identifies the type of error.
type ErrorCode string

const (
	ErrInvalidInput       ErrorCode = "INVALID_INPUT"
	ErrOptimizationFailed ErrorCode = "OPTIMIZATION_FAILED"
	ErrLedgerPersist      ErrorCode = "LEDGER_PERSIST"
	ErrStoreCorrupt       ErrorCode = "STORE_CORRUPT"
	ErrRulesInvalid       ErrorCode = "RULES_INVALID"
)

// Error represents a typed error with user-friendly hints.
type Error struct {
	Code    ErrorCode
	Message string
	Hint    string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error.
func New(code ErrorCode, message, hint string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Hint:    hint,
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code ErrorCode, message, hint string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Hint:    hint,
		Cause:   cause,
	}
}

// HasCode reports whether err (or any error it wraps) carries the given code.
func HasCode(err error, code ErrorCode) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// InvalidInput returns an error for unusable prompt input.
func InvalidInput(reason string) *Error {
	return &Error{
		Code:    ErrInvalidInput,
		Message: fmt.Sprintf("invalid prompt input: %s", reason),
		Hint:    "Provide a non-empty prompt as an argument, via --file, or on stdin",
	}
}

// OptimizationFailed returns an error wrapping an internal pipeline failure.
func OptimizationFailed(cause error) *Error {
	return &Error{
		Code:    ErrOptimizationFailed,
		Message: "prompt optimization failed",
		Hint:    "The input was not modified; retrying the same call is safe",
		Cause:   cause,
	}
}

// LedgerPersist returns an error for analytics persistence failures.
func LedgerPersist(cause error) *Error {
	return &Error{
		Code:    ErrLedgerPersist,
		Message: "failed to persist analytics ledger",
		Hint:    "Check that the data directory is writable",
		Cause:   cause,
	}
}

// StoreCorrupt returns an error for unreadable store contents.
func StoreCorrupt(path string, cause error) *Error {
	return &Error{
		Code:    ErrStoreCorrupt,
		Message: fmt.Sprintf("store file is not valid JSON: %s", path),
		Hint:    "Delete the file to start with a fresh store",
		Cause:   cause,
	}
}

// RulesInvalid returns an error for a registry configuration that fails validation.
func RulesInvalid(reason string) *Error {
	return &Error{
		Code:    ErrRulesInvalid,
		Message: fmt.Sprintf("invalid rule configuration: %s", reason),
		Hint:    "Check the rules YAML for missing ids, markers, or guidance text",
	}
}
