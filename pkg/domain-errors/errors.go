// Package domainerrors provides coded errors shared across the service.
// Handlers translate codes to HTTP statuses; domain and storage code only
// ever deals in codes.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies an error for callers that need to branch on failure kind.
type Code string

const (
	// CodeBadRequest marks payloads that do not decode into the wire shapes.
	CodeBadRequest Code = "bad_request"
	// CodeInvalidInput marks a single field value that fails its format.
	CodeInvalidInput Code = "invalid_input"
	// CodeValidation marks input that decoded cleanly but fails semantic rules.
	CodeValidation Code = "validation_failed"
	// CodeNotFound marks lookups for records that were never stored.
	CodeNotFound Code = "not_found"
	// CodeInternal marks unexpected failures not caused by the caller.
	CodeInternal Code = "internal_error"
)

// Error carries a code, a human-readable message, and an optional cause.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New constructs a coded error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap constructs a coded error around an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code == code
	}
	return false
}

// ToHTTPStatus maps a code to the HTTP status handlers should respond with.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeInvalidInput:
		return http.StatusBadRequest
	case CodeValidation:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
