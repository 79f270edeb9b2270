// Package errors provides standardized domain errors with codes for the
// review reporting engine.
//
// Usage:
//
//	// In services - return typed errors
//	if len(rows) == 0 {
//	    return errors.EmptyPopulation("no qualified rows for " + pm)
//	}
//
//	// In handlers - check with errors.Is
//	if errors.Is(err, errors.ErrSheetUnavailable) {
//	    response.HandleError(w, err, logger)
//	    return
//	}
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// Code represents a machine-readable error code.
type Code string

// Error codes used throughout the application.
const (
	// CodeSheetUnavailable covers spreadsheet transport and authorization
	// failures; callers treat the worksheet as empty and surface the error.
	CodeSheetUnavailable Code = "SHEET_UNAVAILABLE"
	// CodeSchemaDrift means a worksheet no longer carries its sentinel
	// column and cannot be normalized.
	CodeSchemaDrift Code = "SCHEMA_DRIFT"
	// CodeRecipientUnknown means an e-mail has no chat account.
	CodeRecipientUnknown Code = "RECIPIENT_UNKNOWN"
	// CodeTransport means a chat message post failed.
	CodeTransport Code = "TRANSPORT"
	// CodeEmptyPopulation means no Pending or Attained rows matched.
	CodeEmptyPopulation Code = "EMPTY_POPULATION"

	CodeNotFound           Code = "NOT_FOUND"
	CodeValidation         Code = "VALIDATION"
	CodeUnauthorized       Code = "UNAUTHORIZED"
	CodeForbidden          Code = "FORBIDDEN"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeTokenExpired       Code = "TOKEN_EXPIRED"
	CodeInternal           Code = "INTERNAL"
)

// HTTPStatus returns the appropriate HTTP status code for an error code.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound, CodeRecipientUnknown, CodeEmptyPopulation:
		return http.StatusNotFound
	case CodeValidation:
		return http.StatusBadRequest
	case CodeUnauthorized, CodeInvalidCredentials, CodeTokenExpired:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeSheetUnavailable, CodeTransport:
		return http.StatusBadGateway
	case CodeSchemaDrift:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Error is a domain error with a code, message, and optional details.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	cause   error  // unexported, for wrapping
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error.
// Matches if target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// HTTPStatus returns the HTTP status code for this error.
func (e *Error) HTTPStatus() int {
	return e.Code.HTTPStatus()
}

// WithDetails returns a new error with additional details.
func (e *Error) WithDetails(details any) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		cause:   e.cause,
	}
}

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		cause:   err,
	}
}

// Sentinel errors for use with errors.Is().
var (
	ErrSheetUnavailable   = &Error{Code: CodeSheetUnavailable, Message: "sheet unavailable"}
	ErrSchemaDrift        = &Error{Code: CodeSchemaDrift, Message: "worksheet schema drift"}
	ErrRecipientUnknown   = &Error{Code: CodeRecipientUnknown, Message: "recipient unknown"}
	ErrTransport          = &Error{Code: CodeTransport, Message: "message transport failed"}
	ErrEmptyPopulation    = &Error{Code: CodeEmptyPopulation, Message: "empty population"}
	ErrNotFound           = &Error{Code: CodeNotFound, Message: "not found"}
	ErrValidation         = &Error{Code: CodeValidation, Message: "validation error"}
	ErrUnauthorized       = &Error{Code: CodeUnauthorized, Message: "unauthorized"}
	ErrForbidden          = &Error{Code: CodeForbidden, Message: "forbidden"}
	ErrInvalidCredentials = &Error{Code: CodeInvalidCredentials, Message: "invalid credentials"}
	ErrTokenExpired       = &Error{Code: CodeTokenExpired, Message: "token expired"}
	ErrInternal           = &Error{Code: CodeInternal, Message: "internal error"}
)

// Constructor functions for creating errors with custom messages.

// SheetUnavailable creates a sheet unavailable error.
func SheetUnavailable(msg string) *Error {
	return &Error{Code: CodeSheetUnavailable, Message: msg}
}

// SheetUnavailablef creates a sheet unavailable error with formatted message.
func SheetUnavailablef(format string, args ...any) *Error {
	return &Error{Code: CodeSheetUnavailable, Message: fmt.Sprintf(format, args...)}
}

// SchemaDrift creates a schema drift error.
func SchemaDrift(msg string) *Error {
	return &Error{Code: CodeSchemaDrift, Message: msg}
}

// SchemaDriftf creates a schema drift error with formatted message.
func SchemaDriftf(format string, args ...any) *Error {
	return &Error{Code: CodeSchemaDrift, Message: fmt.Sprintf(format, args...)}
}

// RecipientUnknown creates a recipient unknown error.
func RecipientUnknown(msg string) *Error {
	return &Error{Code: CodeRecipientUnknown, Message: msg}
}

// RecipientUnknownf creates a recipient unknown error with formatted message.
func RecipientUnknownf(format string, args ...any) *Error {
	return &Error{Code: CodeRecipientUnknown, Message: fmt.Sprintf(format, args...)}
}

// Transport creates a transport error.
func Transport(msg string) *Error {
	return &Error{Code: CodeTransport, Message: msg}
}

// Transportf creates a transport error with formatted message.
func Transportf(format string, args ...any) *Error {
	return &Error{Code: CodeTransport, Message: fmt.Sprintf(format, args...)}
}

// EmptyPopulation creates an empty population error.
func EmptyPopulation(msg string) *Error {
	return &Error{Code: CodeEmptyPopulation, Message: msg}
}

// EmptyPopulationf creates an empty population error with formatted message.
func EmptyPopulationf(format string, args ...any) *Error {
	return &Error{Code: CodeEmptyPopulation, Message: fmt.Sprintf(format, args...)}
}

// NotFound creates a not found error.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// Validation creates a validation error.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// Validationf creates a validation error with formatted message.
func Validationf(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// ValidationWithDetails creates a validation error with details.
func ValidationWithDetails(msg string, details any) *Error {
	return &Error{Code: CodeValidation, Message: msg, Details: details}
}

// Unauthorized creates an unauthorized error.
func Unauthorized(msg string) *Error {
	return &Error{Code: CodeUnauthorized, Message: msg}
}

// Forbidden creates a forbidden error.
func Forbidden(msg string) *Error {
	return &Error{Code: CodeForbidden, Message: msg}
}

// InvalidCredentials creates an invalid credentials error.
func InvalidCredentials(msg string) *Error {
	return &Error{Code: CodeInvalidCredentials, Message: msg}
}

// TokenExpired creates a token expired error.
func TokenExpired(msg string) *Error {
	return &Error{Code: CodeTokenExpired, Message: msg}
}

// Internal creates an internal error.
func Internal(msg string) *Error {
	return &Error{Code: CodeInternal, Message: msg}
}

// Internalf creates an internal error with formatted message.
func Internalf(format string, args ...any) *Error {
	return &Error{Code: CodeInternal, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with a code and message.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, cause: err}
}

// Wrapf wraps an error with a code and formatted message.
func Wrapf(err error, code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), cause: err}
}
