package util

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Error codes shared across the service. Transport maps these onto HTTP
// status codes; services never pick numeric statuses themselves.
const (
	CodeValidationFailed  = "VALIDATION_FAILED"
	CodeDuplicate         = "DUPLICATE"
	CodeNotFound          = "NOT_FOUND"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeInvalidToken      = "INVALID_TOKEN"
	CodeExpiredToken      = "EXPIRED_TOKEN"
	CodeWrongTokenKind    = "WRONG_TOKEN_KIND"
	CodeCorruptCredential = "CORRUPT_CREDENTIAL"
	CodeStoreUnavailable  = "STORE_UNAVAILABLE"
	CodeRateLimited       = "RATE_LIMITED"
	CodeInternal          = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidationFailed, message, http.StatusBadRequest, details)
}

// NewDuplicate reports a uniqueness violation on a single candidate key.
// Both the application-level pre-check and the storage-level constraint
// rejection funnel into this one shape.
func NewDuplicate(field, value string) error {
	return NewDomainError(CodeDuplicate,
		fmt.Sprintf("%s already taken", field),
		http.StatusConflict,
		map[string]any{"field": field, "value": value})
}

func NewNotFound(resource string) error {
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound, nil)
}

func NewUnauthorized(message string) error {
	return NewDomainError(CodeUnauthorized, message, http.StatusUnauthorized, nil)
}

func NewInvalidToken() error {
	return NewDomainError(CodeInvalidToken, "invalid token", http.StatusUnauthorized, nil)
}

func NewExpiredToken() error {
	return NewDomainError(CodeExpiredToken, "token expired", http.StatusUnauthorized, nil)
}

func NewWrongTokenKind(kind string) error {
	return NewDomainError(CodeWrongTokenKind, "wrong token kind", http.StatusUnauthorized,
		map[string]any{"kind": kind})
}

// NewCorruptCredential signals an unreadable stored password hash. This is
// data corruption, not a user mistake.
func NewCorruptCredential(err error) error {
	return &DomainError{
		Code:       CodeCorruptCredential,
		Message:    "stored credential unreadable",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewStoreUnavailable(err error) error {
	return &DomainError{
		Code:       CodeStoreUnavailable,
		Message:    "backing store unavailable",
		HTTPStatus: http.StatusServiceUnavailable,
		Err:        err,
	}
}

func NewRateLimited(message string) error {
	return NewDomainError(CodeRateLimited, message, http.StatusTooManyRequests, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// HasCode reports whether err carries the given domain error code.
func HasCode(err error, code string) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == code
}

func IsNotFound(err error) bool  { return HasCode(err, CodeNotFound) }
func IsDuplicate(err error) bool { return HasCode(err, CodeDuplicate) }

// DuplicateField extracts the conflicting candidate-key name from a
// DUPLICATE error, or "" when err is not one.
func DuplicateField(err error) string {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != CodeDuplicate {
		return ""
	}
	field, _ := domainErr.Details["field"].(string)
	return field
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		if de, ok := NewStoreUnavailable(err).(*DomainError); ok {
			return de
		}
	}
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// MapError converts generic errors to DomainError, preserving nil.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	return ToDomainError(err)
}
