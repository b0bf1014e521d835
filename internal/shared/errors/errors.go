// Package errors provides application-level error types shared across layers.
// The taxonomy mirrors the access protocol: invalid session, forbidden,
// not found, creation/mutation failures.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType classifies an application error.
type ErrorType string

const (
	ErrorTypeValidation     ErrorType = "validation_error"
	ErrorTypeNotFound       ErrorType = "not_found"
	ErrorTypeConflict       ErrorType = "conflict"
	ErrorTypeInvalidSession ErrorType = "invalid_session"
	ErrorTypeForbidden      ErrorType = "forbidden"
	ErrorTypeInternal       ErrorType = "internal_error"
)

// AppError carries an error type, a user-safe message, and the HTTP status
// it maps to. Internal details never leave the process through it.
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// NewValidationError reports malformed or missing request input.
func NewValidationError(message string) *AppError {
	return &AppError{Type: ErrorTypeValidation, Message: message, Code: http.StatusBadRequest}
}

// NewNotFoundError reports an absent resource.
func NewNotFoundError(message string) *AppError {
	return &AppError{Type: ErrorTypeNotFound, Message: message, Code: http.StatusNotFound}
}

// NewConflictError reports a uniqueness or state conflict.
func NewConflictError(message string) *AppError {
	return &AppError{Type: ErrorTypeConflict, Message: message, Code: http.StatusConflict}
}

// NewInvalidSessionError reports a missing, expired, or deactivated token.
func NewInvalidSessionError() *AppError {
	return &AppError{Type: ErrorTypeInvalidSession, Message: "session is invalid", Code: http.StatusUnauthorized}
}

// NewForbiddenError reports a valid session that failed the ownership check.
func NewForbiddenError(message string) *AppError {
	return &AppError{Type: ErrorTypeForbidden, Message: message, Code: http.StatusForbidden}
}

// NewInternalError reports a server-side failure. The message must be safe
// to show to callers; wrap the cause separately for logging.
func NewInternalError(message string) *AppError {
	return &AppError{Type: ErrorTypeInternal, Message: message, Code: http.StatusInternalServerError}
}

// GetAppError extracts an AppError from an error chain, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsNotFound reports whether err is a not-found AppError.
func IsNotFound(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeNotFound
}

// IsInvalidSession reports whether err is an invalid-session AppError.
func IsInvalidSession(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeInvalidSession
}

// IsForbidden reports whether err is a forbidden AppError.
func IsForbidden(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeForbidden
}

// IsDuplicateError reports whether err is a database unique-constraint
// violation, in either Postgres or SQLite phrasing.
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	if strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "violates unique constraint") {
		return true
	}
	return strings.Contains(errStr, "UNIQUE constraint failed")
}
