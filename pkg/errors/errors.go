package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport mapping and metrics labels
type Kind string

const (
	KindValidation         Kind = "validation"
	KindUnauthorized       Kind = "unauthorized"
	KindPermission         Kind = "permission"
	KindNotFound           Kind = "not_found"
	KindConflict           Kind = "conflict"
	KindDatabase           Kind = "database"
	KindInternal           Kind = "internal"
	KindServiceUnavailable Kind = "service_unavailable"
	KindUnknown            Kind = "unknown"
)

type baseError struct {
	message string
	cause   error
}

func (e *baseError) Error() string {
	return e.message
}

// Unwrap exposes the underlying cause, if any
func (e *baseError) Unwrap() error {
	return e.cause
}

// Cause returns the wrapped error or nil
func (e *baseError) Cause() error {
	return e.cause
}

// ValidationError represents malformed input (HTTP 400)
type ValidationError struct {
	baseError
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{baseError{message: message}}
}

func NewValidationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{baseError{message: fmt.Sprintf(format, args...)}}
}

// UnauthorizedError represents a missing or invalid caller identity (HTTP 401)
type UnauthorizedError struct {
	baseError
}

func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{baseError{message: message}}
}

// PermissionError represents a failed capability check (HTTP 403)
type PermissionError struct {
	baseError
}

func NewPermissionErrorf(format string, args ...interface{}) *PermissionError {
	return &PermissionError{baseError{message: fmt.Sprintf(format, args...)}}
}

// NotFoundError represents an absent or hidden resource (HTTP 404)
type NotFoundError struct {
	baseError
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{baseError{message: message}}
}

// ConflictError represents a uniqueness violation (HTTP 409)
type ConflictError struct {
	baseError
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{baseError{message: message}}
}

// DatabaseError represents a failed persistence operation (HTTP 500)
type DatabaseError struct {
	baseError
}

// WrapDatabaseError keeps the driver error as cause while exposing a generic message
func WrapDatabaseError(cause error, message string) *DatabaseError {
	return &DatabaseError{baseError{message: message, cause: cause}}
}

// InternalError represents an internal server error (HTTP 500)
type InternalError struct {
	baseError
}

// WrapInternalError keeps cause for logging while exposing message to callers
func WrapInternalError(cause error, message string) *InternalError {
	return &InternalError{baseError{message: message, cause: cause}}
}

// ServiceUnavailableError represents a dependency outage (HTTP 503)
type ServiceUnavailableError struct {
	baseError
}

func NewServiceUnavailableError(message string) *ServiceUnavailableError {
	return &ServiceUnavailableError{baseError{message: message}}
}

// KindOf walks the error chain and reports the first typed error kind found
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var (
		validationErr   *ValidationError
		unauthorizedErr *UnauthorizedError
		permissionErr   *PermissionError
		notFoundErr     *NotFoundError
		conflictErr     *ConflictError
		databaseErr     *DatabaseError
		internalErr     *InternalError
		unavailableErr  *ServiceUnavailableError
	)

	switch {
	case errors.As(err, &validationErr):
		return KindValidation
	case errors.As(err, &unauthorizedErr):
		return KindUnauthorized
	case errors.As(err, &permissionErr):
		return KindPermission
	case errors.As(err, &notFoundErr):
		return KindNotFound
	case errors.As(err, &conflictErr):
		return KindConflict
	case errors.As(err, &databaseErr):
		return KindDatabase
	case errors.As(err, &internalErr):
		return KindInternal
	case errors.As(err, &unavailableErr):
		return KindServiceUnavailable
	default:
		return KindUnknown
	}
}

// IsNotFound reports whether err carries a NotFoundError
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsConflict reports whether err carries a ConflictError
func IsConflict(err error) bool {
	return KindOf(err) == KindConflict
}

// IsPermission reports whether err carries a PermissionError
func IsPermission(err error) bool {
	return KindOf(err) == KindPermission
}
