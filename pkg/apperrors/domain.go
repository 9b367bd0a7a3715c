package apperrors

import (
	"net/http"
)

// Factories and predefined variables for domain errors shared across services.

// ErrNotFound converts a repository miss into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic conflict factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// PersistenceError wraps a store read/write failure.
func PersistenceError(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "store", "Verification store failure", http.StatusInternalServerError)
}

// AuthError wraps an identity provider failure.
func AuthError(err error) *AppError {
	return Wrap(err, CodeIdentityProviderError, "identity", "Identity provider error", http.StatusBadGateway)
}

// StorageError wraps an object storage failure.
func StorageError(err error) *AppError {
	return Wrap(err, CodeStorageError, "storage", "Document storage error", http.StatusBadGateway)
}

// ErrNotConfigured is the uniform stub-mode write error: the backend provider
// is not configured, so every mutating operation fails the same way.
var ErrNotConfigured = New(
	CodeNotConfigured,
	"config",
	"Backend provider is not configured",
	http.StatusServiceUnavailable,
)

// ErrDecisionConflict rejects a verification decision on a profile that has
// already reached a terminal status.
var ErrDecisionConflict = New(
	CodeConflict,
	"review",
	"Profile verification has already been decided",
	http.StatusConflict,
)

// ErrInsufficientPermissions rejects a non-admin performing an admin action.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)
