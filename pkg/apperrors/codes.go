package apperrors

// ErrorCode identifies a class of failure in API responses and logs.
type ErrorCode string

const (
	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
	CodeNotConfigured ErrorCode = "NOT_CONFIGURED"

	// External collaborators
	CodeIdentityProviderError ErrorCode = "IDENTITY_PROVIDER_ERROR"
	CodeStorageError          ErrorCode = "STORAGE_ERROR"

	// Request lifecycle
	CodeOperationCanceled ErrorCode = "OPERATION_CANCELED"
	CodeOperationTimeout  ErrorCode = "OPERATION_TIMEOUT"

	// Business logic
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"

	// Authentication / authorization
	CodeUnauthorized          ErrorCode = "UNAUTHORIZED"
	CodeForbidden             ErrorCode = "FORBIDDEN"
	CodeInvalidToken          ErrorCode = "INVALID_TOKEN"
	CodeRoleSelectionRequired ErrorCode = "ROLE_SELECTION_REQUIRED"
	CodeVerificationRequired  ErrorCode = "VERIFICATION_REQUIRED"
)
