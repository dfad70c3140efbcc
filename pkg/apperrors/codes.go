package apperrors

// ErrorCode identifies a failure class independent of HTTP status.
type ErrorCode string

const (
	// System and unknown errors
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"

	// Generic business errors
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Authentication and authorization
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeAccessDenied       ErrorCode = "ACCESS_DENIED"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeSessionExpired     ErrorCode = "SESSION_EXPIRED"
)
