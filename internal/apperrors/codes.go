package apperrors

// Error codes grouped by domain.
const (
	// Authentication
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidAccessCode  ErrorCode = "INVALID_ACCESS_CODE"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	CodeInvalidFileType  ErrorCode = "INVALID_FILE_TYPE"
	CodeEmptyEmailBody   ErrorCode = "EMPTY_EMAIL_BODY"

	// Resources
	CodeUserNotFound      ErrorCode = "USER_NOT_FOUND"
	CodeCandidateNotFound ErrorCode = "CANDIDATE_NOT_FOUND"
	CodeCVNotFound        ErrorCode = "CV_NOT_FOUND"

	// Business logic
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"

	// System
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeStorageError         ErrorCode = "STORAGE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"
)
