package apperror

const (
	// Client errors (4xx)
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"

	// Server errors (5xx)
	CodeInternalError  = "INTERNAL_ERROR"
	CodeNotImplemented = "NOT_IMPLEMENTED"
)
