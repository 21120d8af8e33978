package apperror

import "fmt"

type AppError struct {
	Code       string // Machine-readable code (e.g. VALIDATION_ERROR)
	Message    string // User-facing message
	HTTPStatus int    // HTTP status this error maps to
	Details    any    // Optional structured detail (field errors, etc.)
	Err        error  // Wrapped original error (optional)
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError without wrapping
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap creates an AppError that wraps an existing error
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// WithDetails attaches structured detail to the error and returns it.
func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}
