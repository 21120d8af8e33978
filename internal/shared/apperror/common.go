package apperror

import (
	"fmt"
	"net/http"
)

var ErrInternal = New(
	CodeInternalError,
	"An unexpected error occurred",
	http.StatusInternalServerError,
)

// NotFound builds a 404 error with the given user-facing message.
func NotFound(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

// Validation builds a 422 error carrying field-level detail.
func Validation(details []FieldError) *AppError {
	return New(CodeValidationError, "Validation failed", http.StatusUnprocessableEntity).
		WithDetails(details)
}

// RequiredField builds the validation error for a missing required field.
func RequiredField(field string) FieldError {
	return FieldError{Field: field, Reason: fmt.Sprintf("%s is required", formatFieldName(field))}
}

// InvalidField builds the generic validation error for a malformed field.
func InvalidField(field string) FieldError {
	return FieldError{Field: field, Reason: fmt.Sprintf("%s is invalid", formatFieldName(field))}
}
