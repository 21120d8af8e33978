package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func formatFieldName(s string) string {
	// student_name -> Student Name
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError converts a binding failure into a 422 AppError that
// enumerates every field that failed, with a human-readable reason each.
func MapValidationError(err error) *AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, e := range verrs {
			details = append(details, fieldErrorFor(e))
		}
		return Validation(details)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return Validation([]FieldError{{
			Field:  typeErr.Field,
			Reason: fmt.Sprintf("%s must be of type %s", formatFieldName(typeErr.Field), typeErr.Type),
		}})
	}

	return New(CodeValidationError, "Invalid request body", 422)
}

func fieldErrorFor(e validator.FieldError) FieldError {
	// e.Field() is already the json tag name thanks to Init().
	field := e.Field()
	name := formatFieldName(field)

	var reason string
	switch e.Tag() {
	case "required":
		reason = fmt.Sprintf("%s is required", name)
	case "max":
		reason = fmt.Sprintf("%s must be at most %s characters", name, e.Param())
	case "min":
		reason = fmt.Sprintf("%s must be at least %s characters", name, e.Param())
	case "gte":
		reason = fmt.Sprintf("%s must be greater than or equal to %s", name, e.Param())
	case "lte":
		reason = fmt.Sprintf("%s must be less than or equal to %s", name, e.Param())
	case "oneof":
		reason = fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(e.Param(), " ", ", "))
	default:
		reason = fmt.Sprintf("%s is invalid", name)
	}
	return FieldError{Field: field, Reason: reason}
}
