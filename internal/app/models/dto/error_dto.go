package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the error payload shape expected by the front-end client:
// a single human-readable detail message.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(detail string) *ErrorResponse {
	return &ErrorResponse{Detail: detail}
}

// FormatBindingError renders a request binding error into a readable detail
// message, expanding validator field errors.
func FormatBindingError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return formatFieldError(verrs[0])
	}
	return "Invalid request body"
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "email":
		return e.Field() + " must be a valid email address"
	case "gte":
		return e.Field() + " must be greater than or equal to " + e.Param()
	case "lte":
		return e.Field() + " must be less than or equal to " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
