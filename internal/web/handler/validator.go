package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationMessage converts validator errors into one human-readable message
// string. Internal schema-error structures never leak to clients, so the
// external contract stays stable across validator versions.
func ValidationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Invalid request data"
	}

	messages := make([]string, 0, len(validationErrors))
	for _, ve := range validationErrors {
		messages = append(messages, fieldMessage(ve))
	}

	return strings.Join(messages, "; ")
}

func fieldMessage(ve validator.FieldError) string {
	field := strings.ToLower(ve.Field())

	switch ve.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' is required", field)
	case "email":
		return fmt.Sprintf("Field '%s' must be a valid email address", field)
	case "min":
		return fmt.Sprintf("Field '%s' must be at least %s characters", field, ve.Param())
	default:
		return fmt.Sprintf("Field '%s' failed validation tag '%s'", field, ve.Tag())
	}
}
