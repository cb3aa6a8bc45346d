package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Message renders a validation error as a single client-facing string.
func Message(err error) string {
	if errs := FormatValidationError(err); len(errs) > 0 {
		return strings.Join(errs, "; ")
	}
	return err.Error()
}

func FormatValidationError(err error) []string {
	var errs []string

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			tag := e.Tag()

			switch tag {
			case "required":
				errs = append(errs, fmt.Sprintf("%s is required", field))
			case "email":
				errs = append(errs, fmt.Sprintf("%s must be a valid email", field))
			case "min":
				errs = append(errs, fmt.Sprintf("%s must have minimum length %s", field, e.Param()))
			case "max":
				errs = append(errs, fmt.Sprintf("%s must have maximum length %s", field, e.Param()))
			case "oneof":
				errs = append(errs, fmt.Sprintf("%s must be one of [%s]", field, e.Param()))
			case "gt":
				errs = append(errs, fmt.Sprintf("%s must be greater than %s", field, e.Param()))
			case "gte":
				errs = append(errs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
			default:
				errs = append(errs, fmt.Sprintf("%s is invalid (%s)", field, tag))
			}
		}
	}
	return errs
}
