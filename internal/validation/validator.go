// Package validation owns the request payload shapes and their validation
// rules, kept apart from transport handlers so the rules are testable on
// their own.
package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns the configured validator shared by the HTTP handlers.
func New() *validatorv10.Validate {
	return validatorv10.New()
}

// ErrorsToMap flattens validator errors into a field -> message map for
// problem responses.
func ErrorsToMap(err error) map[string]string {
	out := map[string]string{}
	var ve validatorv10.ValidationErrors
	if ok := AsValidationErrors(err, &ve); ok {
		for _, fe := range ve {
			out[fe.Field()] = messageFor(fe)
		}
		return out
	}
	out["request"] = err.Error()
	return out
}

// AsValidationErrors reports whether err carries validator field errors.
func AsValidationErrors(err error, target *validatorv10.ValidationErrors) bool {
	ve, ok := err.(validatorv10.ValidationErrors)
	if !ok {
		return false
	}
	*target = ve
	return true
}

func messageFor(fe validatorv10.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "invalid value"
	}
}
