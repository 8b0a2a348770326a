package api

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator reporting fields by their json names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// FormatValidationErrors flattens validator errors into a field keyed map.
func FormatValidationErrors(err error) interface{} {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		out := make(map[string]string, len(validationErrors))
		for _, fieldError := range validationErrors {
			out[fieldError.Field()] = validationMessage(fieldError)
		}
		return out
	}
	return err.Error()
}

func validationMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "This field is required"
	case "gt":
		return "Value must be greater than " + fieldError.Param()
	case "gte":
		return "Value must be greater than or equal to " + fieldError.Param()
	case "lt":
		return "Value must be less than " + fieldError.Param()
	case "lte":
		return "Value must be less than or equal to " + fieldError.Param()
	case "min":
		return "Value must be at least " + fieldError.Param()
	case "max":
		return "Value must be at most " + fieldError.Param()
	case "oneof":
		return "Value must be one of " + fieldError.Param()
	default:
		return "Invalid value"
	}
}
