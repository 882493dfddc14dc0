package domain

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json field names rather than Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the struct-tag rules on s and converts the first
// failure into a ValidationError wrapping ErrValidation. A failing oneof rule
// on a status field wraps ErrInvalidStatus instead.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return NewValidationError("entity", "is invalid", ErrValidation)
	}

	fe := fieldErrs[0]
	cause := ErrValidation
	if fe.Tag() == "oneof" && fe.Field() == "status" {
		cause = ErrInvalidStatus
	}
	return NewValidationError(fe.Field(), "failed "+fe.Tag()+" rule", cause)
}
