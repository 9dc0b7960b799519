package handler

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"lingua/backend/internal/service"
)

// requiredMessages are the user-facing messages for blank required fields,
// keyed by JSON field name.
var requiredMessages = map[string]string{
	"q":       "Text is required",
	"message": "Message is required",
	"word":    "Word is required",
}

// RequestValidator implements echo.Validator on top of go-playground
// validator. Failures are reported as *service.ValidationError.
type RequestValidator struct {
	validate *validator.Validate
}

// NewValidator creates a request validator with the notblank rule registered.
func NewValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// The rule set is fixed at startup; registration only fails on an empty tag.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return &RequestValidator{validate: v}
}

// Validate reports the first failing field.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	field := fieldErrs[0].Field()
	message, ok := requiredMessages[field]
	if !ok {
		message = field + " is required"
	}
	return &service.ValidationError{Field: field, Message: message}
}
