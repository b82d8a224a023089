package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Request models carry gin's `binding` tags; the same validator instance checks
// them both when gin binds a request and when a service is called directly.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// StructValidator plugs the shared validator into gin (binding.Validator).
type StructValidator struct{}

func (StructValidator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}
	value := reflect.ValueOf(obj)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil
	}
	return validate.Struct(obj)
}

func (StructValidator) Engine() any {
	return validate
}

// ValidateStruct validates s and returns an ErrValidation error describing
// every failing field.
func ValidateStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		return TranslateValidationError(err)
	}
	return nil
}

// TranslateValidationError converts binding and validator failures into
// ErrValidation errors. Errors that already are validation errors pass through.
func TranslateValidationError(err error) error {
	if err == nil || errors.Is(err, ErrValidation) {
		return err
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, describeFieldError(fe))
		}
		return NewValidationError("%s", strings.Join(msgs, "; "))
	}
	return NewValidationError("malformed request: %v", err)
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
