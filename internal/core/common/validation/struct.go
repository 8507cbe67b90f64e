package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	errors "github.com/frahmantamala/hrms-backend/internal"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// Struct checks the `validate` tags of a request shape and reports every
// failing field by its JSON name.
func Struct(s interface{}) *errors.AppError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	ve := fromValidator(err)
	if len(ve) == 0 {
		return errors.NewValidationError("Validation failed", errors.ErrCodeValidationFailed).WithCause(err)
	}
	return errors.NewValidationErrors(ve)
}

func fromValidator(err error) []errors.ValidationError {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make([]errors.ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Field()
		if field == "" {
			field = "value"
		}
		message, code := describe(field, fe)
		out = append(out, errors.ValidationError{Field: field, Message: message, Code: string(code)})
	}
	return out
}

func describe(field string, fe validator.FieldError) (string, errors.ErrorCode) {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field), errors.ErrCodeRequired
	case "notblank":
		return fmt.Sprintf("%s must not be blank", field), errors.ErrCodeBlank
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must not exceed %s characters", field, fe.Param()), errors.ErrCodeTooLong
		}
		return fmt.Sprintf("%s must not exceed %s", field, fe.Param()), errors.ErrCodeOutOfRange
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param()), errors.ErrCodeOutOfRange
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param()), errors.ErrCodeOutOfRange
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param()), errors.ErrCodeOutOfRange
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field), errors.ErrCodeInvalidEmail
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", ")), errors.ErrCodeInvalidChoice
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field), errors.ErrCodeValidationFailed
	default:
		return fmt.Sprintf("%s is invalid", field), errors.ErrCodeValidationFailed
	}
}
