package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	errors "github.com/frahmantamala/hrms-backend/internal"
)

type ValidatorFunc func(interface{}) *errors.AppError

// Presence is implemented by optional update fields. Absent fields are
// skipped and explicit nulls are only checked against NotNull.
type Presence interface {
	Present() bool
	IsNull() bool
	Interface() any
}

type FieldValidator struct {
	FieldName  string
	Value      interface{}
	Validators []ValidatorFunc
	notNull    bool
}

type ValidationBuilder struct {
	fields []*FieldValidator
}

func NewValidator() *ValidationBuilder {
	return &ValidationBuilder{
		fields: make([]*FieldValidator, 0),
	}
}

func (v *ValidationBuilder) Field(name string, value interface{}) *FieldValidator {
	fv := &FieldValidator{
		FieldName:  name,
		Value:      value,
		Validators: make([]ValidatorFunc, 0),
	}
	v.fields = append(v.fields, fv)
	return fv
}

func (fv *FieldValidator) fail(message string, code errors.ErrorCode) *errors.AppError {
	return errors.NewValidationFieldError(fv.FieldName, message, code)
}

func (fv *FieldValidator) Required() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		switch v := value.(type) {
		case nil:
			return fv.fail(fmt.Sprintf("%s is required", fv.FieldName), errors.ErrCodeRequired)
		case string:
			if v == "" {
				return fv.fail(fmt.Sprintf("%s is required", fv.FieldName), errors.ErrCodeRequired)
			}
		case int64:
			if v == 0 {
				return fv.fail(fmt.Sprintf("%s is required", fv.FieldName), errors.ErrCodeRequired)
			}
		case *string:
			if v == nil || *v == "" {
				return fv.fail(fmt.Sprintf("%s is required", fv.FieldName), errors.ErrCodeRequired)
			}
		}
		return nil
	})
	return fv
}

// NotNull rejects an explicit null for a column that cannot hold one.
func (fv *FieldValidator) NotNull() *FieldValidator {
	fv.notNull = true
	return fv
}

// NotBlank rejects strings made only of whitespace.
func (fv *FieldValidator) NotBlank() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		if v, ok := value.(string); ok && strings.TrimSpace(v) == "" {
			return fv.fail(fmt.Sprintf("%s must not be blank", fv.FieldName), errors.ErrCodeBlank)
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) MinInt(min int64, code errors.ErrorCode) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		switch v := value.(type) {
		case int64:
			if v < min {
				return fv.fail(fmt.Sprintf("%s must be at least %d", fv.FieldName, min), code)
			}
		case int:
			if int64(v) < min {
				return fv.fail(fmt.Sprintf("%s must be at least %d", fv.FieldName, min), code)
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) MaxLength(max int) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		if v, ok := value.(string); ok {
			if utf8.RuneCountInString(v) > max {
				message := fmt.Sprintf("%s must not exceed %d characters", fv.FieldName, max)
				return fv.fail(message, errors.ErrCodeTooLong)
			}
		}
		return nil
	})
	return fv
}

// Rules applies validator tags such as "email" or "oneof=a b" to the value.
func (fv *FieldValidator) Rules(tag string) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		if value == nil {
			return nil
		}
		if err := validate.Var(value, tag); err != nil {
			if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
				return fv.fail(describe(fv.FieldName, fieldErrs[0]))
			}
			return fv.fail(fmt.Sprintf("%s is invalid", fv.FieldName), errors.ErrCodeValidationFailed)
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) Custom(fn func(interface{}) *errors.AppError) *FieldValidator {
	fv.Validators = append(fv.Validators, fn)
	return fv
}

func (v *ValidationBuilder) Validate() *errors.AppError {
	var validationErrors []errors.ValidationError

	for _, field := range v.fields {
		value := field.Value
		if p, ok := value.(Presence); ok {
			if !p.Present() {
				continue
			}
			if p.IsNull() {
				if field.notNull {
					validationErrors = append(validationErrors, errors.ValidationError{
						Field:   field.FieldName,
						Message: fmt.Sprintf("%s cannot be null", field.FieldName),
						Code:    string(errors.ErrCodeNotNull),
					})
				}
				continue
			}
			value = p.Interface()
		}

		for _, check := range field.Validators {
			err := check(value)
			if err == nil {
				continue
			}
			if details, ok := err.Details.(errors.ValidationErrors); ok {
				validationErrors = append(validationErrors, details.Errors...)
			} else {
				validationErrors = append(validationErrors, errors.ValidationError{
					Field:   field.FieldName,
					Message: err.Message,
					Code:    string(err.Code),
				})
			}
		}
	}

	if len(validationErrors) > 0 {
		return errors.NewValidationErrors(validationErrors)
	}

	return nil
}
