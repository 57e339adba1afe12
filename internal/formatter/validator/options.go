package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"dialtone/pkg/model"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	return fmt.Sprintf("validation failed: %d error(s)", len(v))
}

type OptionsValidator struct {
	validate *validator.Validate
}

func NewOptionsValidator() *OptionsValidator {
	return &OptionsValidator{
		validate: validator.New(),
	}
}

// Validate checks batch options. Style is deliberately not constrained:
// unrecognized styles fall back to digits in the core instead of failing
// the whole run.
func (v *OptionsValidator) Validate(opts *model.Options) error {
	if err := v.validate.Struct(opts); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *OptionsValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: fmt.Sprintf("failed %q validation", err.Tag()),
		})
	}

	return validationErrors
}
