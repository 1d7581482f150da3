// Package validator wires go-playground/validator into Echo's request
// validation hook.
package validator

import (
	domainerrors "rentora/internal/domain/errors"

	validatorlib "github.com/go-playground/validator/v10"
)

// EchoValidator adapts a validator.Validate instance to echo.Validator.
type EchoValidator struct {
	validate *validatorlib.Validate
}

// New creates the Echo request validator.
func New() *EchoValidator {
	return &EchoValidator{
		validate: validatorlib.New(validatorlib.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
