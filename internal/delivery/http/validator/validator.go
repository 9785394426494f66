// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "infostore/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator so Echo can run struct
// validation on bound request bodies.
type Validator struct {
	validate *playground.Validate
}

// New creates the Echo validator.
func New() *Validator {
	return &Validator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Violations surface as the application's
// validation error so the error handler renders a 400 with details.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// ValidateStruct exposes the same check outside of Echo's binding flow,
// for batch payloads validated entry by entry.
func (v *Validator) ValidateStruct(i any) error {
	return v.Validate(i)
}
