// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	govalidator "github.com/go-playground/validator/v10"
)

// Validator wraps a validator instance for Echo.
type Validator struct {
	validate *govalidator.Validate
}

// New creates the request validator.
func New() *Validator {
	return &Validator{validate: govalidator.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
