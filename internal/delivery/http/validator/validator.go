// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
)

// Validator wraps a validator instance for Echo.
type Validator struct {
	validate *playground.Validate
}

// New creates an Echo-compatible request validator.
func New() *Validator {
	return &Validator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate runs struct validation on a bound request.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
