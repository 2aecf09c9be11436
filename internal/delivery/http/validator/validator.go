// Package validator wires go-playground/validator into echo's Validator hook.
package validator

import (
	playgroundvalidator "github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *playgroundvalidator.Validate
}

// New creates a request validator for echo.
func New() *echoValidator {
	return &echoValidator{
		validate: playgroundvalidator.New(playgroundvalidator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
