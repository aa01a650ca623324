// Package validator wires go-playground's struct validation into Echo.
package validator

import (
	domainerrors "goeco/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// echoValidator adapts go-playground/validator to Echo's Validator interface.
type echoValidator struct {
	validate *validator.Validate
}

// New builds the validator used for request DTOs.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks the struct tags on a bound request DTO. Failures surface
// as the domain's validation error so the central error handler renders a
// consistent 400 response.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
