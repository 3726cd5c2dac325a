// Package validator adapts the shared struct validator to echo.
package validator

import (
	"stampshop/internal/validation"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validator *validation.Validator
}

// New creates the echo validator.
func New() *CustomValidator {
	return &CustomValidator{validator: validation.New()}
}

// Validate returns a *domainerrors.ValidationError describing every failed field.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}
