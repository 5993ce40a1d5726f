package validator

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator plugs go-playground/validator into echo's Validator seam
// so handlers can rely on the `validate:` tags carried by the request DTOs
// (login, meeting range, publish and credential bodies).
type RequestValidator struct {
	v *validator.Validate
}

// New creates the validator registered on the echo instance at startup
func New() *RequestValidator {
	return &RequestValidator{v: validator.New()}
}

// Validate runs struct-tag validation on a bound request body
func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.v.Struct(i)
}
