package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// accountCodePattern matches chart codes like "1-1100": a single type digit,
// a dash, then four digits.
var accountCodePattern = regexp.MustCompile(`^[1-5]-\d{4}$`)

// RegisterCustomValidators attaches the domain-specific binding validators to
// gin's validator engine. Must be called once before routes are served.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("accountcode", func(fl validator.FieldLevel) bool {
		return accountCodePattern.MatchString(fl.Field().String())
	})
}
