package validator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var mobileRegex = regexp.MustCompile(`^[0-9]{10}$`)

// registerCustomRules wires the project-specific tags.
func registerCustomRules(v *validator.Validate) error {
	// "mobile": exactly 10 digits; spaces and dashes are tolerated on input.
	return v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		value = strings.NewReplacer(" ", "", "-", "").Replace(value)
		return mobileRegex.MatchString(value)
	})
}
