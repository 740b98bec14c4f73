package validator

import (
	"strconv"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules adds platform-specific validation tags.
func registerCustomRules(v *validator.Validate) error {
	// expiry_month: "01".."12", two digits as printed on a card.
	return v.RegisterValidation("expiry_month", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) != 2 {
			return false
		}
		month, err := strconv.Atoi(s)
		if err != nil {
			return false
		}
		return month >= 1 && month <= 12
	})
}
