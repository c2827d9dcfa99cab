package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// One @ with non-empty local and domain parts, a dot in the domain,
	// no embedded whitespace.
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	// Permissive phone: at least 8 characters drawn from digits, spaces,
	// hyphens, plus and parentheses.
	phoneRegex = regexp.MustCompile(`^[\d\s\-+()]{8,}$`)
)

// RegisterValidators registers the contact-form validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("contact_email", ContactEmail)
	_ = v.RegisterValidation("contact_phone", ContactPhone)
}

// ContactEmail validates the basic local@domain.tld shape
func ContactEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

// ContactPhone validates a permissive international phone structure
func ContactPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // optional, pair with required where needed
	}
	return phoneRegex.MatchString(val)
}
