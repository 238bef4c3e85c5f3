package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// EmailShapeRegex matches local@domain.tld shaped addresses: runs of
// non-whitespace, non-@ characters around a literal @, with at least one
// dot in the domain part. Deliberately looser than RFC 5322: it accepts
// consecutive dots and does not check TLD length.
var EmailShapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MinMessageLength is the minimum trimmed length of the message body.
const MinMessageLength = 10

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", NotBlank)
	_ = v.RegisterValidation("email_shape", EmailShape)
}

// NotBlank validates that a string is non-empty after trimming whitespace.
// The builtin "required" tag lets whitespace-only values through.
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// EmailShape validates the address shape of a field against EmailShapeRegex.
func EmailShape(fl validator.FieldLevel) bool {
	val := strings.TrimSpace(fl.Field().String())
	if val == "" {
		return true // Blank is notblank's concern, not a shape violation
	}
	return EmailShapeRegex.MatchString(val)
}

// ValidEmail reports whether the trimmed address has the local@domain.tld
// shape. Shared by the form client and the relay so both sides agree.
func ValidEmail(address string) bool {
	return EmailShapeRegex.MatchString(strings.TrimSpace(address))
}
