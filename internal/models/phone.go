package models

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var nonDigit = regexp.MustCompile(`\D`)

// NormalizePhone strips every non-digit: "(819) 392-1234" -> "8193921234".
func NormalizePhone(phone string) string {
	if phone == "" {
		return phone
	}
	return nonDigit.ReplaceAllString(phone, "")
}

// DisplayPhone inserts dashes into a stored 10-digit phone for edit forms.
// Anything else is returned as stored.
func DisplayPhone(digits string) string {
	if len(digits) != 10 || NormalizePhone(digits) != digits {
		return digits
	}
	return digits[:3] + "-" + digits[3:6] + "-" + digits[6:]
}

// validPhone accepts digits plus common separators, with 10 to 15 digits.
func validPhone(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	bad := strings.IndexFunc(s, func(r rune) bool {
		return !strings.ContainsRune("0123456789 ()+-.", r)
	})
	if bad >= 0 {
		return false
	}
	n := len(NormalizePhone(s))
	return n >= 10 && n <= 15
}
