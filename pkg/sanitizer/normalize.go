package sanitizer

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower lowercases s.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// NormalizeWhitespace collapses runs of whitespace into one space and trims the ends.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StripSeparators removes spaces and dashes.
// Other characters are kept so that a later check still sees them.
func StripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// NormalizeEmail trims and lowercases an address.
func NormalizeEmail(email string) string {
	return Apply(email, Trim, ToLower)
}

// NormalizeCreditCard removes the grouping people type into card numbers,
// as in "4111 1111-1111 1111".
func NormalizeCreditCard(number string) string {
	return StripSeparators(number)
}

// ForCheck returns the normalizer used for the named check.
// Passwords are returned unchanged; unknown checks are trimmed.
func ForCheck(check string) func(string) string {
	switch check {
	case "card", "credit_card":
		return NormalizeCreditCard
	case "email":
		return NormalizeEmail
	case "password":
		return func(s string) string { return s }
	case "hex_color", "md5", "hex", "mac":
		return Compose(Trim, ToLower)
	default:
		return Trim
	}
}
