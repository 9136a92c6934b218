package card

import "strings"

const (
	// MinLength and MaxLength bound the accepted number of digits, inclusive.
	MinLength = 12
	MaxLength = 19

	// PrefixLength is the number of leading digits used for issuer lookup.
	PrefixLength = 6
)

// Reason is the diagnostic for the first failed check.
type Reason string

const (
	ReasonNone         Reason = "NA"
	ReasonNotDigits    Reason = "number should be composed of only digits"
	ReasonLength       Reason = "card number should be between 12 and 19 digits long"
	ReasonLeadingZeros Reason = "number contains leading zeros"
	ReasonChecksum     Reason = "number did not pass the Luhn checksum"
)

func (r Reason) String() string {
	return string(r)
}

// TranslationKey returns the message key used to localize the reason.
func (r Reason) TranslationKey() string {
	switch r {
	case ReasonNotDigits:
		return "card.not_digits"
	case ReasonLength:
		return "card.length"
	case ReasonLeadingZeros:
		return "card.leading_zeros"
	case ReasonChecksum:
		return "card.checksum"
	default:
		return "card.none"
	}
}

// Err maps the reason to its sentinel error; ReasonNone maps to nil.
func (r Reason) Err() error {
	switch r {
	case ReasonNotDigits:
		return ErrNotDigits
	case ReasonLength:
		return ErrInvalidLength
	case ReasonLeadingZeros:
		return ErrLeadingZeros
	case ReasonChecksum:
		return ErrChecksum
	default:
		return nil
	}
}

// Info is the result of classifying a card number.
// Valid is true exactly when Reason is ReasonNone.
type Info struct {
	Number string `json:"card_number"`
	Issuer Issuer `json:"card_issuer"`
	Valid  bool   `json:"is_valid"`
	Reason Reason `json:"error"`
}

// Err returns nil for a valid card, otherwise the sentinel error for Reason.
func (i Info) Err() error {
	return i.Reason.Err()
}

// Classify validates number and resolves its issuer.
func Classify(number string) Info {
	reason := check(number)
	return Info{
		Number: number,
		Issuer: IssuerOf(number),
		Valid:  reason == ReasonNone,
		Reason: reason,
	}
}

// Validate reports whether number passes every check.
func Validate(number string) bool {
	return check(number) == ReasonNone
}

func check(number string) Reason {
	if !isDigits(number) {
		return ReasonNotDigits
	}
	if len(number) < MinLength || len(number) > MaxLength {
		return ReasonLength
	}
	if _, ok := issuerPrefix(number); !ok {
		return ReasonLeadingZeros
	}
	if !luhn(number) {
		return ReasonChecksum
	}
	return ReasonNone
}

// Luhn reports whether digits satisfies the Luhn checksum. Any non-digit
// character, or an empty string, fails.
func Luhn(digits string) bool {
	return isDigits(digits) && luhn(digits)
}

// luhn expects ASCII digits only.
func luhn(digits string) bool {
	sum := 0
	double := false

	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	return sum%10 == 0
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Mask keeps the issuer prefix and the last four digits and replaces the rest
// with '*'. Numbers of ten characters or fewer are masked completely.
func Mask(number string) string {
	n := len(number)
	if n <= PrefixLength+4 {
		return strings.Repeat("*", n)
	}

	var b strings.Builder
	b.Grow(n)
	b.WriteString(number[:PrefixLength])
	b.WriteString(strings.Repeat("*", n-PrefixLength-4))
	b.WriteString(number[n-4:])
	return b.String()
}
