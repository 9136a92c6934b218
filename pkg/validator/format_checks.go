package validator

import "github.com/dmitrymomot/strvalid/pkg/pattern"

func (v *Validator) IsEmail(s string) bool {
	return v.matcher.FullMatch(s, pattern.Email)
}

// IsPhoneNumber accepts US numbers written as NNN-NNN-NNNN with an area code
// starting with 2-9.
func (v *Validator) IsPhoneNumber(s string) bool {
	return v.matcher.FullMatch(s, pattern.Phone)
}

// IsPinCode accepts exactly six digits.
func (v *Validator) IsPinCode(s string) bool {
	return v.matcher.FullMatch(s, pattern.Pincode)
}

// IsAlphanumeric accepts ASCII letters, digits and underscore.
func (v *Validator) IsAlphanumeric(s string) bool {
	return v.matcher.FullMatch(s, pattern.Alphanumeric)
}

func (v *Validator) IsAlpha(s string) bool {
	return v.matcher.FullMatch(s, pattern.Alpha)
}

func (v *Validator) IsNumeric(s string) bool {
	return v.matcher.FullMatch(s, pattern.Numeric)
}

// IsDecimal accepts digits with at most one dot, such as "1.5", ".5" and "5".
// The empty string and a lone "." are accepted as well.
func (v *Validator) IsDecimal(s string) bool {
	return v.matcher.FullMatch(s, pattern.Decimal)
}

// IsMACAddress accepts six hex octets separated by ':' or '-'.
func (v *Validator) IsMACAddress(s string) bool {
	return v.matcher.FullMatch(s, pattern.MACAddress)
}

// IsIPAddress reports whether s contains an uncompressed IPv6 address or an
// IPv4 shaped address. Octet values are not range checked.
func (v *Validator) IsIPAddress(s string) bool {
	return v.matcher.Find(s, pattern.IPAddress)
}

// IsHexadecimal reports whether s contains at least one hex digit.
func (v *Validator) IsHexadecimal(s string) bool {
	return v.matcher.Find(s, pattern.Hexadecimal)
}

// IsMD5 reports whether s contains a run of 32 hex characters.
// Longer strings that contain such a run pass too.
func (v *Validator) IsMD5(s string) bool {
	return v.matcher.Find(s, pattern.MD5)
}

func (v *Validator) HasDigit(s string) bool {
	return v.matcher.Find(s, pattern.DigitPresent)
}

func (v *Validator) HasUppercase(s string) bool {
	return v.matcher.Find(s, pattern.UpperPresent)
}

func (v *Validator) HasLowercase(s string) bool {
	return v.matcher.Find(s, pattern.LowerPresent)
}

func (v *Validator) HasLetter(s string) bool {
	return v.matcher.Find(s, pattern.LetterPresent)
}

// HasSpecialCharacter reports whether s has a character that is neither an
// ASCII letter, an ASCII digit nor whitespace.
func (v *Validator) HasSpecialCharacter(s string) bool {
	return v.matcher.Find(s, pattern.SpecialPresent)
}
