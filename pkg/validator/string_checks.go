package validator

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// ContainsSubstring reports whether s contains seed, ignoring case.
// seed is literal text, not a pattern.
func (v *Validator) ContainsSubstring(s, seed string) bool {
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(seed)).MatchString(s)
}

// IsBoolean reports whether s is "true" or "false" in any letter case.
func (v *Validator) IsBoolean(s string) bool {
	lower := strings.ToLower(s)
	return lower == "true" || lower == "false"
}

// IsAtLeastLength reports whether s has at least n characters.
func (v *Validator) IsAtLeastLength(s string, n int) bool {
	return utf8.RuneCountInString(s) >= n
}

// IsAtMostLength reports whether s has at most n characters.
func (v *Validator) IsAtMostLength(s string, n int) bool {
	return utf8.RuneCountInString(s) <= n
}

// IsLowercase reports whether s is unchanged by lower-casing.
func (v *Validator) IsLowercase(s string) bool {
	return s == strings.ToLower(s)
}

// IsUppercase reports whether s is unchanged by upper-casing.
func (v *Validator) IsUppercase(s string) bool {
	return s == strings.ToUpper(s)
}

func (v *Validator) IsEmpty(s string) bool {
	return len(s) == 0
}

// IsEmptyPtr treats a nil string as empty.
func (v *Validator) IsEmptyPtr(s *string) bool {
	return s == nil || len(*s) == 0
}

// IsInteger reports whether s is an optional '-' followed by one or more
// ASCII digits. A leading '+', separators and surrounding spaces are rejected.
func (v *Validator) IsInteger(s string) bool {
	if s == "" {
		return false
	}

	i := 0
	if s[0] == '-' {
		if len(s) == 1 {
			return false
		}
		i = 1
	}

	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsIn reports whether s equals one of values exactly.
func (v *Validator) IsIn(s string, values ...string) bool {
	return slices.Contains(values, s)
}
