// Package sanitizer holds small string normalizers applied to input before it
// is checked.
//
// Normalizers are plain func(string) string values and combine with Apply and
// Compose:
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.ToLower)
//	v := clean("  #FFF ")
//
// ForCheck picks the normalizer matching a check name. Nothing here removes
// characters that a check would reject, apart from spaces and dashes in card
// numbers.
package sanitizer
