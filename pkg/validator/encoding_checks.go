package validator

import (
	"encoding/base64"
	"encoding/json"
	"regexp"
	"strings"
)

// Only hex notations are accepted; named colors are not.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// IsJSON reports whether s is a well-formed JSON object or array.
// Scalars such as `42`, `"x"` or `null` are rejected.
func (v *Validator) IsJSON(s string) bool {
	body := strings.TrimLeft(s, " \t\r\n")
	if body == "" || (body[0] != '{' && body[0] != '[') {
		return false
	}
	return json.Valid([]byte(s))
}

// IsBase64 reports whether s decodes with the standard alphabet.
// Padding is optional, CR and LF are ignored, every other character outside
// the alphabet (spaces, '-', '_') rejects. The empty string is valid.
func (v *Validator) IsBase64(s string) bool {
	if _, err := base64.StdEncoding.DecodeString(s); err == nil {
		return true
	}
	_, err := base64.RawStdEncoding.DecodeString(s)
	return err == nil
}

// IsHexColor accepts #RGB, #RRGGBB and #AARRGGBB.
func (v *Validator) IsHexColor(s string) bool {
	return hexColorRegex.MatchString(s)
}
