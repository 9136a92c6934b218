package validator

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

type simpleCheck struct {
	message string
	key     string
	check   func(v *Validator, s string) bool
}

// Checks that take no parameters, keyed by their public name.
var simpleChecks = map[string]simpleCheck{
	"email":         {"must be a valid email address", "validation.email", (*Validator).IsEmail},
	"phone":         {"must be a phone number like 212-555-0100", "validation.phone", (*Validator).IsPhoneNumber},
	"pincode":       {"must be a six digit pincode", "validation.pincode", (*Validator).IsPinCode},
	"alphanumeric":  {"must contain only letters, digits and underscores", "validation.alphanumeric", (*Validator).IsAlphanumeric},
	"alpha":         {"must contain only letters", "validation.alpha", (*Validator).IsAlpha},
	"numeric":       {"must contain only digits", "validation.numeric", (*Validator).IsNumeric},
	"decimal":       {"must be a decimal number", "validation.decimal", (*Validator).IsDecimal},
	"mac":           {"must be a valid MAC address", "validation.mac", (*Validator).IsMACAddress},
	"ip":            {"must contain an IP address", "validation.ip", (*Validator).IsIPAddress},
	"hex":           {"must contain hexadecimal digits", "validation.hex", (*Validator).IsHexadecimal},
	"md5":           {"must contain an MD5 hash", "validation.md5", (*Validator).IsMD5},
	"integer":       {"must be an integer", "validation.integer", (*Validator).IsInteger},
	"boolean":       {"must be true or false", "validation.boolean", (*Validator).IsBoolean},
	"json":          {"must be a JSON object or array", "validation.json", (*Validator).IsJSON},
	"base64":        {"must be base64 encoded", "validation.base64", (*Validator).IsBase64},
	"hex_color":     {"must be a hex color such as #fff or #ff0000", "validation.hex_color", (*Validator).IsHexColor},
	"lowercase":     {"must be lowercase", "validation.lowercase", (*Validator).IsLowercase},
	"uppercase":     {"must be uppercase", "validation.uppercase", (*Validator).IsUppercase},
	"has_digit":     {"must contain at least one digit", "validation.has_digit", (*Validator).HasDigit},
	"has_letter":    {"must contain at least one letter", "validation.has_letter", (*Validator).HasLetter},
	"has_lowercase": {"must contain at least one lowercase letter", "validation.has_lowercase", (*Validator).HasLowercase},
	"has_uppercase": {"must contain at least one uppercase letter", "validation.has_uppercase", (*Validator).HasUppercase},
	"has_special":   {"must contain at least one special character", "validation.has_special", (*Validator).HasSpecialCharacter},
	"required": {"field is required", "validation.required", func(v *Validator, s string) bool {
		return !v.IsEmpty(s)
	}},
}

type ruleFunc func(v *Validator, field, value string, params []string) (Rule, error)

// Checks that read parameters or carry a computed message.
var paramChecks = map[string]ruleFunc{
	"min_length":  minLengthCheck,
	"max_length":  maxLengthCheck,
	"contains":    containsCheck,
	"in":          inCheck,
	"credit_card": creditCardCheck,
}

// Checks returns every check name accepted by Rule, sorted.
func Checks() []string {
	names := make([]string, 0, len(simpleChecks)+len(paramChecks))
	for name := range simpleChecks {
		names = append(names, name)
	}
	for name := range paramChecks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Rule builds a Rule for the named check applied to value.
//
//	rule, err := v.Rule("min_length", "password", input, "8")
//
// It fails with ErrUnknownCheck, ErrMissingParam or ErrInvalidParam; a value
// that does not pass is never an error here, it is reported by Apply.
func (v *Validator) Rule(check, field, value string, params ...string) (Rule, error) {
	if sc, ok := simpleChecks[check]; ok {
		return newRule(field, sc.message, sc.key, nil, func() bool {
			return sc.check(v, value)
		}), nil
	}
	if fn, ok := paramChecks[check]; ok {
		return fn(v, field, value, params)
	}
	return Rule{}, fmt.Errorf("%w: %q", ErrUnknownCheck, check)
}

func newRule(field, message, key string, values map[string]any, check func() bool) Rule {
	translationValues := map[string]any{"field": field}
	for k, val := range values {
		translationValues[k] = val
	}
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:             field,
			Message:           message,
			TranslationKey:    key,
			TranslationValues: translationValues,
		},
	}
}

func intParam(check string, params []string) (int, error) {
	if len(params) == 0 {
		return 0, fmt.Errorf("%w: %s needs a length", ErrMissingParam, check)
	}
	n, err := strconv.Atoi(strings.TrimSpace(params[0]))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s length %q", ErrInvalidParam, check, params[0])
	}
	return n, nil
}

func minLengthRule(v *Validator, field, value string, n int) Rule {
	return newRule(field,
		fmt.Sprintf("must be at least %d characters long", n),
		"validation.min_length",
		map[string]any{"min": n},
		func() bool { return v.IsAtLeastLength(value, n) },
	)
}

func minLengthCheck(v *Validator, field, value string, params []string) (Rule, error) {
	n, err := intParam("min_length", params)
	if err != nil {
		return Rule{}, err
	}
	return minLengthRule(v, field, value, n), nil
}

func maxLengthCheck(v *Validator, field, value string, params []string) (Rule, error) {
	n, err := intParam("max_length", params)
	if err != nil {
		return Rule{}, err
	}
	return newRule(field,
		fmt.Sprintf("must be at most %d characters long", n),
		"validation.max_length",
		map[string]any{"max": n},
		func() bool { return v.IsAtMostLength(value, n) },
	), nil
}

func containsCheck(v *Validator, field, value string, params []string) (Rule, error) {
	if len(params) == 0 {
		return Rule{}, fmt.Errorf("%w: contains needs a seed", ErrMissingParam)
	}
	seed := params[0]
	return newRule(field,
		fmt.Sprintf("must contain %q", seed),
		"validation.contains",
		map[string]any{"seed": seed},
		func() bool { return v.ContainsSubstring(value, seed) },
	), nil
}

func inCheck(v *Validator, field, value string, params []string) (Rule, error) {
	if len(params) == 0 {
		return Rule{}, fmt.Errorf("%w: in needs at least one allowed value", ErrMissingParam)
	}
	allowed := slices.Clone(params)
	return newRule(field,
		"must be one of: "+strings.Join(allowed, ", "),
		"validation.in_list",
		map[string]any{"allowed_values": strings.Join(allowed, ", ")},
		func() bool { return v.IsIn(value, allowed...) },
	), nil
}

// creditCardCheck reports the card diagnostic as the rule message so the
// first failed card check is what the caller sees.
func creditCardCheck(v *Validator, field, value string, _ []string) (Rule, error) {
	info := v.CreditCardInfo(value)
	return newRule(field,
		info.Reason.String(),
		info.Reason.TranslationKey(),
		map[string]any{"issuer": info.Issuer.String()},
		func() bool { return info.Valid },
	), nil
}
