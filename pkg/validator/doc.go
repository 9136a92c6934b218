// Package validator is the public surface for string checks: one method per
// question on a stateless Validator, plus the Rule helpers used to collect
// field-level failures with translation metadata.
//
// # Checks
//
// A Validator delegates pattern checks to the pattern package and card checks
// to the card package. Every check is a total function: malformed input is a
// false result, never an error or a panic.
//
//	v := validator.Default()
//	v.IsEmail("a@b.com")                // true
//	v.IsInteger("-42")                  // true
//	v.IsJSON("42")                      // false, only objects and arrays
//	info := v.CreditCardInfo("4111111111111111")
//
// Fully anchored patterns (email, phone, pincode, MAC, decimal, alpha,
// alphanumeric, numeric) must match the whole string. IP address, hexadecimal
// and MD5 checks, and the Has* probes, succeed when any part of the string
// matches.
//
// Two checks narrow or fix behavior that depends on a platform elsewhere:
// IsHexColor accepts only #RGB, #RRGGBB and #AARRGGBB (no color names), and
// IsBase64 uses the standard alphabet with optional padding, ignoring CR and
// LF.
//
// # Rules
//
// Rule pairs a Check with a ValidationError. Apply runs a set of rules and
// returns ValidationErrors, which implements error:
//
//	rule, err := v.Rule("min_length", "password", input, "8")
//	if err != nil {
//	    // unknown check or bad parameter
//	}
//	if err := validator.Apply(append(v.PasswordRules("password", input, 8), rule)...); err != nil {
//	    for _, e := range validator.ExtractValidationErrors(err) {
//	        // e.TranslationKey, e.TranslationValues
//	    }
//	}
//
// Checks lists every name accepted by Validator.Rule.
package validator
