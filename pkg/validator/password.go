package validator

// DefaultPasswordMinLength is the minimum password length used when none is configured.
const DefaultPasswordMinLength = 8

// PasswordRules returns the password policy for value: present, at least
// minLength characters, and containing a digit, an uppercase letter and a
// special character. A non-positive minLength falls back to
// DefaultPasswordMinLength.
func (v *Validator) PasswordRules(field, value string, minLength int) []Rule {
	if minLength <= 0 {
		minLength = DefaultPasswordMinLength
	}

	rules := []Rule{
		v.mustRule("required", field, value),
		minLengthRule(v, field, value, minLength),
	}
	for _, check := range []string{"has_digit", "has_uppercase", "has_special"} {
		rules = append(rules, v.mustRule(check, field, value))
	}
	return rules
}

// mustRule is for parameterless checks registered in simpleChecks.
func (v *Validator) mustRule(check, field, value string) Rule {
	rule, err := v.Rule(check, field, value)
	if err != nil {
		panic(err)
	}
	return rule
}
