package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strvalid/pkg/card"
	"github.com/dmitrymomot/strvalid/pkg/validator"
)

func TestChecks(t *testing.T) {
	t.Parallel()

	names := validator.Checks()
	assert.IsNonDecreasing(t, names)
	for _, name := range []string{"email", "phone", "json", "hex_color", "required", "min_length", "in", "credit_card"} {
		assert.Contains(t, names, name)
	}
}

func TestValidator_Rule_AllChecksBuild(t *testing.T) {
	t.Parallel()

	v := validator.Default()
	for _, name := range validator.Checks() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rule, err := v.Rule(name, "field", "value", "1")
			require.NoError(t, err)
			require.NotNil(t, rule.Check)
			assert.Equal(t, "field", rule.Error.Field)
			assert.NotEmpty(t, rule.Error.Message)
			assert.NotEmpty(t, rule.Error.TranslationKey)
			assert.Equal(t, "field", rule.Error.TranslationValues["field"])
		})
	}
}

func TestValidator_Rule_Errors(t *testing.T) {
	t.Parallel()

	v := validator.Default()
	tests := []struct {
		name   string
		check  string
		params []string
		want   error
	}{
		{"unknown check", "uuid", nil, validator.ErrUnknownCheck},
		{"min_length without length", "min_length", nil, validator.ErrMissingParam},
		{"max_length without length", "max_length", nil, validator.ErrMissingParam},
		{"min_length not a number", "min_length", []string{"eight"}, validator.ErrInvalidParam},
		{"max_length negative", "max_length", []string{"-1"}, validator.ErrInvalidParam},
		{"contains without seed", "contains", nil, validator.ErrMissingParam},
		{"in without values", "in", nil, validator.ErrMissingParam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := v.Rule(tt.check, "field", "value", tt.params...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidator_Rule_Outcome(t *testing.T) {
	t.Parallel()

	v := validator.Default()
	tests := []struct {
		check  string
		value  string
		params []string
		ok     bool
	}{
		{"email", "a@b.com", nil, true},
		{"email", "not-an-email", nil, false},
		{"integer", "-12", nil, true},
		{"json", "42", nil, false},
		{"required", "", nil, false},
		{"required", " ", nil, true},
		{"min_length", "abc", []string{"3"}, true},
		{"min_length", "abc", []string{" 4 "}, false},
		{"max_length", "abcd", []string{"3"}, false},
		{"contains", "Hello World", []string{"WORLD"}, true},
		{"in", "de", []string{"en", "de"}, true},
		{"in", "fr", []string{"en", "de"}, false},
		{"credit_card", "4111111111111111", nil, true},
		{"credit_card", "4111111111111112", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.check+" "+tt.value, func(t *testing.T) {
			t.Parallel()

			rule, err := v.Rule(tt.check, "f", tt.value, tt.params...)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, rule.Check())
		})
	}
}

func TestValidator_Rule_TranslationValues(t *testing.T) {
	t.Parallel()

	v := validator.Default()

	rule, err := v.Rule("min_length", "password", "abc", "8")
	require.NoError(t, err)
	assert.Equal(t, "validation.min_length", rule.Error.TranslationKey)
	assert.Equal(t, "must be at least 8 characters long", rule.Error.Message)
	assert.Equal(t, map[string]any{"field": "password", "min": 8}, rule.Error.TranslationValues)

	rule, err = v.Rule("in", "lang", "fr", "en", "de")
	require.NoError(t, err)
	assert.Equal(t, "validation.in_list", rule.Error.TranslationKey)
	assert.Equal(t, "en, de", rule.Error.TranslationValues["allowed_values"])
}

func TestValidator_Rule_CreditCardReason(t *testing.T) {
	t.Parallel()

	v := validator.Default()
	tests := []struct {
		number string
		reason card.Reason
	}{
		{"4111-1111-1111-1111", card.ReasonNotDigits},
		{"41111111111", card.ReasonLength},
		{"0411111111111111", card.ReasonLeadingZeros},
		{"4111111111111112", card.ReasonChecksum},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			t.Parallel()

			rule, err := v.Rule("credit_card", "card", tt.number)
			require.NoError(t, err)

			err = validator.Apply(rule)
			require.Error(t, err)
			got := validator.ExtractValidationErrors(err).GetErrors("card")
			require.Len(t, got, 1)
			assert.Equal(t, tt.reason.String(), got[0].Message)
			assert.Equal(t, tt.reason.TranslationKey(), got[0].TranslationKey)
		})
	}
}
