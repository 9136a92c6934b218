package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/strvalid/pkg/validator"
)

type formatCase struct {
	name    string
	check   func(v *validator.Validator, s string) bool
	valid   []string
	invalid []string
}

func TestValidator_FormatChecks(t *testing.T) {
	t.Parallel()

	tests := []formatCase{
		{
			name:    "email",
			check:   (*validator.Validator).IsEmail,
			valid:   []string{"a@b.com", "john.doe@example.co.uk", "x+tag@mail-server.org", "o'neil@example.com"},
			invalid: []string{"", "plain", "user@domain", "@example.com", ".a@b.com", "a.@b.com", "a b@c.com", "a@b.com extra"},
		},
		{
			name:    "phone",
			check:   (*validator.Validator).IsPhoneNumber,
			valid:   []string{"212-555-0100", "999-000-0000"},
			invalid: []string{"", "112-555-0100", "2125550100", "212-555-010", "(212) 555-0100", "212-555-01000"},
		},
		{
			name:    "pincode",
			check:   (*validator.Validator).IsPinCode,
			valid:   []string{"560001", "000000"},
			invalid: []string{"", "56001", "5600011", "56000a"},
		},
		{
			name:    "alphanumeric",
			check:   (*validator.Validator).IsAlphanumeric,
			valid:   []string{"abc", "ABC_123", "_"},
			invalid: []string{"", "abc-123", "a b", "café"},
		},
		{
			name:    "alpha",
			check:   (*validator.Validator).IsAlpha,
			valid:   []string{"abc", "XyZ"},
			invalid: []string{"", "abc1", "a b", "é"},
		},
		{
			name:    "numeric",
			check:   (*validator.Validator).IsNumeric,
			valid:   []string{"0", "0123456789"},
			invalid: []string{"", "12a", "-1", "1.5"},
		},
		{
			name:    "decimal",
			check:   (*validator.Validator).IsDecimal,
			valid:   []string{"1.5", ".5", "5.", "5", "", "."},
			invalid: []string{"1.2.3", "-1.5", "1,5", "abc"},
		},
		{
			name:    "mac",
			check:   (*validator.Validator).IsMACAddress,
			valid:   []string{"00:1A:2B:3C:4D:5E", "00-1a-2b-3c-4d-5e"},
			invalid: []string{"", "00:1A:2B:3C:4D", "001A2B3C4D5E", "00:1A:2B:3C:4D:5G"},
		},
		{
			name:    "ip",
			check:   (*validator.Validator).IsIPAddress,
			valid:   []string{"192.168.0.1", "999.1.1.1", "host 10.0.0.1 is up", "2001:0db8:85a3:0000:0000:8a2e:0370:7334"},
			invalid: []string{"", "localhost", "::1", "1.2.3"},
		},
		{
			name:    "hexadecimal",
			check:   (*validator.Validator).IsHexadecimal,
			valid:   []string{"ff", "zz9", "DEADBEEF"},
			invalid: []string{"", "xyz", "ghij"},
		},
		{
			name:    "md5",
			check:   (*validator.Validator).IsMD5,
			valid:   []string{"d41d8cd98f00b204e9800998ecf8427e", "xx" + "D41D8CD98F00B204E9800998ECF8427E" + "yy"},
			invalid: []string{"", "d41d8cd98f00b204", "g41d8cd98f00b204e9800998ecf8427"},
		},
		{
			name:    "has digit",
			check:   (*validator.Validator).HasDigit,
			valid:   []string{"abc1", "9"},
			invalid: []string{"", "abc"},
		},
		{
			name:    "has uppercase",
			check:   (*validator.Validator).HasUppercase,
			valid:   []string{"abC", "Z"},
			invalid: []string{"", "abc", "É"},
		},
		{
			name:    "has lowercase",
			check:   (*validator.Validator).HasLowercase,
			valid:   []string{"ABc", "z"},
			invalid: []string{"", "ABC", "é"},
		},
		{
			name:    "has letter",
			check:   (*validator.Validator).HasLetter,
			valid:   []string{"1a", "Z9"},
			invalid: []string{"", "123!", "日本"},
		},
		{
			name:    "has special",
			check:   (*validator.Validator).HasSpecialCharacter,
			valid:   []string{"abc!", "pass#word", "é"},
			invalid: []string{"", "abc 123", "a\tb\nc", "\v\f\r"},
		},
	}

	v := validator.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, s := range tt.valid {
				assert.True(t, tt.check(v, s), "expected %q to pass", s)
			}
			for _, s := range tt.invalid {
				assert.False(t, tt.check(v, s), "expected %q to fail", s)
			}
		})
	}
}
