package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/strvalid/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("runs transforms in order", func(t *testing.T) {
		t.Parallel()

		got := sanitizer.Apply("  Hello  ", sanitizer.Trim, sanitizer.ToLower, func(s string) string {
			return s + "!"
		})
		assert.Equal(t, "hello!", got)
	})

	t.Run("no transforms", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "  x ", sanitizer.Apply("  x "))
	})

	t.Run("generic", func(t *testing.T) {
		t.Parallel()

		double := func(n int) int { return n * 2 }
		assert.Equal(t, 12, sanitizer.Apply(3, double, double))
	})
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.NormalizeWhitespace, strings.ToUpper)
	assert.Equal(t, "A B C", clean(" a \t b\n\nc "))
	assert.Equal(t, "X", clean("x"))
	assert.Equal(t, "", clean("   "))
}

func TestStripSeparators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "spaces", in: "4111 1111 1111 1111", want: "4111111111111111"},
		{name: "dashes", in: "4111-1111-1111-1111", want: "4111111111111111"},
		{name: "mixed whitespace", in: " 4111\t1111\n1111 1111 ", want: "4111111111111111"},
		{name: "letters kept", in: "4111 abcd", want: "4111abcd"},
		{name: "dots kept", in: "4111.1111", want: "4111.1111"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.StripSeparators(tt.in))
		})
	}
}

func TestForCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		check string
		in    string
		want  string
	}{
		{check: "card", in: " 5555-5555 5555-4444 ", want: "5555555555554444"},
		{check: "credit_card", in: "4111 1111 1111 1111", want: "4111111111111111"},
		{check: "email", in: "  John.Doe@Example.COM ", want: "john.doe@example.com"},
		{check: "password", in: "  Secr3t! ", want: "  Secr3t! "},
		{check: "hex_color", in: " #FFF ", want: "#fff"},
		{check: "mac", in: "AA:BB:CC:DD:EE:FF", want: "aa:bb:cc:dd:ee:ff"},
		{check: "integer", in: "  42 ", want: "42"},
		{check: "min_length", in: " a b ", want: "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.check, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.ForCheck(tt.check)(tt.in))
		})
	}
}
