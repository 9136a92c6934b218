package validator_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strvalid/pkg/card"
	"github.com/dmitrymomot/strvalid/pkg/pattern"
	"github.com/dmitrymomot/strvalid/pkg/validator"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	assert.Same(t, validator.Default(), validator.Default())
	assert.Same(t, pattern.Default(), validator.Default().Matcher().Catalog())
}

func TestNew_Options(t *testing.T) {
	t.Parallel()

	t.Run("custom catalog", func(t *testing.T) {
		t.Parallel()

		c, err := pattern.NewCatalog(pattern.Definition{Name: pattern.Email, Expr: `^[a-z]+@corp\.example$`})
		require.NoError(t, err)

		v := validator.New(validator.WithCatalog(c))
		assert.True(t, v.IsEmail("jane@corp.example"))
		assert.False(t, v.IsEmail("jane@gmail.com"))
		// Names missing from the catalog never match.
		assert.False(t, v.IsPinCode("560001"))
	})

	t.Run("matcher", func(t *testing.T) {
		t.Parallel()

		m := pattern.NewMatcher(nil)
		v := validator.New(validator.WithMatcher(m))
		assert.Same(t, m, v.Matcher())
	})

	t.Run("nil options are ignored", func(t *testing.T) {
		t.Parallel()

		v := validator.New(validator.WithCatalog(nil), validator.WithMatcher(nil))
		require.NotNil(t, v.Matcher())
		assert.True(t, v.IsPinCode("560001"))
	})
}

func TestValidator_CreditCard(t *testing.T) {
	t.Parallel()

	v := validator.Default()

	assert.True(t, v.ValidateCreditCard("4111111111111111"))
	assert.False(t, v.ValidateCreditCard("4111111111111112"))

	info := v.CreditCardInfo("5555555555554444")
	assert.Equal(t, card.Info{
		Number: "5555555555554444",
		Issuer: card.Mastercard,
		Valid:  true,
		Reason: card.ReasonNone,
	}, info)
}

func TestValidator_ConcurrentUse(t *testing.T) {
	t.Parallel()

	v := validator.Default()
	var wg sync.WaitGroup
	results := make([][4]bool, 32)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = [4]bool{
				v.IsEmail("a@b.com"),
				v.IsIPAddress("10.0.0.1"),
				v.ValidateCreditCard("4111111111111111"),
				v.IsJSON("[1]"),
			}
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, [4]bool{true, true, true, true}, r)
	}
}
