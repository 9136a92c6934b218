package validator

import (
	"sync"

	"github.com/dmitrymomot/strvalid/pkg/pattern"
)

// Validator answers yes/no questions about the shape of a string.
// It holds only an immutable matcher and is safe for concurrent use.
type Validator struct {
	matcher *pattern.Matcher
}

// Option configures a Validator.
type Option func(*Validator)

// WithCatalog makes the validator match against c instead of the built-in catalog.
// A nil catalog is ignored.
func WithCatalog(c *pattern.Catalog) Option {
	return func(v *Validator) {
		if c != nil {
			v.matcher = pattern.NewMatcher(c)
		}
	}
}

// WithMatcher sets the matcher directly. A nil matcher is ignored.
func WithMatcher(m *pattern.Matcher) Option {
	return func(v *Validator) {
		if m != nil {
			v.matcher = m
		}
	}
}

// New creates a Validator over the built-in pattern catalog unless an option
// says otherwise.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	if v.matcher == nil {
		v.matcher = pattern.NewMatcher(pattern.Default())
	}
	return v
}

var std = sync.OnceValue(func() *Validator { return New() })

// Default returns a shared Validator over the built-in catalog.
func Default() *Validator {
	return std()
}

// Matcher exposes the pattern matcher used by v.
func (v *Validator) Matcher() *pattern.Matcher {
	return v.matcher
}
