package pattern

import (
	"fmt"
	"regexp"
	"slices"
	"sync"
)

type compiled struct {
	def  Definition
	find *regexp.Regexp
	full *regexp.Regexp
}

// Catalog is an immutable set of compiled patterns keyed by Name.
type Catalog struct {
	entries map[Name]compiled
}

// NewCatalog compiles the given definitions. Names must be unique and non-empty.
func NewCatalog(defs ...Definition) (*Catalog, error) {
	c := &Catalog{entries: make(map[Name]compiled, len(defs))}

	for _, def := range defs {
		if def.Name == "" {
			return nil, ErrEmptyName
		}
		if _, exists := c.entries[def.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePattern, def.Name)
		}

		find, err := regexp.Compile(def.Expr)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPattern, def.Name, err)
		}
		full, err := regexp.Compile(`^(?:` + def.Expr + `)$`)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPattern, def.Name, err)
		}

		c.entries[def.Name] = compiled{def: def, find: find, full: full}
	}

	return c, nil
}

// MustCatalog is like NewCatalog but panics on error.
func MustCatalog(defs ...Definition) *Catalog {
	c, err := NewCatalog(defs...)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	return MustCatalog(builtin...)
})

// Default returns the built-in catalog. It is compiled once, on first use.
func Default() *Catalog {
	return defaultCatalog()
}

// Lookup returns the definition registered under name.
func (c *Catalog) Lookup(name Name) (Definition, bool) {
	e, ok := c.entries[name]
	return e.def, ok
}

// Names returns all registered names in sorted order.
func (c *Catalog) Names() []Name {
	names := make([]Name, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len reports the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

func (c *Catalog) get(name Name) (compiled, bool) {
	e, ok := c.entries[name]
	return e, ok
}
