package pattern

// Matcher evaluates strings against the entries of a Catalog.
type Matcher struct {
	catalog *Catalog
}

// NewMatcher returns a matcher over c, or over the built-in catalog when c is nil.
func NewMatcher(c *Catalog) *Matcher {
	if c == nil {
		c = Default()
	}
	return &Matcher{catalog: c}
}

// Catalog returns the catalog the matcher reads from.
func (m *Matcher) Catalog() *Catalog {
	return m.catalog
}

// FullMatch reports whether the whole of s matches the named pattern.
// Unknown names never match.
func (m *Matcher) FullMatch(s string, name Name) bool {
	e, ok := m.catalog.get(name)
	if !ok {
		return false
	}
	return e.full.MatchString(s)
}

// Find reports whether any substring of s matches the named pattern.
// Unknown names never match.
func (m *Matcher) Find(s string, name Name) bool {
	e, ok := m.catalog.get(name)
	if !ok {
		return false
	}
	return e.find.MatchString(s)
}

// FullMatchPtr is FullMatch for an optional string; nil never matches.
func (m *Matcher) FullMatchPtr(s *string, name Name) bool {
	if s == nil {
		return false
	}
	return m.FullMatch(*s, name)
}

// FindPtr is Find for an optional string; nil never matches.
func (m *Matcher) FindPtr(s *string, name Name) bool {
	if s == nil {
		return false
	}
	return m.Find(*s, name)
}
