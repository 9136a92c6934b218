package pattern

import "errors"

var (
	// ErrEmptyName is returned when a definition has no name.
	ErrEmptyName = errors.New("pattern name is empty")

	// ErrDuplicatePattern is returned when two definitions share a name.
	ErrDuplicatePattern = errors.New("duplicate pattern name")

	// ErrInvalidPattern is returned when a definition does not compile.
	ErrInvalidPattern = errors.New("invalid pattern expression")
)
