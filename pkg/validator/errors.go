package validator

import "errors"

var (
	// ErrUnknownCheck is returned when a rule is requested for an unregistered check name.
	ErrUnknownCheck = errors.New("unknown check")

	// ErrMissingParam is returned when a check needs a parameter that was not given.
	ErrMissingParam = errors.New("missing check parameter")

	// ErrInvalidParam is returned when a check parameter cannot be parsed.
	ErrInvalidParam = errors.New("invalid check parameter")
)
