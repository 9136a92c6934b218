package card

import "errors"

var (
	// ErrNotDigits is returned by Info.Err when the number has a non-digit character.
	ErrNotDigits = errors.New("card number must contain only digits")

	// ErrInvalidLength is returned by Info.Err when the length is outside [MinLength, MaxLength].
	ErrInvalidLength = errors.New("card number length out of range")

	// ErrLeadingZeros is returned by Info.Err when the issuer prefix starts with zero.
	ErrLeadingZeros = errors.New("card number contains leading zeros")

	// ErrChecksum is returned by Info.Err when the Luhn checksum fails.
	ErrChecksum = errors.New("card number failed the Luhn checksum")
)
