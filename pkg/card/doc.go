// Package card validates and classifies payment card numbers.
//
// Validation runs one ordered sequence of checks and stops at the first
// failure:
//
//  1. the number is made of ASCII digits only
//  2. its length is between MinLength and MaxLength inclusive
//  3. the six digit issuer prefix has no leading zero
//  4. the Luhn checksum holds
//
// The failing step is reported as a Reason; a number that passes every step
// carries ReasonNone. Issuer classification is independent of validity and
// looks only at the six digit prefix:
//
//	info := card.Classify("4111111111111111")
//	// info.Issuer == card.Visa, info.Valid == true, info.Reason == card.ReasonNone
//
// All functions are pure and safe for concurrent use.
package card
