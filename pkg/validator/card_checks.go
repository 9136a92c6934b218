package validator

import "github.com/dmitrymomot/strvalid/pkg/card"

// ValidateCreditCard reports whether s is a structurally valid card number
// with a correct Luhn checksum.
func (v *Validator) ValidateCreditCard(s string) bool {
	return card.Validate(s)
}

// CreditCardInfo returns the issuer, validity and diagnostic for s.
func (v *Validator) CreditCardInfo(s string) card.Info {
	return card.Classify(s)
}
