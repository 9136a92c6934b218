package validator

import (
	"errors"
	"strings"
)

// ValidationError describes one failed rule. TranslationKey and
// TranslationValues let callers render Message in another language.
type ValidationError struct {
	Field             string         `json:"field"`
	Message           string         `json:"message"`
	TranslationKey    string         `json:"translation_key"`
	TranslationValues map[string]any `json:"translation_values,omitempty"`
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every failed rule of an Apply call.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, err := range ve {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(err.Field)
		b.WriteString(": ")
		b.WriteString(err.Message)
	}
	return b.String()
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	return len(ve.GetErrors(field)) > 0
}

// Get returns the messages recorded for field, in rule order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve.GetErrors(field) {
		messages = append(messages, err.Message)
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var out []ValidationError
	for _, err := range ve {
		if err.Field == field {
			out = append(out, err)
		}
	}
	return out
}

// Fields returns the distinct failed fields in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]struct{}, len(ve))
	for _, err := range ve {
		if _, ok := seen[err.Field]; ok {
			continue
		}
		seen[err.Field] = struct{}{}
		fields = append(fields, err.Field)
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs every rule and returns ValidationErrors for the failed ones,
// or nil when all pass.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			errs.Add(rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors returns the ValidationErrors wrapped in err, if any.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var verrs ValidationErrors
	return errors.As(err, &verrs)
}
