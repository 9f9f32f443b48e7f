package validator

import (
	"strings"
	"unicode/utf8"
)

// Message keys emitted by the string rules.
const (
	MessageBlank   = "blank"
	MessageTooLong = "too_long"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        MessageBlank,
			TranslationKey: TranslationKey(MessageBlank),
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MaxLenString validates that value has at most max characters.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        MessageTooLong,
			TranslationKey: TranslationKey(MessageTooLong),
			TranslationValues: map[string]any{
				"field": field,
				"count": max,
			},
		},
	}
}
