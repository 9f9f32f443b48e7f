package validator

import "github.com/mailvalid/mailvalid/pkg/emailsyntax"

// MessageInvalidEmail is the message key reported by the email rules.
const MessageInvalidEmail = emailsyntax.ReasonInvalidEmail

// ValidEmail validates value with the default email grammar.
// An empty value is invalid; pair with RequiredString when presence matters
// for the message shown.
func ValidEmail(field, value string) Rule {
	return emailRule(field, func() emailsyntax.Outcome {
		return emailsyntax.Validate(value)
	})
}

// ValidEmailWith validates value with a caller-configured matcher,
// e.g. one enforcing RFC 5321 length limits.
func ValidEmailWith(field, value string, m *emailsyntax.Matcher) Rule {
	if m == nil {
		return ValidEmail(field, value)
	}
	return emailRule(field, func() emailsyntax.Outcome {
		return m.Validate(value)
	})
}

// OptionalEmail validates value only when it is present. A nil value passes.
func OptionalEmail(field string, value *string) Rule {
	return emailRule(field, func() emailsyntax.Outcome {
		if value == nil {
			return emailsyntax.Outcome{Valid: true}
		}
		return emailsyntax.Validate(*value)
	})
}

func emailRule(field string, classify func() emailsyntax.Outcome) Rule {
	return Rule{
		Check: func() bool {
			return classify().Valid
		},
		Error: ValidationError{
			Field:          field,
			Message:        MessageInvalidEmail,
			TranslationKey: TranslationKey(MessageInvalidEmail),
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
