// Package user registers accounts identified by an email address. It is the
// reference host record for the email rules: a user needs an email that is
// present and well formed.
package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/mailvalid/mailvalid/pkg/emailsyntax"
	"github.com/mailvalid/mailvalid/pkg/validator"
)

// FieldEmail is the field name used in validation errors.
const FieldEmail = "email"

// MessageTaken is reported when the email already belongs to a user.
const MessageTaken = "taken"

// MaxEmailLength is the width of the users.email column.
const MaxEmailLength = 320

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Rules requires an email that fits the column and checks its syntax with
// the default grammar. All rules report on the email field, so an empty value
// yields both the blank and the invalid message.
func (u User) Rules() []validator.Rule {
	return u.RulesWith(nil)
}

// RulesWith is Rules with the syntax checked by m. A nil m uses the default
// grammar.
func (u User) RulesWith(m *emailsyntax.Matcher) []validator.Rule {
	return []validator.Rule{
		validator.RequiredString(FieldEmail, u.Email),
		validator.MaxLenString(FieldEmail, u.Email, MaxEmailLength),
		validator.ValidEmailWith(FieldEmail, u.Email, m),
	}
}

// matchedUser binds a User to the matcher its email is checked with.
type matchedUser struct {
	user    User
	matcher *emailsyntax.Matcher
}

func (w matchedUser) Rules() []validator.Rule {
	return w.user.RulesWith(w.matcher)
}

func takenError() validator.ValidationError {
	return validator.ValidationError{
		Field:             FieldEmail,
		Message:           MessageTaken,
		TranslationKey:    validator.TranslationKey(MessageTaken),
		TranslationValues: map[string]any{"field": FieldEmail},
	}
}
