package user_test

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mailvalid/mailvalid/internal/user"
	"github.com/mailvalid/mailvalid/pkg/emailsyntax"
	"github.com/mailvalid/mailvalid/pkg/validator"
)

func fsReadFile(name string) ([]byte, error) {
	return fs.ReadFile(user.Migrations(), name)
}

func TestUser_Rules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		want  []string
	}{
		{email: "an_unique_valid_email@example.com", want: nil},
		{email: "invalid_email@example", want: []string{validator.MessageInvalidEmail}},
		{email: "", want: []string{validator.MessageBlank, validator.MessageInvalidEmail}},
		{email: "   ", want: []string{validator.MessageBlank, validator.MessageInvalidEmail}},
		{email: strings.Repeat("a", 64) + "@example.com", want: nil},
		{email: strings.Repeat("a", 308) + "@example.com", want: nil},
		{email: strings.Repeat("a", 309) + "@example.com", want: []string{validator.MessageTooLong}},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			t.Parallel()
			errs := validator.Collect(user.User{Email: tt.email}.Rules()...)
			assert.Equal(t, tt.want, errs.Get(user.FieldEmail))
		})
	}
}

func TestUser_RulesWith(t *testing.T) {
	t.Parallel()

	limited := emailsyntax.New(emailsyntax.WithRFC5321Limits())
	long := user.User{Email: strings.Repeat("a", 65) + "@example.com"}

	t.Run("default grammar has no length limit", func(t *testing.T) {
		t.Parallel()
		assert.True(t, validator.Collect(long.RulesWith(nil)...).IsEmpty())
	})

	t.Run("configured matcher applies its limits", func(t *testing.T) {
		t.Parallel()
		errs := validator.Collect(long.RulesWith(limited)...)
		assert.Equal(t, []string{validator.MessageInvalidEmail}, errs.Get(user.FieldEmail))
	})

	t.Run("blank with configured matcher", func(t *testing.T) {
		t.Parallel()
		errs := validator.Collect(user.User{}.RulesWith(limited)...)
		assert.Equal(t, []string{validator.MessageBlank, validator.MessageInvalidEmail}, errs.Get(user.FieldEmail))
	})
}
