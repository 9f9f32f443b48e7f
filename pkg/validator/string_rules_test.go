package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mailvalid/mailvalid/pkg/validator"
)

func TestRequiredString(t *testing.T) {
	t.Run("passes for non-empty string", func(t *testing.T) {
		rule := validator.RequiredString("email", "test@example.com")
		assert.True(t, rule.Check())
		assert.Equal(t, "email", rule.Error.Field)
		assert.Equal(t, "blank", rule.Error.Message)
		assert.Equal(t, "errors.messages.blank", rule.Error.TranslationKey)
		assert.Equal(t, map[string]any{"field": "email"}, rule.Error.TranslationValues)
	})

	t.Run("fails for empty string", func(t *testing.T) {
		assert.False(t, validator.RequiredString("email", "").Check())
	})

	t.Run("fails for whitespace-only string", func(t *testing.T) {
		assert.False(t, validator.RequiredString("email", " \t\n").Check())
	})
}

func TestMaxLenString(t *testing.T) {
	t.Run("passes at the limit", func(t *testing.T) {
		rule := validator.MaxLenString("email", "12345", 5)
		assert.True(t, rule.Check())
		assert.Equal(t, "errors.messages.too_long", rule.Error.TranslationKey)
		assert.Equal(t, 5, rule.Error.TranslationValues["count"])
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		assert.True(t, validator.MaxLenString("name", "日本語", 3).Check())
	})

	t.Run("fails above the limit", func(t *testing.T) {
		assert.False(t, validator.MaxLenString("email", "123456", 5).Check())
	})
}
