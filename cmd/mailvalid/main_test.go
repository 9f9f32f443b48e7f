package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailvalid/mailvalid/pkg/logger"
)

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	t.Run("embedded tables", func(t *testing.T) {
		t.Parallel()
		tr, err := newTranslator(context.Background(), appConfig{DefaultLocale: "en"}, logger.Discard())
		require.NoError(t, err)

		assert.Equal(t, []string{"en", "ja"}, tr.SupportedLanguages())
		assert.Equal(t, "メールアドレスが不正です", tr.T("ja", "errors.messages.invalid_email"))
	})

	t.Run("locales directory", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "de.yml"),
			[]byte("de:\n  errors:\n    messages:\n      invalid_email: \"ungültige E-Mail-Adresse\"\n"), 0o600))

		tr, err := newTranslator(context.Background(), appConfig{LocalesDir: dir, DefaultLocale: "de"}, logger.Discard())
		require.NoError(t, err)

		assert.Equal(t, "de", tr.DefaultLanguage())
		assert.Equal(t, "ungültige E-Mail-Adresse", tr.Tc(context.Background(), "errors.messages.invalid_email"))
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := newTranslator(context.Background(), appConfig{LocalesDir: filepath.Join(t.TempDir(), "nope")}, logger.Discard())
		assert.Error(t, err)
	})
}

func TestNewMatcher(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("a", 65) + "@example.com"

	assert.True(t, newMatcher(false).IsValid(long))
	assert.False(t, newMatcher(true).IsValid(long))
	assert.True(t, newMatcher(true).IsValid("an_unique_valid_email@example.com"))
}
