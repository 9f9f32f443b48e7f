package locales_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailvalid/mailvalid/locales"
	"github.com/mailvalid/mailvalid/pkg/i18n"
)

func TestEmbeddedTables(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewTranslator(context.Background(),
		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
		i18n.WithFallbackToKey(false),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "ja"}, tr.SupportedLanguages())

	tests := []struct {
		lang string
		key  string
		want string
	}{
		{"en", "errors.messages.invalid_email", "invalid email"},
		{"ja", "errors.messages.invalid_email", "メールアドレスが不正です"},
		{"en", "errors.messages.blank", "can't be blank"},
		{"en", "errors.messages.taken", "has already been taken"},
		{"ja", "errors.messages.taken", "はすでに存在します"},
	}
	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.T(tt.lang, tt.key))
		})
	}

	// every key present in one language is present in the other
	for _, key := range []string{"invalid_email", "blank", "taken", "too_long"} {
		for _, lang := range tr.SupportedLanguages() {
			assert.True(t, tr.HasTranslation(lang, "errors.messages."+key), "%s missing %s", lang, key)
		}
	}
	for _, key := range []string{"validation_failed", "bad_request", "not_found", "method_not_allowed", "request_entity_too_large", "unsupported_media_type", "too_many_requests", "internal_server_error", "service_unavailable"} {
		for _, lang := range tr.SupportedLanguages() {
			assert.True(t, tr.HasTranslation(lang, "errors.http."+key), "%s missing %s", lang, key)
		}
	}
	assert.Equal(t, "is too long (maximum is 255 characters)", tr.T("en", "errors.messages.too_long", "count", "255"))
}
