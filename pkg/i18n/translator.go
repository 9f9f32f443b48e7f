package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
)

// DefaultLanguage is the language used when nothing else is configured.
const DefaultLanguage = "en"

// Translator resolves message keys against per-language tables.
type Translator struct {
	translations      map[string]map[string]any
	defaultLang       string
	fallbackToKey     bool
	fallbackToDefault bool
	logMissing        bool
	logger            *slog.Logger
}

// NewTranslator loads translations through adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, table := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguageCode
		}
		if table == nil {
			return nil, fmt.Errorf("nil translations map for language: %s", lang)
		}
	}
	if len(translations) == 0 {
		t.logger.WarnContext(ctx, "No translations provided")
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "Translations loaded", "languages", t.SupportedLanguages())
	return t, nil
}

// DefaultLanguage returns the configured default language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the sorted language codes that have a table.
func (t *Translator) SupportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// HasTranslation reports whether lang has a string for key.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang, substituting %{name} placeholders from args
// given as name, value pairs:
//
//	t.T("en", "errors.messages.too_long", "count", "255")
func (t *Translator) T(lang, key string, args ...string) string {
	if tmpl, ok := t.resolve(lang, key); ok {
		return interpolate(tmpl, args)
	}
	if t.fallbackToKey {
		return interpolate(key, args)
	}
	return ""
}

// Td translates key for lang, rendering defaultValue when it is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if tmpl, ok := t.resolve(lang, key); ok {
		return interpolate(tmpl, args)
	}
	return interpolate(defaultValue, args)
}

// Tc translates key for the locale stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(LocaleOr(ctx, t.defaultLang), key, args...)
}

func (t *Translator) resolve(lang, key string) (string, bool) {
	if tmpl, ok := t.lookup(lang, key); ok {
		return tmpl, true
	}
	if t.fallbackToDefault && lang != t.defaultLang {
		if tmpl, ok := t.lookup(t.defaultLang, key); ok {
			return tmpl, true
		}
	}
	if t.logMissing {
		t.logger.Warn("Translation not found", "lang", lang, "key", key)
	}
	return "", false
}

// lookup walks the dot-separated key through nested tables.
func (t *Translator) lookup(lang, key string) (string, bool) {
	table, ok := t.translations[lang]
	if !ok || key == "" {
		return "", false
	}

	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		next, ok := normalizeMap(table[part])
		if !ok {
			return "", false
		}
		table = next
	}

	switch v := table[parts[len(parts)-1]].(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// interpolate replaces %{name} with the matching value from name, value
// pairs. Unknown placeholders are left intact; a trailing odd arg is ignored.
func interpolate(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
