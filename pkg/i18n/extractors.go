package i18n

import (
	"net/http"
	"strings"
)

// maxLangCodeLength follows the RFC 5646 recommendation.
const maxLangCodeLength = 35

// LangExtractor returns the language requested by r, or "".
type LangExtractor func(r *http.Request) string

// ExtractorConfig holds configuration for the default language extractor.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	SupportedLangs []string
}

// ExtractorOption configures the language extractor.
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the cookie name checked for a language preference.
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

// WithQueryParamName sets the query parameter checked for a language.
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithSupportedLanguages restricts results to the given languages.
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// DefaultLangExtractor checks, in order: the "lang" query parameter, the
// "lang" cookie and the Accept-Language header. The first supported value
// wins.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(r *http.Request) string {
		if cfg.QueryParamName != "" {
			if lang := NormalizeLanguage(r.URL.Query().Get(cfg.QueryParamName), cfg.SupportedLangs); lang != "" {
				return lang
			}
		}

		if cfg.CookieName != "" {
			if cookie, err := r.Cookie(cfg.CookieName); err == nil {
				if lang := NormalizeLanguage(cookie.Value, cfg.SupportedLangs); lang != "" {
					return lang
				}
			}
		}

		header := r.Header.Get("Accept-Language")
		if header == "" {
			return ""
		}
		if len(cfg.SupportedLangs) > 0 {
			return ParseAcceptLanguage(header, cfg.SupportedLangs, "")
		}
		first, _, _ := strings.Cut(header, ",")
		first, _, _ = strings.Cut(first, ";")
		return NormalizeLanguage(first, nil)
	}
}
