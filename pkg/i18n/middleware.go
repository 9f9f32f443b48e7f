package i18n

import "net/http"

// Middleware stores the request language in the request context.
// A nil extractor uses DefaultLangExtractor; an empty result falls back to
// defaultLang, or DefaultLanguage when that is empty too.
func Middleware(extr LangExtractor, defaultLang string) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}
	if defaultLang == "" {
		defaultLang = DefaultLanguage
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extr(r)
			if lang == "" {
				lang = defaultLang
			}
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
