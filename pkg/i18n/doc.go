// Package i18n resolves message keys to locale-specific text.
//
// A Translator holds one message table per language, loaded once through a
// TranslationAdapter. Tables are nested maps addressed with dot-separated
// keys, so the Rails-style YAML layout
//
//	en:
//	  errors:
//	    messages:
//	      invalid_email: "invalid email"
//
// is looked up as T("en", "errors.messages.invalid_email"). Templates may
// contain named placeholders in the form %{name}, filled from key/value pairs
// passed after the key.
//
// # Loading
//
// Adapters exist for an in-memory map, a single file, a directory and any
// fs.FS (including embed.FS). Parsers for YAML (gopkg.in/yaml.v3) and JSON
// are selected by file extension.
//
//	tr, err := i18n.NewTranslator(ctx,
//		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
//		i18n.WithDefaultLanguage("en"),
//	)
//
// # Request locale
//
// Middleware stores the negotiated locale in the request context; Tc reads
// it back. ParseAcceptLanguage negotiates with golang.org/x/text/language so
// regional variants such as "ja-JP" resolve to a supported "ja".
//
// The table is read-only after NewTranslator returns, so a Translator is safe
// for concurrent use.
package i18n
