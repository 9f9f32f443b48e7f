package i18n

import (
	"context"
	"log/slog"

	"github.com/mailvalid/mailvalid/pkg/logger"
)

type localeContextKey struct{}

// SetLocale stores locale in ctx.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the locale stored in ctx, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	return LocaleOr(ctx, DefaultLanguage)
}

// LocaleOr returns the locale stored in ctx, or fallback when none is set.
func LocaleOr(ctx context.Context, fallback string) string {
	if ctx == nil {
		return fallback
	}
	if locale, _ := ctx.Value(localeContextKey{}).(string); locale != "" {
		return locale
	}
	return fallback
}

// LogExtractor adds the request locale to every record logged with a
// context that carries one.
func LogExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if locale, _ := ctx.Value(localeContextKey{}).(string); locale != "" {
			return logger.Locale(locale), true
		}
		return slog.Attr{}, false
	}
}
