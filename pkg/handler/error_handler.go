package handler

import (
	"log/slog"
	"net/http"

	"github.com/mailvalid/mailvalid/pkg/logger"
)

// Translator resolves message keys in the request locale.
type Translator interface {
	Td(lang, key, defaultValue string, args ...string) string
}

// LocaleFunc returns the locale of a request.
type LocaleFunc func(r *http.Request) string

// NewErrorHandler returns an ErrorHandler that logs the failure and renders
// it as a JSON error. HTTP error messages are looked up under
// errors.http.<key> when tr is not nil.
func NewErrorHandler(log *slog.Logger, tr Translator, locale LocaleFunc) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	return func(w http.ResponseWriter, r *http.Request, err error) {
		status := StatusCode(err)
		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		var opts []JSONOption
		if tr != nil && locale != nil {
			detail, _ := errorToDetail(err)
			opts = append(opts, WithErrorMessage(tr.Td(locale(r), "errors.http."+detail.Code, detail.Message)))
		}

		if renderErr := JSONError(err, opts...).Render(w, r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error", logger.Error(renderErr))
		}
	}
}
