package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mailvalid/mailvalid/pkg/clientip"
	"github.com/mailvalid/mailvalid/pkg/handler"
	"github.com/mailvalid/mailvalid/pkg/httpserver"
	"github.com/mailvalid/mailvalid/pkg/i18n"
	"github.com/mailvalid/mailvalid/pkg/ratelimiter"
	"github.com/mailvalid/mailvalid/pkg/requestid"
)

// Router returns the HTTP handler for all routes.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer,
		a.metrics.Middleware,
		a.cors.handler(),
		requestid.Middleware,
		clientip.Middleware(a.resolver),
		i18n.Middleware(
			i18n.DefaultLangExtractor(i18n.WithSupportedLanguages(a.tr.SupportedLanguages()...)),
			a.tr.DefaultLanguage(),
		),
		accessLog(a.log),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		a.onError(w, r, handler.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		a.onError(w, r, handler.ErrMethodNotAllowed)
	})

	r.Get("/health/live", httpserver.HealthHandler(a.log, 0, nil))
	r.Get("/health/ready", httpserver.HealthHandler(a.log, a.healthTimeout, a.checks))
	if a.metrics != nil {
		r.Handle("/metrics", a.metrics.Handler())
	}

	r.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if a.limiter != nil {
				r.Use(ratelimiter.Middleware(a.limiter,
					ratelimiter.Composite(ratelimiter.Static("validate"), clientIPKey),
					ratelimiter.WithLimitedHandler(func(w http.ResponseWriter, r *http.Request) {
						a.onError(w, r, handler.ErrTooManyRequests)
					}),
					ratelimiter.WithErrorHandler(a.onError),
					ratelimiter.WithMiddlewareLogger(a.log),
				))
			}
			r.Post("/emails/validate", a.validateEmail())
		})

		r.Post("/users", a.createUser())
		r.Get("/users/{id}", a.getUser())
	})

	return r
}

func clientIPKey(r *http.Request) string {
	return clientip.FromContext(r.Context())
}
