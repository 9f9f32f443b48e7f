// Package api exposes email validation and user registration over HTTP.
//
// Routes:
//
//	POST /v1/emails/validate  classify an address, rate limited per client IP
//	POST /v1/users            register a user, 422 with field messages on failure
//	GET  /v1/users/{id}       fetch a registered user
//	GET  /health/live         liveness
//	GET  /health/ready        readiness of the configured backends
//	GET  /metrics             Prometheus metrics, when enabled
//
// Messages are rendered in the request locale, negotiated from the lang
// query parameter, the lang cookie or Accept-Language.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/mailvalid/mailvalid/internal/user"
	"github.com/mailvalid/mailvalid/pkg/clientip"
	"github.com/mailvalid/mailvalid/pkg/emailsyntax"
	"github.com/mailvalid/mailvalid/pkg/handler"
	"github.com/mailvalid/mailvalid/pkg/httpserver"
	"github.com/mailvalid/mailvalid/pkg/i18n"
	"github.com/mailvalid/mailvalid/pkg/logger"
	"github.com/mailvalid/mailvalid/pkg/metrics"
	"github.com/mailvalid/mailvalid/pkg/ratelimiter"
)

// Translator is the message table used for response text.
// *i18n.Translator satisfies it.
type Translator interface {
	Tc(ctx context.Context, key string, args ...string) string
	Td(lang, key, defaultValue string, args ...string) string
	SupportedLanguages() []string
	DefaultLanguage() string
}

// API holds the dependencies of the HTTP handlers.
type API struct {
	users         *user.Service
	tr            Translator
	log           *slog.Logger
	matcher       *emailsyntax.Matcher
	limiter       ratelimiter.RateLimiter
	resolver      *clientip.Resolver
	checks        map[string]httpserver.Check
	healthTimeout time.Duration
	maxBodySize   int64
	metrics       *metrics.Metrics
	cors          CORSConfig
	onError       handler.ErrorHandler
}

// Option configures an API.
type Option func(*API)

func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

// WithMatcher replaces the default email matcher, e.g. with one that
// enforces length ceilings.
func WithMatcher(m *emailsyntax.Matcher) Option {
	return func(a *API) {
		if m != nil {
			a.matcher = m
		}
	}
}

// WithRateLimiter limits POST /v1/emails/validate per client IP.
// Without it the endpoint is not limited.
func WithRateLimiter(l ratelimiter.RateLimiter) Option {
	return func(a *API) {
		a.limiter = l
	}
}

// WithClientIP sets how client addresses are resolved.
func WithClientIP(res *clientip.Resolver) Option {
	return func(a *API) {
		if res != nil {
			a.resolver = res
		}
	}
}

// WithHealthCheck adds a readiness check.
func WithHealthCheck(name string, check httpserver.Check) Option {
	return func(a *API) {
		if check != nil {
			a.checks[name] = check
		}
	}
}

func WithHealthTimeout(d time.Duration) Option {
	return func(a *API) {
		if d > 0 {
			a.healthTimeout = d
		}
	}
}

// WithMaxBodySize caps JSON request bodies.
func WithMaxBodySize(n int64) Option {
	return func(a *API) {
		if n > 0 {
			a.maxBodySize = n
		}
	}
}

// WithMetrics records request and classification metrics and serves them
// on GET /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *API) {
		a.metrics = m
	}
}

// WithCORS enables CORS for the configured origins.
func WithCORS(cfg CORSConfig) Option {
	return func(a *API) {
		a.cors = cfg
	}
}

// New returns an API serving users with messages from tr.
func New(users *user.Service, tr Translator, opts ...Option) *API {
	a := &API{
		users:         users,
		tr:            tr,
		log:           logger.Discard(),
		matcher:       emailsyntax.New(),
		resolver:      clientip.New(),
		checks:        make(map[string]httpserver.Check),
		healthTimeout: 2 * time.Second,
		maxBodySize:   64 << 10,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.onError = handler.NewErrorHandler(a.log, tr, locale(tr))
	return a
}

func locale(tr Translator) handler.LocaleFunc {
	return func(r *http.Request) string {
		return i18n.LocaleOr(r.Context(), tr.DefaultLanguage())
	}
}
