package ratelimiter

import (
	"hash/fnv"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/mailvalid/mailvalid/pkg/logger"
)

const maxKeyLength = 64

// Response headers set by Middleware.
const (
	HeaderLimit      = "X-RateLimit-Limit"
	HeaderRemaining  = "X-RateLimit-Remaining"
	HeaderReset      = "X-RateLimit-Reset"
	HeaderRetryAfter = "Retry-After"
)

// KeyFunc extracts a rate limit key from the request. An empty key skips
// limiting for that request.
type KeyFunc func(r *http.Request) string

// Composite joins the non-empty keys of several functions with ":". Keys
// longer than 64 bytes are hashed with FNV-1a.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}
		if len(parts) == 0 {
			return ""
		}

		combined := strings.Join(parts, ":")
		if len(combined) <= maxKeyLength {
			return combined
		}
		h := fnv.New64a()
		_, _ = h.Write([]byte(combined))
		return strconv.FormatUint(h.Sum64(), 36)
	}
}

// Static returns a KeyFunc yielding s, e.g. a route name for Composite.
func Static(s string) KeyFunc {
	return func(*http.Request) string { return s }
}

type middlewareConfig struct {
	onLimited http.HandlerFunc
	onError   func(w http.ResponseWriter, r *http.Request, err error)
	logger    *slog.Logger
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

// WithLimitedHandler renders the response for denied requests. Rate limit
// headers are already set when it runs.
func WithLimitedHandler(h http.HandlerFunc) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.onLimited = h
		}
	}
}

// WithErrorHandler renders the response when the store fails.
func WithErrorHandler(h func(w http.ResponseWriter, r *http.Request, err error)) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.onError = h
		}
	}
}

func WithMiddlewareLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Middleware limits requests per key and sets X-RateLimit-Limit,
// X-RateLimit-Remaining, X-RateLimit-Reset and, on denial, Retry-After.
func Middleware(limiter RateLimiter, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		onLimited: func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		},
		onError: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		},
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			result, err := limiter.Allow(r.Context(), key)
			if err != nil {
				cfg.logger.ErrorContext(r.Context(), "Rate limiter failed", logger.Error(err))
				cfg.onError(w, r, err)
				return
			}

			h := w.Header()
			h.Set(HeaderLimit, strconv.Itoa(result.Limit))
			h.Set(HeaderRemaining, strconv.Itoa(max(0, result.Remaining)))
			h.Set(HeaderReset, strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				// Round up so clients never retry early.
				secs := int(math.Ceil(result.RetryAfter().Seconds()))
				h.Set(HeaderRetryAfter, strconv.Itoa(max(1, secs)))
				cfg.onLimited(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
