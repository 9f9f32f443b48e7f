package api

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/mailvalid/mailvalid/pkg/ratelimiter"
	"github.com/mailvalid/mailvalid/pkg/requestid"
)

// CORSConfig lets browser forms call the API from other origins. CORS is
// off when AllowedOrigins is empty.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"`
	MaxAge           int      `env:"CORS_MAX_AGE" envDefault:"300"`
}

func (c CORSConfig) handler() func(http.Handler) http.Handler {
	if len(c.AllowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   c.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Content-Type", requestid.Header},
		ExposedHeaders:   []string{requestid.Header, "Content-Language", "Retry-After", ratelimiter.HeaderLimit, ratelimiter.HeaderRemaining, ratelimiter.HeaderReset},
		AllowCredentials: c.AllowCredentials,
		MaxAge:           c.MaxAge,
	})
}
