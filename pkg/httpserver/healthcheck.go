package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/mailvalid/mailvalid/pkg/logger"
)

// Check reports whether a dependency is usable.
type Check func(ctx context.Context) error

// HealthStatus is the body written by HealthHandler.
type HealthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

const (
	StatusOK       = "ok"
	StatusNotReady = "not_ready"
)

// HealthHandler serves liveness when checks is empty and readiness
// otherwise. Every check runs under timeout; any failure answers 503 with
// the failing check marked in the body.
func HealthHandler(log *slog.Logger, timeout time.Duration, checks map[string]Check) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		body := HealthStatus{Status: StatusOK}
		code := http.StatusOK

		if len(checks) > 0 {
			ctx := r.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			body.Checks = make(map[string]string, len(checks))
			for name, check := range checks {
				if err := check(ctx); err != nil {
					log.ErrorContext(ctx, "Readiness check failed", slog.String("check", name), logger.Error(err))
					body.Checks[name] = err.Error()
					body.Status = StatusNotReady
					code = http.StatusServiceUnavailable
					continue
				}
				body.Checks[name] = StatusOK
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(body)
	}
}
