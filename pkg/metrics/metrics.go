// Package metrics records Prometheus metrics for the HTTP API and the email
// classifier, on a registry owned by the Metrics value.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PathUnmatched is the path label of requests no route matched.
const PathUnmatched = "unmatched"

// Outcome label values of ObserveValidation.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
)

// Metrics holds the collectors. A nil *Metrics records nothing.
type Metrics struct {
	registry    *prometheus.Registry
	reqDuration *prometheus.HistogramVec
	validations *prometheus.CounterVec
}

// New registers the Go runtime and process collectors plus the service
// collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		reqDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.3, 1.2, 5},
			},
			[]string{"path", "method", "status"},
		),
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "email_validations_total",
				Help: "Email addresses classified, by result and reason.",
			},
			[]string{"result", "reason"},
		),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.reqDuration,
		m.validations,
	)
	return m
}

// Registry returns the registry the collectors live in.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveValidation counts one classification. reason is empty for valid
// addresses.
func (m *Metrics) ObserveValidation(valid bool, reason string) {
	if m == nil {
		return
	}
	result := ResultInvalid
	if valid {
		result = ResultValid
	}
	m.validations.WithLabelValues(result, reason).Inc()
}

// Middleware records request duration under the chi route pattern, so
// "/v1/users/{id}" is one series however many ids are requested.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, max(1, r.ProtoMajor))

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		if status < 100 || status > 599 {
			status = http.StatusInternalServerError
		}

		m.reqDuration.WithLabelValues(routePattern(r), r.Method, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return PathUnmatched
}
