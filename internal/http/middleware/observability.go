package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"truckhub/internal/logx"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	requestSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Observability records request count, duration and an access log entry.
// Server errors are logged at error level so they stand out in the stream.
func Observability(logger logx.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				// route pattern, not raw path, keeps label cardinality bounded
				route := routePattern(r)
				status := ww.Status()
				elapsed := time.Since(start)
				code := strconv.Itoa(status)

				requestsTotal.WithLabelValues(r.Method, route, code).Inc()
				requestSeconds.WithLabelValues(r.Method, route, code).Observe(elapsed.Seconds())

				emit := logger.Info
				if status >= http.StatusInternalServerError {
					emit = logger.Error
				}
				emit("http request",
					logx.String("method", r.Method),
					logx.String("path", route),
					logx.Int("status", status),
					logx.Duration("duration", elapsed),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
