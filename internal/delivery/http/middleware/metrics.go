package middleware

import (
	"net/http"
	"strconv"
	"time"

	"wishboard/internal/metrics"
)

// unmatchedRoute labels requests that no registered pattern handled.
const unmatchedRoute = "unmatched"

// MetricsMiddleware records request counts and latency. mux must be the
// ServeMux that next dispatches to; its matched pattern becomes the route
// label so cardinality stays bounded by the route table.
func MetricsMiddleware(m *metrics.Metrics, mux *http.ServeMux, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		route := unmatchedRoute
		if _, pattern := mux.Handler(r); pattern != "" {
			route = pattern
		}
		m.RequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(wrapped.status)).Inc()
		m.RequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}
