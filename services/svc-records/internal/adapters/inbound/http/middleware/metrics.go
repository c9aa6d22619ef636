package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/architeacher/filtersort/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
)

const (
	httpMethodKey     = "http.method"
	httpRouteKey      = "http.route"
	httpStatusCodeKey = "http.status_code"

	httpRequestTotal    = "http_requests"
	httpRequestDuration = "http_request_duration_seconds"
	httpResponseSize    = "http_response_size_bytes"

	unmatchedRoute = "unmatched"
)

// Metrics counts requests per chi route pattern, so path parameters such as
// the entity name do not multiply series.
func Metrics(client metrics.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := recordStatus(w)

			next.ServeHTTP(rec, r)

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			attrs := []attribute.KeyValue{
				attribute.String(httpMethodKey, r.Method),
				attribute.String(httpRouteKey, route),
				attribute.String(httpStatusCodeKey, strconv.Itoa(rec.status)),
			}

			client.Inc(r.Context(), httpRequestTotal, int64(1), attrs...)
			client.Inc(r.Context(), httpRequestDuration, time.Since(start).Seconds(), attrs...)
			client.Inc(r.Context(), httpResponseSize, int64(rec.size), attrs...)
		})
	}
}
