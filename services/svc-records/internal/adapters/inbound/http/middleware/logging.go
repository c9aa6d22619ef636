package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/architeacher/filtersort/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type contextKey string

const skipAccessLogKey contextKey = "skip_access_log"

var probeEndpoints = map[string]struct{}{
	"/health":           {},
	"/health/liveness":  {},
	"/health/readiness": {},
	"/metrics":          {},
}

// HealthCheckFilter marks probe and scrape requests so the access log skips
// them, unless logHealthChecks is set.
func HealthCheckFilter(logHealthChecks bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if logHealthChecks || !isHealthEndpoint(r.URL.Path) {
				next.ServeHTTP(w, r)

				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), skipAccessLogKey, true)))
		})
	}
}

// AccessLogger writes one line per request once it has been served. The raw
// query carries the filter and sort parameters, so it is opt-in.
func AccessLogger(log logger.Logger, includeQueryParams bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skip, _ := r.Context().Value(skipAccessLogKey).(bool); skip {
				next.ServeHTTP(w, r)

				return
			}

			start := time.Now()
			rec := recordStatus(w)

			next.ServeHTTP(rec, r)

			reqLogger := log.WithContext(r.Context()).With().Str("component", "http").Logger()

			event := levelFor(&reqLogger, rec.status).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote_addr", r.RemoteAddr).
				Str("user_agent", r.UserAgent()).
				Int("status", rec.status).
				Uint64("bytes", rec.size).
				Int64("duration_ms", time.Since(start).Milliseconds())

			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				event.Str("route", rctx.RoutePattern())
			}

			if includeQueryParams && r.URL.RawQuery != "" {
				event.Str("query", r.URL.RawQuery)
			}

			event.Msg("request handled")
		})
	}
}

func levelFor(log *zerolog.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case status >= http.StatusBadRequest:
		return log.Warn()
	default:
		return log.Info()
	}
}

func isHealthEndpoint(path string) bool {
	_, ok := probeEndpoints[strings.TrimSuffix(path, "/")]

	return ok
}
