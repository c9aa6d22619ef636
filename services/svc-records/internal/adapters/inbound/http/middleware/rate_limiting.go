package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/architeacher/filtersort/pkg/logger"
	"github.com/throttled/throttled/v2"
)

const (
	RateLimitLimitHeader     = "RateLimit-Limit"
	RateLimitRemainingHeader = "RateLimit-Remaining"
	RateLimitResetHeader     = "RateLimit-Reset"
	RetryAfterHeader         = "Retry-After"
)

type RateLimitOptions struct {
	RequestsPerSecond int
	Burst             int
}

// RateLimiter applies a GCRA quota per client address. Probe and scrape
// endpoints are never limited. Store errors let the request through.
func RateLimiter(opts RateLimitOptions, store throttled.GCRAStoreCtx, log logger.Logger) (func(http.Handler) http.Handler, error) {
	limiter, err := throttled.NewGCRARateLimiterCtx(store, throttled.RateQuota{
		MaxRate:  throttled.PerSec(opts.RequestsPerSecond),
		MaxBurst: opts.Burst,
	})
	if err != nil {
		return nil, err
	}

	log = log.Component("rate_limiter")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isHealthEndpoint(r.URL.Path) {
				next.ServeHTTP(w, r)

				return
			}

			limited, result, err := limiter.RateLimitCtx(r.Context(), clientKey(r.RemoteAddr), 1)
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter store error")
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(RateLimitLimitHeader, strconv.Itoa(result.Limit))
			w.Header().Set(RateLimitRemainingHeader, strconv.Itoa(result.Remaining))
			w.Header().Set(RateLimitResetHeader, strconv.FormatInt(time.Now().Add(result.ResetAfter).Unix(), 10))

			if limited {
				retryAfter := int(result.RetryAfter.Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}

				w.Header().Set(RetryAfterHeader, strconv.Itoa(retryAfter))
				writeError(w, r, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "too many requests, please try again later")

				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

func clientKey(remoteAddr string) string {
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return "ip:" + host
	}

	return "ip:" + remoteAddr
}
