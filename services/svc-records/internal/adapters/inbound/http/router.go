package http

import (
	"net/http"

	"github.com/architeacher/filtersort/pkg/logger"
	"github.com/architeacher/filtersort/pkg/metrics"
	"github.com/architeacher/filtersort/services/svc-records/internal/adapters/inbound/http/handlers"
	"github.com/architeacher/filtersort/services/svc-records/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/filtersort/services/svc-records/internal/config"
	"github.com/architeacher/filtersort/services/svc-records/internal/usecases"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/throttled/throttled/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	otelTrace "go.opentelemetry.io/otel/trace"
)

const baseURL = "/v1"

type RouterConfig struct {
	App            *usecases.Application
	Logger         logger.Logger
	MetricsClient  metrics.Client
	TracerProvider otelTrace.TracerProvider
	Config         *config.ServiceConfig
	RateLimitStore throttled.GCRAStoreCtx
}

func NewRouter(cfg RouterConfig) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID())
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Recovery(cfg.Logger))

	if cfg.Config.HTTPServer.WriteTimeout > 0 {
		router.Use(chimiddleware.Timeout(cfg.Config.HTTPServer.WriteTimeout))
	}

	if cfg.Config.Telemetry.Traces.Enabled && cfg.TracerProvider != nil {
		router.Use(otelhttp.NewMiddleware(
			cfg.Config.Telemetry.ServiceName,
			otelhttp.WithTracerProvider(cfg.TracerProvider),
		))
		cfg.Logger.Info().Msg("distributed tracing enabled")
	}

	if cfg.Config.Telemetry.Metrics.Enabled && cfg.MetricsClient != nil {
		router.Use(middleware.Metrics(cfg.MetricsClient))
		cfg.Logger.Info().Msg("HTTP metrics collection enabled")
	}

	if cfg.Config.Logging.AccessLog.Enabled {
		router.Use(middleware.HealthCheckFilter(cfg.Config.Logging.AccessLog.LogHealthChecks))
		router.Use(middleware.AccessLogger(cfg.Logger, cfg.Config.Logging.AccessLog.IncludeQueryParams))
		cfg.Logger.Info().
			Bool("log_health_checks", cfg.Config.Logging.AccessLog.LogHealthChecks).
			Msg("structured access logging enabled")
	}

	if rl := cfg.Config.HTTPServer.RateLimit; rl.Enabled && cfg.RateLimitStore != nil {
		limiter, err := middleware.RateLimiter(middleware.RateLimitOptions{
			RequestsPerSecond: rl.RequestsPerSecond,
			Burst:             rl.Burst,
		}, cfg.RateLimitStore, cfg.Logger)
		if err != nil {
			cfg.Logger.Error().Err(err).Msg("rate limiting disabled")
		} else {
			router.Use(limiter)
		}
	}

	if cfg.Config.HTTPServer.Compression.Enabled {
		router.Use(middleware.Compression(middleware.CompressionOptions{
			MinSize: cfg.Config.HTTPServer.Compression.MinSize,
		}, cfg.MetricsClient))
	}

	if cfg.Config.Telemetry.Metrics.Enabled && cfg.MetricsClient != nil {
		router.Method(http.MethodGet, "/metrics", cfg.MetricsClient.Handler())
	}

	health := handlers.NewHealthHandler(cfg.App)
	router.Get("/health", health.HealthReport)
	router.Get("/health/liveness", health.Liveness)
	router.Get("/health/readiness", health.Readiness)

	records := handlers.NewRecordsHandler(cfg.App, cfg.Logger)
	router.Route(baseURL, func(r chi.Router) {
		r.Get("/entities", records.ListEntities)
		r.Get("/entities/{"+handlers.EntityURLParam+"}/records", records.ListRecords)
	})

	return router
}
