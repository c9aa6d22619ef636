package runtime

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/architeacher/filtersort/pkg/circuitbreaker"
	"github.com/architeacher/filtersort/pkg/logger"
	inboundhttp "github.com/architeacher/filtersort/services/svc-records/internal/adapters/inbound/http"
	"github.com/architeacher/filtersort/services/svc-records/internal/adapters/registry"
	"github.com/architeacher/filtersort/services/svc-records/internal/adapters/repos"
	"github.com/architeacher/filtersort/services/svc-records/internal/config"
	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
	infraPostgres "github.com/architeacher/filtersort/services/svc-records/internal/infrastructure/postgres"
	"github.com/architeacher/filtersort/services/svc-records/internal/infrastructure/telemetry"
	"github.com/architeacher/filtersort/services/svc-records/internal/services"
	"github.com/architeacher/filtersort/services/svc-records/internal/usecases"
	"github.com/hashicorp/vault/api"
	"github.com/throttled/throttled/v2"
	"github.com/throttled/throttled/v2/store/memstore"
)

func defaultOptions(ctx context.Context) []DependencyOption {
	return []DependencyOption{
		WithConfig(),
		WithLogger(),
		WithSecrets(ctx),
		WithTracing(ctx),
		WithMetrics(),
		WithDatabase(ctx),
		WithEntityRegistry(),
		WithRepositories(),
		WithServices(),
		WithApplication(),
		WithHTTPServer(),
	}
}

func WithConfig() DependencyOption {
	return func(d *dependencies) error {
		cfg, err := config.Init()
		if err != nil {
			return fmt.Errorf("initializing configuration: %w", err)
		}

		d.config = cfg

		return nil
	}
}

func WithLogger() DependencyOption {
	return func(d *dependencies) error {
		format := d.config.Logging.Format
		if d.config.IsProduction() {
			format = logger.JSONLoggingFormat
		}

		d.infra.logger = logger.New(d.config.Logging.Level, format).
			Component(d.config.App.ServiceName)

		return nil
	}
}

// WithSecrets overlays database credentials from Vault when VAULT_ENABLED is
// set. It must run before WithDatabase.
func WithSecrets(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if !d.config.Secrets.Enabled {
			return nil
		}

		vaultConfig := api.DefaultConfig()
		vaultConfig.Address = d.config.Secrets.Address
		vaultConfig.Timeout = d.config.Secrets.Timeout

		if d.config.Secrets.TLSSkipVerify {
			vaultConfig.HttpClient.Transport = &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			}
		}

		client, err := api.NewClient(vaultConfig)
		if err != nil {
			return fmt.Errorf("creating vault client: %w", err)
		}

		if d.config.Secrets.Namespace != "" {
			client.SetNamespace(d.config.Secrets.Namespace)
		}

		version, err := config.LoadSecrets(ctx, d.config, repos.NewVaultRepository(client))
		if err != nil {
			return fmt.Errorf("loading secrets: %w", err)
		}

		d.infra.logger.Info().
			Str("mount_path", d.config.Secrets.MountPath).
			Int64("version", version).
			Msg("database credentials loaded from vault")

		return nil
	}
}

func WithTracing(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		tp, shutdown, err := telemetry.NewTracerProvider(ctx, d.config.Telemetry)
		if err != nil {
			return fmt.Errorf("initializing tracer: %w", err)
		}

		d.infra.tracerProvider = tp
		d.cleanupFuncs["tracer"] = shutdown

		return nil
	}
}

func WithMetrics() DependencyOption {
	return func(d *dependencies) error {
		d.infra.metricsClient = telemetry.NewMetricsClient(d.config.Telemetry)

		return nil
	}
}

func WithDatabase(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		pool, err := infraPostgres.NewPool(ctx, d.config.Database, d.infra.logger)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}

		d.infra.dbPool = pool
		d.cleanupFuncs["database"] = func(context.Context) error {
			pool.Close()

			return nil
		}

		return nil
	}
}

func WithEntityRegistry() DependencyOption {
	return func(d *dependencies) error {
		reg, err := registry.LoadFile(d.config.Registry.EntitiesFile)
		if err != nil {
			return fmt.Errorf("loading entity registry: %w", err)
		}

		d.repos.registry = reg

		d.infra.logger.Info().
			Str("file", d.config.Registry.EntitiesFile).
			Int("entities", len(reg.List())).
			Msg("entity registry loaded")

		return nil
	}
}

func WithRepositories() DependencyOption {
	return func(d *dependencies) error {
		scanner := repos.NewPgxScanner()
		translatorLogger := d.infra.logger.Component("criteria_translator")

		d.repos.recordsRepo = repos.NewRecordsRepository(
			d.infra.dbPool,
			scanner,
			repos.NewCriteriaTranslator(&translatorLogger),
			d.infra.logger.Component("records_repository"),
			d.config.Records.MaxRows,
		)
		d.repos.schemaRepo = repos.NewSchemaRepository(d.infra.dbPool, scanner, d.config.Database.Schema)

		breakerCfg := d.config.Database.Breaker
		breakerLogger := d.infra.logger.Component("circuit_breaker")
		d.repos.guardedRepo = repos.NewGuardedRecordsRepository(
			d.repos.recordsRepo,
			circuitbreaker.New[[]model.Record](circuitbreaker.Config{
				Name:             "postgres",
				Enabled:          breakerCfg.Enabled,
				MaxRequests:      breakerCfg.MaxRequests,
				Interval:         breakerCfg.Interval,
				Timeout:          breakerCfg.Timeout,
				FailureThreshold: breakerCfg.FailureThreshold,
				IsFailure:        repos.IsUnavailable,
				OnStateChange: func(name, from, to string) {
					breakerLogger.Warn().
						Str("breaker", name).
						Str("from", from).
						Str("to", to).
						Msg("circuit breaker state changed")
				},
			}),
		)

		return nil
	}
}

func WithServices() DependencyOption {
	return func(d *dependencies) error {
		resolver := services.NewAllowedFieldResolver(d.repos.schemaRepo)

		d.services.scopes = services.NewFilterSortService(
			resolver,
			services.NewFilterParser(
				d.config.Filtering.OperatorSuffix,
				d.config.Filtering.Policy(),
				d.infra.logger,
			),
			services.NewFilterApplier[*model.CriteriaBuilder](d.infra.logger),
			services.NewSortParser(services.SortParserOptions{
				Mode:            d.config.Sorting.SortMode(),
				DirectionSuffix: d.config.Sorting.DirectionSuffix,
				FieldParam:      d.config.Sorting.FieldParam,
				OrderParam:      d.config.Sorting.OrderParam,
				DefaultField:    d.config.Sorting.DefaultField,
			}, d.infra.logger),
			services.NewSortApplier[*model.CriteriaBuilder](),
		)

		d.services.records = services.NewRecordsService(d.repos.registry, d.repos.guardedRepo, resolver, d.services.scopes)

		return nil
	}
}

func WithApplication() DependencyOption {
	return func(d *dependencies) error {
		d.app = usecases.NewApplication(
			d.services.records,
			d.repos.registry,
			d.getDBHealthChecker(),
			d.repos.guardedRepo,
			d.config.App.ServiceVersion,
			d.infra.logger,
			d.infra.tracerProvider,
			d.infra.metricsClient,
		)

		return nil
	}
}

func WithHTTPServer() DependencyOption {
	return func(d *dependencies) error {
		var rateLimitStore throttled.GCRAStoreCtx

		if d.config.HTTPServer.RateLimit.Enabled {
			store, err := memstore.NewCtx(d.config.HTTPServer.RateLimit.MaxKeys)
			if err != nil {
				return fmt.Errorf("creating rate limit store: %w", err)
			}

			rateLimitStore = store
		}

		router := inboundhttp.NewRouter(inboundhttp.RouterConfig{
			App:            d.app,
			Logger:         d.infra.logger,
			MetricsClient:  d.infra.metricsClient,
			TracerProvider: d.infra.tracerProvider,
			Config:         d.config,
			RateLimitStore: rateLimitStore,
		})

		d.infra.httpServer = &http.Server{
			Handler:      router,
			ReadTimeout:  d.config.HTTPServer.ReadTimeout,
			WriteTimeout: d.config.HTTPServer.WriteTimeout,
		}
		d.cleanupFuncs["http_server"] = d.infra.httpServer.Shutdown

		return nil
	}
}
