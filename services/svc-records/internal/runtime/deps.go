package runtime

import (
	"context"
	"fmt"
	"net/http"

	"github.com/architeacher/filtersort/pkg/logger"
	"github.com/architeacher/filtersort/pkg/metrics"
	"github.com/architeacher/filtersort/services/svc-records/internal/adapters/repos"
	"github.com/architeacher/filtersort/services/svc-records/internal/config"
	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
	"github.com/architeacher/filtersort/services/svc-records/internal/ports"
	"github.com/architeacher/filtersort/services/svc-records/internal/services"
	"github.com/architeacher/filtersort/services/svc-records/internal/usecases"
	"github.com/jackc/pgx/v5/pgxpool"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	infrastructureDep struct {
		httpServer     *http.Server
		tracerProvider otelTrace.TracerProvider
		metricsClient  metrics.Client
		logger         logger.Logger
		dbPool         *pgxpool.Pool
	}

	repositories struct {
		recordsRepo *repos.RecordsRepository
		guardedRepo *repos.GuardedRecordsRepository
		schemaRepo  *repos.SchemaRepository
		registry    ports.EntityRegistry
	}

	servicesDep struct {
		scopes  *services.FilterSortService[*model.CriteriaBuilder]
		records ports.RecordsService
	}

	dependencies struct {
		config   *config.ServiceConfig
		infra    infrastructureDep
		repos    repositories
		services servicesDep
		app      *usecases.Application

		cleanupFuncs map[string]func(ctx context.Context) error
	}

	DependencyOption func(*dependencies) error
)

func initializeDependencies(ctx context.Context, opts ...DependencyOption) (*dependencies, error) {
	deps := &dependencies{
		cleanupFuncs: make(map[string]func(ctx context.Context) error),
	}

	allOpts := append(defaultOptions(ctx), opts...)

	for _, opt := range allOpts {
		if err := opt(deps); err != nil {
			return nil, fmt.Errorf("failed to apply dependency option: %w", err)
		}
	}

	return deps, nil
}

func (d *dependencies) getDBHealthChecker() ports.DatabaseHealthChecker {
	return d.repos.recordsRepo
}
