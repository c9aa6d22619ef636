package usecases

import (
	"github.com/architeacher/filtersort/pkg/logger"
	"github.com/architeacher/filtersort/pkg/metrics"
	"github.com/architeacher/filtersort/services/svc-records/internal/ports"
	"github.com/architeacher/filtersort/services/svc-records/internal/usecases/queries"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	Queries struct {
		ListRecords       queries.ListRecordsQueryHandler
		ListEntities      queries.ListEntitiesQueryHandler
		FetchLiveness     queries.FetchLivenessQueryHandler
		FetchReadiness    queries.FetchReadinessQueryHandler
		FetchHealthReport queries.FetchHealthReportQueryHandler
	}

	Application struct {
		Queries Queries
	}
)

func NewApplication(
	recordsSvc ports.RecordsService,
	registry ports.EntityRegistry,
	dbHealthChecker ports.DatabaseHealthChecker,
	circuit ports.CircuitStateReporter,
	version string,
	log logger.Logger,
	tracerProvider otelTrace.TracerProvider,
	metricsClient metrics.Client,
) *Application {
	return &Application{
		Queries: Queries{
			ListRecords:   queries.NewListRecordsQueryHandler(recordsSvc, log, metricsClient, tracerProvider),
			ListEntities:  queries.NewListEntitiesQueryHandler(recordsSvc, log, metricsClient, tracerProvider),
			FetchLiveness: queries.NewFetchLivenessQueryHandler(version, log, metricsClient, tracerProvider),
			FetchReadiness: queries.NewFetchReadinessQueryHandler(
				dbHealthChecker,
				circuit,
				log,
				metricsClient,
				tracerProvider,
			),
			FetchHealthReport: queries.NewFetchHealthReportQueryHandler(
				dbHealthChecker,
				circuit,
				registry,
				version,
				log,
				metricsClient,
				tracerProvider,
			),
		},
	}
}
