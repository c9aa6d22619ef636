package queries

import (
	"context"

	"github.com/architeacher/filtersort/pkg/decorator"
	"github.com/architeacher/filtersort/pkg/logger"
	"github.com/architeacher/filtersort/pkg/metrics"
	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
	"github.com/architeacher/filtersort/services/svc-records/internal/ports"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	ListEntitiesQuery struct{}

	ListEntitiesQueryHandler = decorator.QueryHandler[ListEntitiesQuery, []model.EntityFields]

	listEntitiesQueryHandler struct {
		recordsService ports.RecordsService
	}
)

func NewListEntitiesQueryHandler(
	svc ports.RecordsService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ListEntitiesQueryHandler {
	return decorator.ApplyQueryDecorators[ListEntitiesQuery, []model.EntityFields](
		listEntitiesQueryHandler{recordsService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h listEntitiesQueryHandler) Execute(ctx context.Context, _ ListEntitiesQuery) ([]model.EntityFields, error) {
	return h.recordsService.DescribeEntities(ctx)
}
