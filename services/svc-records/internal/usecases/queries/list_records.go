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
	ListRecordsQuery struct {
		Entity string
		Params *model.Params
	}

	ListRecordsQueryHandler = decorator.QueryHandler[ListRecordsQuery, *model.RecordList]

	listRecordsQueryHandler struct {
		recordsService ports.RecordsService
	}
)

func NewListRecordsQueryHandler(
	svc ports.RecordsService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ListRecordsQueryHandler {
	return decorator.ApplyQueryDecorators[ListRecordsQuery, *model.RecordList](
		listRecordsQueryHandler{recordsService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h listRecordsQueryHandler) Execute(ctx context.Context, query ListRecordsQuery) (*model.RecordList, error) {
	return h.recordsService.ListRecords(ctx, query.Entity, query.Params)
}
