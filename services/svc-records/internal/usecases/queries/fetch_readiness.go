package queries

import (
	"context"

	"github.com/architeacher/filtersort/pkg/decorator"
	"github.com/architeacher/filtersort/pkg/logger"
	"github.com/architeacher/filtersort/pkg/metrics"
	"github.com/architeacher/filtersort/services/svc-records/internal/ports"
	otelTrace "go.opentelemetry.io/otel/trace"
)

const circuitOpen = "open"

type (
	FetchReadinessQuery struct{}

	ReadinessResult struct {
		Status   string `json:"status"`
		Ready    bool   `json:"ready"`
		Database string `json:"database"`
		Circuit  string `json:"circuit"`
	}

	FetchReadinessQueryHandler = decorator.QueryHandler[FetchReadinessQuery, *ReadinessResult]

	// fetchReadinessQueryHandler is not ready while the database is unreachable
	// or the breaker in front of it is open. A half-open breaker is ready, so
	// probe traffic can close it again.
	fetchReadinessQueryHandler struct {
		db      ports.DatabaseHealthChecker
		circuit ports.CircuitStateReporter
	}
)

func NewFetchReadinessQueryHandler(
	db ports.DatabaseHealthChecker,
	circuit ports.CircuitStateReporter,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) FetchReadinessQueryHandler {
	return decorator.ApplyQueryDecorators[FetchReadinessQuery, *ReadinessResult](
		fetchReadinessQueryHandler{db: db, circuit: circuit},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h fetchReadinessQueryHandler) Execute(ctx context.Context, _ FetchReadinessQuery) (*ReadinessResult, error) {
	result := &ReadinessResult{
		Status:   "ok",
		Ready:    true,
		Database: "reachable",
		Circuit:  h.circuit.CircuitState(),
	}

	if err := h.db.Ping(ctx); err != nil {
		result.Database = "unreachable"
		result.Ready = false
	}

	if result.Circuit == circuitOpen {
		result.Ready = false
	}

	if !result.Ready {
		result.Status = "unavailable"
	}

	return result, nil
}
