package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/architeacher/filtersort/pkg/decorator"
	"github.com/architeacher/filtersort/pkg/logger"
	"github.com/architeacher/filtersort/pkg/metrics"
	"github.com/architeacher/filtersort/services/svc-records/internal/ports"
	otelTrace "go.opentelemetry.io/otel/trace"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

type (
	FetchHealthReportQuery struct{}

	// HealthResult is "degraded" when the database answers but its breaker
	// is not closed yet.
	HealthResult struct {
		Status       string                            `json:"status"`
		Version      string                            `json:"version"`
		Uptime       string                            `json:"uptime"`
		Entities     int                               `json:"entities"`
		Dependencies map[string]ports.DependencyStatus `json:"dependencies"`
	}

	FetchHealthReportQueryHandler = decorator.QueryHandler[FetchHealthReportQuery, *HealthResult]

	fetchHealthReportQueryHandler struct {
		db        ports.DatabaseHealthChecker
		circuit   ports.CircuitStateReporter
		registry  ports.EntityRegistry
		version   string
		startedAt time.Time
	}
)

func NewFetchHealthReportQueryHandler(
	db ports.DatabaseHealthChecker,
	circuit ports.CircuitStateReporter,
	registry ports.EntityRegistry,
	version string,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) FetchHealthReportQueryHandler {
	return decorator.ApplyQueryDecorators[FetchHealthReportQuery, *HealthResult](
		fetchHealthReportQueryHandler{
			db:        db,
			circuit:   circuit,
			registry:  registry,
			version:   version,
			startedAt: time.Now(),
		},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h fetchHealthReportQueryHandler) Execute(ctx context.Context, _ FetchHealthReportQuery) (*HealthResult, error) {
	postgres := h.probeDatabase(ctx)

	status := healthStatusHealthy

	switch {
	case !postgres.Healthy:
		status = healthStatusUnhealthy
	case postgres.Circuit == circuitOpen:
		status = healthStatusUnhealthy
	case postgres.Circuit != "closed":
		status = healthStatusDegraded
	}

	return &HealthResult{
		Status:       status,
		Version:      h.version,
		Uptime:       time.Since(h.startedAt).Round(time.Second).String(),
		Entities:     len(h.registry.List()),
		Dependencies: map[string]ports.DependencyStatus{"postgres": postgres},
	}, nil
}

func (h fetchHealthReportQueryHandler) probeDatabase(ctx context.Context) ports.DependencyStatus {
	start := time.Now()
	err := h.db.Ping(ctx)

	status := ports.DependencyStatus{
		Healthy: err == nil,
		Circuit: h.circuit.CircuitState(),
		Latency: fmt.Sprintf("%dms", time.Since(start).Milliseconds()),
	}

	if err != nil {
		status.Message = err.Error()
	}

	return status
}
