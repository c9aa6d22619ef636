package telemetry_test

import (
	"context"
	"testing"

	"github.com/architeacher/filtersort/pkg/metrics"
	"github.com/architeacher/filtersort/services/svc-records/internal/config"
	"github.com/architeacher/filtersort/services/svc-records/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/require"
)

func TestNewTracerProvider_DisabledIsNoop(t *testing.T) {
	t.Parallel()

	tp, shutdown, err := telemetry.NewTracerProvider(context.Background(), config.Telemetry{
		OTLPEndpoint: "collector:4317",
	})

	require.NoError(t, err)
	require.NotNil(t, tp)

	_, span := tp.Tracer("test").Start(context.Background(), "noop")
	require.False(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, shutdown(context.Background()))
}

func TestNewMetricsClient(t *testing.T) {
	t.Parallel()

	enabled := telemetry.NewMetricsClient(config.Telemetry{
		ServiceName: "svc-records",
		Metrics:     config.Metrics{Enabled: true},
	})
	require.IsType(t, &metrics.PrometheusClient{}, enabled)

	disabled := telemetry.NewMetricsClient(config.Telemetry{})
	require.IsType(t, &metrics.MeterClient{}, disabled)

	disabled.Inc(context.Background(), "queries.test.success", 1)
}
