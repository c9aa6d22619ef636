package telemetry

import (
	"context"
	"fmt"

	"github.com/architeacher/filtersort/pkg/metrics"
	"github.com/architeacher/filtersort/services/svc-records/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.32.0"
	otelTrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "github.com/architeacher/filtersort/services/svc-records"

type ShutdownFunc func(ctx context.Context) error

// NewTracerProvider exports spans over OTLP gRPC when traces are enabled and
// returns a no-op provider otherwise.
func NewTracerProvider(ctx context.Context, cfg config.Telemetry) (otelTrace.TracerProvider, ShutdownFunc, error) {
	if !cfg.Traces.Enabled || cfg.OTLPEndpoint == "" {
		return NewNoopTracerProvider(), func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("creating OTLP trace exporter: %w", err)
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("creating resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.Traces.SamplerRatio))),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, tp.Shutdown, nil
}

func NewNoopTracerProvider() otelTrace.TracerProvider {
	return noop.NewTracerProvider()
}

// NewMetricsClient serves Prometheus counters when metrics are enabled.
// Otherwise counters are recorded on a no-op OTEL meter.
func NewMetricsClient(cfg config.Telemetry) metrics.Client {
	if cfg.Metrics.Enabled {
		return metrics.NewPrometheusClient(cfg.ServiceName)
	}

	return NewNoopMetricsClient()
}

func NewNoopMetricsClient() metrics.Client {
	return metrics.NewMeterClient(metricnoop.NewMeterProvider().Meter(instrumentationName))
}
