package metrics

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type (
	// Client counts what the service does. Keys are free-form; each backend
	// normalises them into its own naming scheme.
	Client interface {
		Inc(ctx context.Context, key string, value any, attributes ...attribute.KeyValue)
		Handler() http.Handler
		Shutdown(ctx context.Context) error
	}

	Descriptor struct {
		Description string
		Unit        string
	}
)

// DescriptorFor derives the unit of a counter from its key suffix.
func DescriptorFor(key string) Descriptor {
	switch {
	case strings.HasSuffix(key, ".duration"), strings.HasSuffix(key, "_seconds"):
		return Descriptor{Description: "accumulated time spent in " + key, Unit: "s"}
	case strings.HasSuffix(key, "_bytes"):
		return Descriptor{Description: "accumulated size of " + key, Unit: "By"}
	default:
		return Descriptor{Description: "number of " + key, Unit: "1"}
	}
}

func RegisterInt64Counter(m metric.Meter, descriptor Descriptor, name string) (metric.Int64Counter, error) {
	counter, err := m.Int64Counter(
		name,
		metric.WithDescription(descriptor.Description),
		metric.WithUnit(descriptor.Unit),
	)
	if err != nil {
		return nil, fmt.Errorf("registering int64 counter %q: %w", name, err)
	}

	return counter, nil
}

func RegisterFloat64Counter(m metric.Meter, descriptor Descriptor, name string) (metric.Float64Counter, error) {
	counter, err := m.Float64Counter(
		name,
		metric.WithDescription(descriptor.Description),
		metric.WithUnit(descriptor.Unit),
	)
	if err != nil {
		return nil, fmt.Errorf("registering float64 counter %q: %w", name, err)
	}

	return counter, nil
}
