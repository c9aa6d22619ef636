package metrics

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
)

// PrometheusClient exposes every Inc key as a Prometheus counter on its own
// registry. Attribute keys become label names; a key keeps the label set it
// was first seen with and calls with a different set are dropped.
type PrometheusClient struct {
	namespace string
	registry  *prometheus.Registry

	mu       sync.Mutex
	counters map[string]*prometheus.CounterVec
	labels   map[string][]string
}

func NewPrometheusClient(namespace string) *PrometheusClient {
	return &PrometheusClient{
		namespace: sanitizeMetricName(namespace),
		registry:  prometheus.NewRegistry(),
		counters:  make(map[string]*prometheus.CounterVec),
		labels:    make(map[string][]string),
	}
}

func (c *PrometheusClient) Inc(_ context.Context, key string, value any, attributes ...attribute.KeyValue) {
	var delta float64

	switch v := value.(type) {
	case int:
		delta = float64(v)
	case int64:
		delta = float64(v)
	case float64:
		delta = v
	default:
		return
	}

	if delta < 0 {
		return
	}

	names := make([]string, len(attributes))
	values := make([]string, len(attributes))

	for i, attr := range attributes {
		names[i] = sanitizeMetricName(string(attr.Key))
		values[i] = attr.Value.Emit()
	}

	counter := c.counter(key, names)
	if counter == nil {
		return
	}

	counter.WithLabelValues(values...).Add(delta)
}

func (c *PrometheusClient) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *PrometheusClient) Shutdown(_ context.Context) error {
	return nil
}

func (c *PrometheusClient) counter(key string, labelNames []string) *prometheus.CounterVec {
	c.mu.Lock()
	defer c.mu.Unlock()

	if counter, ok := c.counters[key]; ok {
		if !sameLabels(c.labels[key], labelNames) {
			return nil
		}

		return counter
	}

	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: c.namespace,
		Name:      sanitizeMetricName(key) + "_total",
		Help:      "Count of " + key,
	}, labelNames)

	if err := c.registry.Register(counter); err != nil {
		return nil
	}

	c.counters[key] = counter
	c.labels[key] = labelNames

	return counter
}

func sameLabels(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func sanitizeMetricName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
