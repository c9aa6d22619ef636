package metrics

import (
	"context"
	"net/http"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MeterClient records every Inc call on a lazily created OTEL counter named
// after the key. Integer values go to Int64 counters, floats to Float64 ones.
type MeterClient struct {
	meter metric.Meter

	mu            sync.Mutex
	intCounters   map[string]metric.Int64Counter
	floatCounters map[string]metric.Float64Counter
}

func NewMeterClient(meter metric.Meter) *MeterClient {
	return &MeterClient{
		meter:         meter,
		intCounters:   make(map[string]metric.Int64Counter),
		floatCounters: make(map[string]metric.Float64Counter),
	}
}

func (c *MeterClient) Inc(ctx context.Context, key string, value any, attributes ...attribute.KeyValue) {
	opts := metric.WithAttributes(attributes...)

	switch v := value.(type) {
	case int:
		if counter := c.intCounter(key); counter != nil {
			counter.Add(ctx, int64(v), opts)
		}
	case int64:
		if counter := c.intCounter(key); counter != nil {
			counter.Add(ctx, v, opts)
		}
	case float64:
		if counter := c.floatCounter(key); counter != nil {
			counter.Add(ctx, v, opts)
		}
	}
}

// Handler is not served: OTEL readers push through their own exporters.
func (c *MeterClient) Handler() http.Handler {
	return http.NotFoundHandler()
}

func (c *MeterClient) Shutdown(_ context.Context) error {
	return nil
}

func (c *MeterClient) intCounter(key string) metric.Int64Counter {
	c.mu.Lock()
	defer c.mu.Unlock()

	if counter, ok := c.intCounters[key]; ok {
		return counter
	}

	counter, err := RegisterInt64Counter(c.meter, DescriptorFor(key), key)
	if err != nil {
		return nil
	}

	c.intCounters[key] = counter

	return counter
}

func (c *MeterClient) floatCounter(key string) metric.Float64Counter {
	c.mu.Lock()
	defer c.mu.Unlock()

	if counter, ok := c.floatCounters[key]; ok {
		return counter
	}

	counter, err := RegisterFloat64Counter(c.meter, DescriptorFor(key), key)
	if err != nil {
		return nil
	}

	c.floatCounters[key] = counter

	return counter
}
