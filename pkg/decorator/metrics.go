package decorator

import (
	"context"
	"strings"
	"time"

	"github.com/architeacher/filtersort/pkg/metrics"
	"go.opentelemetry.io/otel/attribute"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// queryMetricsDecorator counts executions as "queries.<name>" and their time
// as "queries.<name>.duration", both labelled with the outcome.
type queryMetricsDecorator[Q Query, R Result] struct {
	base   QueryHandler[Q, R]
	client metrics.Client
}

func (d queryMetricsDecorator[Q, R]) Execute(ctx context.Context, query Q) (result R, err error) {
	if d.client == nil {
		return d.base.Execute(ctx, query)
	}

	start := time.Now()
	key := "queries." + strings.ToLower(generateActionName(query))

	defer func() {
		outcome := attribute.String("outcome", outcomeSuccess)
		if err != nil {
			outcome = attribute.String("outcome", outcomeFailure)
		}

		d.client.Inc(ctx, key, int64(1), outcome)
		d.client.Inc(ctx, key+".duration", time.Since(start).Seconds(), outcome)
	}()

	return d.base.Execute(ctx, query)
}
