package decorator

import (
	"context"
	"time"

	"github.com/architeacher/filtersort/pkg/logger"
)

type queryLoggingDecorator[Q Query, R Result] struct {
	base   QueryHandler[Q, R]
	logger logger.Logger
}

func (d queryLoggingDecorator[Q, R]) Execute(ctx context.Context, query Q) (result R, err error) {
	log := d.logger.WithContext(ctx).
		With().
		Str("query", generateActionName(query)).
		Logger()

	start := time.Now()

	log.Debug().Msg("executing query")

	defer func() {
		event := log.Debug()
		if err != nil {
			event = log.Error().Err(err)
		}

		event.
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("query executed")
	}()

	return d.base.Execute(ctx, query)
}
