package postgres

import (
	"context"
	"fmt"
	"net/url"

	"github.com/architeacher/filtersort/pkg/logger"
	"github.com/architeacher/filtersort/services/svc-records/internal/config"
	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
	"github.com/cenkalti/backoff/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool connects to Postgres and pings it, retrying the ping with
// exponential backoff up to cfg.ConnectRetries extra attempts.
func NewPool(ctx context.Context, cfg config.Database, log logger.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(ConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolConfig.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: creating connection pool: %w", model.ErrDatabaseConnection, err)
	}

	if err := Ping(ctx, pool, cfg.ConnectRetries, log); err != nil {
		pool.Close()

		return nil, err
	}

	return pool, nil
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Ping retries p.Ping until it succeeds, ctx ends or retries are used up.
func Ping(ctx context.Context, p pinger, retries uint, log logger.Logger) error {
	attempt := 0

	operation := func() (struct{}, error) {
		attempt++

		if err := p.Ping(ctx); err != nil {
			log.Warn().
				Err(err).
				Int("attempt", attempt).
				Msg("database not reachable yet")

			return struct{}{}, err
		}

		return struct{}{}, nil
	}

	if _, err := backoff.Retry(
		ctx,
		operation,
		backoff.WithMaxTries(retries+1),
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
	); err != nil {
		return fmt.Errorf("%w: pinging database: %w", model.ErrDatabaseConnection, err)
	}

	return nil
}

func ConnString(cfg config.Database) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.Username, cfg.Password),
		Host:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:   cfg.Database,
	}

	q := u.Query()
	q.Set("sslmode", cfg.SSLMode)
	u.RawQuery = q.Encode()

	return u.String()
}
