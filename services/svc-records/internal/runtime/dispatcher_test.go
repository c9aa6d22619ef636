package runtime

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/architeacher/filtersort/pkg/logger"
	"github.com/architeacher/filtersort/services/svc-records/internal/config"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates service context with default values", func(t *testing.T) {
		t.Parallel()

		serviceCtx := New()

		require.NotNil(t, serviceCtx)
		require.NotNil(t, serviceCtx.shutdownChannel)
		require.Nil(t, serviceCtx.deps)
		require.Nil(t, serviceCtx.serverReady)
		require.Empty(t, serviceCtx.dependencyOptions)
	})

	t.Run("creates service context with options", func(t *testing.T) {
		t.Parallel()

		ch := make(chan os.Signal, 1)
		serviceCtx := New(
			WithServiceTermination(ch),
			WithWaitingForServer(),
			WithDependencyOptions(func(*dependencies) error { return nil }),
		)

		require.NotNil(t, serviceCtx)
		require.Equal(t, ch, serviceCtx.shutdownChannel)
		require.NotNil(t, serviceCtx.serverReady)
		require.Len(t, serviceCtx.dependencyOptions, 1)
	})
}

func TestCleanup(t *testing.T) {
	t.Parallel()

	var order []string

	record := func(name string, err error) func(context.Context) error {
		return func(context.Context) error {
			order = append(order, name)

			return err
		}
	}

	serviceCtx := New()
	serviceCtx.deps = &dependencies{
		config: &config.ServiceConfig{},
		infra:  infrastructureDep{logger: logger.NewTestLogger()},
		cleanupFuncs: map[string]func(context.Context) error{
			"tracer":      record("tracer", nil),
			"database":    record("database", errors.New("already closed")),
			"http_server": record("http_server", nil),
		},
	}

	serviceCtx.cleanup(context.Background())

	require.Equal(t, []string{"http_server", "database", "tracer"}, order)
}
