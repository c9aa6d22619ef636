package runtime

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
)

// cleanupOrder releases the http server before what it depends on.
var cleanupOrder = []string{"http_server", "database", "tracer"}

type ServiceCtx struct {
	deps              *dependencies
	dependencyOptions []DependencyOption
	shutdownChannel   chan os.Signal
	serverCtx         context.Context
	serverStopFunc    context.CancelFunc
	serverReady       chan struct{}
}

func New(opts ...ServiceOption) *ServiceCtx {
	ctx := &ServiceCtx{
		shutdownChannel: make(chan os.Signal, 1),
	}

	for _, opt := range opts {
		opt(ctx)
	}

	return ctx
}

func (c *ServiceCtx) Run() {
	if err := c.build(); err != nil {
		log.Fatalf("failed to build service: %v", err)
	}

	listener, err := c.listen()
	if err != nil {
		log.Fatalf("failed to start service: %v", err)
	}

	c.serve(listener)
	c.shutdownHook()

	select {
	case <-c.serverCtx.Done():
	case <-c.shutdownChannel:
		defer close(c.shutdownChannel)
	}

	c.shutdown()
}

func (c *ServiceCtx) build() error {
	c.serverCtx, c.serverStopFunc = context.WithCancel(context.Background())

	var err error

	c.deps, err = initializeDependencies(c.serverCtx, c.dependencyOptions...)
	if err != nil {
		return fmt.Errorf("initializing dependencies: %w", err)
	}

	return nil
}

// listen binds before serving so a taken port fails Run instead of a goroutine.
func (c *ServiceCtx) listen() (net.Listener, error) {
	cfg := c.deps.config.HTTPServer
	addr := net.JoinHostPort(cfg.Host, strconv.FormatUint(uint64(cfg.Port), 10))

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", addr, err)
	}

	c.deps.infra.logger.Info().
		Str("address", listener.Addr().String()).
		Int("entities", len(c.deps.repos.registry.List())).
		Str("sort_mode", string(c.deps.config.Sorting.SortMode())).
		Str("operator_policy", string(c.deps.config.Filtering.Policy())).
		Msg("records service listening")

	return listener, nil
}

func (c *ServiceCtx) serve(listener net.Listener) {
	if c.serverReady != nil {
		close(c.serverReady)
	}

	go func() {
		err := c.deps.infra.httpServer.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			c.deps.infra.logger.Error().Err(err).Msg("http server stopped")
			c.serverStopFunc()
		}
	}()
}

func (c *ServiceCtx) shutdownHook() {
	signal.Notify(c.shutdownChannel, syscall.SIGINT, syscall.SIGTERM)
}

func (c *ServiceCtx) shutdown() {
	c.deps.infra.logger.Info().Msg("shutting down service...")

	c.serverStopFunc()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.deps.config.HTTPServer.ShutdownTimeout)
	defer cancel()

	go func() {
		<-shutdownCtx.Done()

		if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
			c.deps.infra.logger.Error().Msg("graceful shutdown timed out.. forcing exit.")
			os.Exit(1)
		}
	}()

	c.cleanup(shutdownCtx)

	c.deps.infra.logger.Info().Msg("service shutdown complete")
}

// WaitForServer blocks until the http server is listening. The service must be
// created with WithWaitingForServer, otherwise it returns immediately.
func (c *ServiceCtx) WaitForServer() {
	if c.serverReady != nil {
		<-c.serverReady
	}
}

func (c *ServiceCtx) cleanup(shutdownCtx context.Context) {
	for _, resource := range cleanupOrder {
		cleanupFn, ok := c.deps.cleanupFuncs[resource]
		if !ok {
			continue
		}

		if err := cleanupFn(shutdownCtx); err != nil {
			c.deps.infra.logger.Error().
				Err(err).
				Str("resource", resource).
				Msg("failed to release resource")

			continue
		}

		c.deps.infra.logger.Debug().Str("resource", resource).Msg("resource released")
	}
}
