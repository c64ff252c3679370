package app

import (
	"context"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/dpetruhin/roomcast-server/internal/config"
	"github.com/dpetruhin/roomcast-server/internal/core"
	transporthttp "github.com/dpetruhin/roomcast-server/internal/transport/http"
)

// App wires the chat core to its HTTP transport. The registry, index,
// and broadcaster are constructed here and owned by the hub for the
// process lifetime; there are no package-level singletons.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	log             *zerolog.Logger
}

// New constructs the application with the provided configuration.
func New(cfg *config.Config, logger *zerolog.Logger) *App {
	rooms := core.NewRoomRegistry(logger)
	conns := core.NewConnIndex()
	cast := core.NewBroadcaster(rooms, transporthttp.EncodeMessage, logger)
	hub := core.NewHub(rooms, conns, cast, logger)

	server := transporthttp.NewServer(hub, cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		log:             logger,
	}
}

// Run starts the HTTP server and blocks until context cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-serverErr
	}
}
