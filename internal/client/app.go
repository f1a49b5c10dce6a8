package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-light-wallet/internal/app"
	"github.com/MKhiriev/go-light-wallet/internal/config"
	"github.com/MKhiriev/go-light-wallet/internal/engine"
	handler "github.com/MKhiriev/go-light-wallet/internal/handler/http"
	"github.com/MKhiriev/go-light-wallet/internal/logger"
	"github.com/MKhiriev/go-light-wallet/internal/server"
	"github.com/MKhiriev/go-light-wallet/internal/service"
	"github.com/MKhiriev/go-light-wallet/internal/session"
	"github.com/MKhiriev/go-light-wallet/internal/tui"
	"github.com/MKhiriev/go-light-wallet/internal/workers"
	"github.com/MKhiriev/go-light-wallet/models"
)

type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	server   server.Server
	ui       *tui.TUI
	out      io.Writer
	logger   *logger.Logger
}

// NewApp wires the session registry, the services, the console and, when
// an address is configured, the control API around factory.
func NewApp(factory engine.Factory, cfg *config.ClientConfig, build models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	registry := session.NewRegistry(logger)

	services, err := service.NewClientServices(factory, registry, cfg, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating client services: %w", err)
	}

	a := &App{
		cfg:      cfg,
		services: services,
		out:      os.Stdout,
		logger:   logger,
	}

	if cfg.Server.ControlAddress != "" {
		h := handler.NewHandler(services, cfg.App, logger)
		a.server, err = server.NewServer(h.Init(), cfg.Server, logger)
		if err != nil {
			services.Close()
			return nil, fmt.Errorf("error creating control API server: %w", err)
		}
	}

	if !cfg.Headless {
		a.ui = tui.New(services, build, cfg.Workers.PollInterval, logger)
	}

	return a, nil
}

// Run initializes the session and serves until ctx ends, a stop signal
// arrives or the console is closed. The session is torn down on return.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	defer a.services.Close()
	defer a.services.LifecycleService.Deinitialize()

	initResult := service.Outcome(a.services.LifecycleService.Initialize(ctx))
	a.logger.Info().Str("func", "App.Run").Str("state", a.services.LifecycleService.State().String()).Msg("session initialized")

	if a.services.LifecycleService.State() == session.StateActive {
		if res := a.services.CommandService.Exec(ctx, "sync", ""); res != app.MsgOK {
			a.logger.Warn().Str("func", "App.Run").Str("result", res).Msg("initial sync was not started")
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	if a.server != nil {
		g.Go(func() error {
			err := a.server.RunServer(gctx)
			if err != nil {
				return fmt.Errorf("control API: %w", err)
			}
			return nil
		})
	}

	if a.ui != nil {
		g.Go(func() error {
			// closing the console ends the client
			defer cancel()
			return a.ui.Run(gctx, initResult)
		})
	} else {
		fmt.Fprintln(a.out, initResult)
		poller := workers.NewStatusPoller(a.services.CommandService, a.cfg.Workers.PollInterval, a.out, a.logger)
		g.Go(func() error {
			workers.NewWorkers(poller).Run(gctx)
			return nil
		})
	}

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		a.logger.Err(err).Str("func", "App.Run").Msg("client stopped with error")
		return err
	}

	a.logger.Info().Str("func", "App.Run").Msg("client stopped")
	return nil
}
