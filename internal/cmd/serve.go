package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"playtrack/internal/config"
	"playtrack/internal/httpapi"
	"playtrack/internal/lockfile"
	"playtrack/internal/logging"
)

// ServeCmd runs the session tracker and the stats API in the foreground
type ServeCmd struct {
	Addr string `help:"Bind address for the stats API (overrides settings.json)"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	// The daemon owns stderr rather than a TUI, so log there
	logging.InitializeConsole(cli.Debug)

	lock, err := lockfile.Acquire(config.GetLockPath())
	if err != nil {
		if errors.Is(err, lockfile.ErrAlreadyLocked) {
			return fmt.Errorf("another playtrack serve is already running (lock: %s)", config.GetLockPath())
		}
		return fmt.Errorf("failed to acquire daemon lock: %w", err)
	}
	defer lock.Release()

	addr := s.Addr
	if addr == "" && cli.settings != nil {
		addr = cli.settings.HTTPAddress()
	}
	if addr == "" {
		addr = config.DefaultHTTPAddr
	}

	if players, err := cli.Container.Directory.Players(context.Background()); err == nil && len(players) == 0 {
		logging.Logger.Warn("No players configured; add them to settings.json to track sessions")
	}

	router := httpapi.NewRouter(
		cli.Container.StatsService,
		cli.Container.Board,
		cli.Container.Directory,
		logging.Logger,
	)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return cli.Container.Tracker.Run(gctx)
	})

	g.Go(func() error {
		logging.Logger.Info("Stats API listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("stats API failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logging.Logger.Info("Shutdown complete")
	return nil
}
