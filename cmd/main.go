package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/okian/playerdata/internal/adapters/http/api"
	"github.com/okian/playerdata/internal/adapters/http/swagger"
	service "github.com/okian/playerdata/internal/app"
	"github.com/okian/playerdata/internal/config"
	"github.com/okian/playerdata/internal/domain/convert"
	"github.com/okian/playerdata/pkg/logger"
	"github.com/okian/playerdata/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		// Logger may not be configured yet.
		os.Stderr.WriteString("playerdata: " + err.Error() + "\n")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	if err := logger.InitWith(os.Stdout, cfg.LogFormat); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return fmt.Errorf("set log level: %w", err)
	}
	log := logger.Get()

	svc, err := newService(cfg, log)
	if err != nil {
		return err
	}
	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("start service: %w", err)
	}
	defer svc.Stop()

	metrics.StartSystemCollector(ctx)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(cfg, svc, log),
		ReadTimeout:       readTimeout,
		WriteTimeout:      cfg.RequestTimeout() + readTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}
	log.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
	return nil
}

// newService wires the converter and service from configuration.
func newService(cfg *config.Config, log logger.Logger) (*service.Service, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	conv := convert.New(
		convert.WithUpstreamLocation(loc),
		convert.WithLogger(log.Named("convert")),
	)

	return service.New(
		service.WithLogger(log),
		service.WithConverter(conv),
		service.WithMaxInputBytes(cfg.MaxInputBytes),
		service.WithSnapshotHistory(cfg.SnapshotHistory),
		service.WithDedupeSize(cfg.DedupeSize),
	), nil
}

// newRouter mounts the API and documentation routes.
func newRouter(cfg *config.Config, svc *service.Service, log logger.Logger) http.Handler {
	r := chi.NewRouter()

	api.NewServer(svc,
		api.WithLogger(log.Named("http")),
		api.WithRequestTimeout(cfg.RequestTimeout()),
	).Register(r)
	swagger.Register(r)

	return r
}
