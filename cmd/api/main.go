package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zoo-inventory/internal/adapters/storage/sqlstore"
	"zoo-inventory/internal/middleware"
	"zoo-inventory/internal/platform/config"
	"zoo-inventory/internal/platform/httpclient"
	"zoo-inventory/internal/platform/logger"
	"zoo-inventory/internal/router"
)

// @title Zoo Inventory API
// @version 1.0
// @description Inventario del zoológico: animales, cuidados y cuidados por animal.
// @BasePath /
func main() {
	configPath := flag.String("config", os.Getenv("ZOO_CONFIG"), "ruta al archivo YAML de configuración")
	healthcheck := flag.Bool("healthcheck", false, "consulta /health del servidor local y sale (para HEALTHCHECK del contenedor)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if *healthcheck {
		os.Exit(probe(cfg.Server))
	}

	log := logger.New(logger.Options{
		Level:    logger.ParseLevel(cfg.Logging.Level),
		Format:   logger.ParseFormat(cfg.Logging.Format),
		App:      cfg.Logging.App,
		Buffered: cfg.Logging.Buffered,
	})
	defer func() { _ = log.Close() }()

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", map[string]any{"err": err})
		_ = log.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store *sqlstore.Provider
	if cfg.Database.Driver != config.DriverMemory {
		opened, err := sqlstore.Open(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer opened.Close()
		store = opened

		if cfg.Database.BootstrapSchema {
			if err := store.EnsureSchema(ctx); err != nil {
				return fmt.Errorf("bootstrap schema: %w", err)
			}
			log.Info("schema ready", nil)
		}
		log.Info("database connected", map[string]any{
			"driver": cfg.Database.Driver,
			"host":   cfg.Database.Host,
			"name":   cfg.Database.Name,
		})
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}, log)
		defer limiter.Stop()
	}

	srv := &http.Server{
		Addr: cfg.Server.Addr(),
		Handler: router.NewRouter(router.Options{
			Config:      cfg,
			Logger:      log,
			Store:       store,
			RateLimiter: limiter,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func probe(srv config.ServerConfig) int {
	c, err := httpclient.New(fmt.Sprintf("http://127.0.0.1:%d", srv.Port), 3*time.Second)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := c.Healthy(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
