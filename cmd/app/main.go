package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/NumeneraItems_Go/internal/bootstrap"
	"github.com/osse101/NumeneraItems_Go/internal/config"
	"github.com/osse101/NumeneraItems_Go/internal/i18n"
	"github.com/osse101/NumeneraItems_Go/internal/server"
	"github.com/osse101/NumeneraItems_Go/internal/sse"
	"github.com/osse101/NumeneraItems_Go/internal/validation"
)

// @title Numenera Items API
// @version 1.0
// @description Item variants, rule tables and the item library for Numenera character sheets.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		log.Fatalf("Item service failed: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		logFile.Close()
		return err
	}
	for _, w := range warnings {
		slog.Warn(bootstrap.LogMsgEnvironmentWarning, "warning", w)
	}

	bundle, err := i18n.LoadEmbedded(i18n.Options{CacheSize: cfg.LocaleCacheSize, CacheTTL: cfg.LocaleCacheTTL})
	if err != nil {
		logFile.Close()
		return fmt.Errorf("failed to load locales: %w", err)
	}
	schemas := validation.NewSchemaValidator()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.LoadLibrary(ctx, cfg, bundle, schemas)
	if err != nil {
		logFile.Close()
		return err
	}

	bus := bootstrap.InitializeEventSystem()
	hub := sse.NewHub()
	hub.Start()
	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{EventBus: bus, Hub: hub}); err != nil {
		hub.Stop()
		logFile.Close()
		return err
	}

	srv := server.NewServer(cfg, server.Dependencies{
		Bundle:  bundle,
		Bus:     bus,
		Store:   store,
		Schemas: schemas,
		Hub:     hub,
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server:  srv,
			Hub:     hub,
			LogFile: logFile,
		})
		return nil
	})

	return g.Wait()
}
