// Package main is the entry point for the tickerdeck gateway, a thin
// resilience layer between the front end and the Groww market-data API.
//
// Startup sequence:
//  1. Load configuration from environment variables (.env supported)
//  2. Initialize structured logging
//  3. Resolve upstream credentials to a single access token (or none)
//  4. Build the upstream client: live with a token, safe mode without
//  5. Start the HTTP server and serve until SIGINT/SIGTERM
//
// Credentials are resolved exactly once; obtaining a fresh token requires a
// restart. The only fatal startup path is having no credential of any shape.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tickerdeck/gateway/internal/auth"
	"github.com/tickerdeck/gateway/internal/cache"
	"github.com/tickerdeck/gateway/internal/clients/groww"
	"github.com/tickerdeck/gateway/internal/config"
	"github.com/tickerdeck/gateway/internal/market"
	"github.com/tickerdeck/gateway/internal/server"
	"github.com/tickerdeck/gateway/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting tickerdeck gateway")

	// Configuration failure is the one fatal path: with no credential of any
	// shape there is nothing to resolve and nothing to degrade to.
	if !cfg.HasAnyCredential() {
		log.Fatal().Msg("No upstream credentials configured; set GROWW_API_TOKEN or GROWW_API_KEY")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	result, ok := auth.Resolve(ctx, cfg, groww.NewExchanger(log), log)
	cancel()
	if ok {
		log.Info().Str("source", result.Source).Msg("Credentials resolved")
	}

	client := groww.Build(result.Token, ok, log)

	catalog, err := market.LoadCatalog()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load instrument catalog")
	}

	srv := server.New(server.Config{
		Log:     log,
		Port:    cfg.Port,
		DevMode: cfg.DevMode,
		Client:  client,
		Cache:   cache.New(log),
		Catalog: catalog,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Gateway stopped")
}
