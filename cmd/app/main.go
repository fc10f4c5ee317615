package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/Despensa_Go/internal/auth"
	"github.com/osse101/Despensa_Go/internal/bootstrap"
	"github.com/osse101/Despensa_Go/internal/config"
	"github.com/osse101/Despensa_Go/internal/menu"
	"github.com/osse101/Despensa_Go/internal/naming"
	"github.com/osse101/Despensa_Go/internal/pantry"
	"github.com/osse101/Despensa_Go/internal/prepare"
	"github.com/osse101/Despensa_Go/internal/server"
	"github.com/osse101/Despensa_Go/internal/validation"
)

// ShutdownTimeout bounds the graceful shutdown sequence
const ShutdownTimeout = 15 * time.Second

// @title Despensa API
// @version 1.0
// @description Pantry, weekly menu and menu preparation service.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.RequireAuth(); err != nil {
		return err
	}
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		if cfg.IsProduction() {
			return err
		}
		slog.Debug("Environment incomplete", "error", err)
	}
	for _, warning := range warnings {
		slog.Warn("Configuration warning", "warning", warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resolver, err := naming.NewResolver(cfg.UnitsConfigPath, validation.NewSchemaValidator())
	if err != nil {
		return err
	}

	repos, err := bootstrap.InitializeRepositories(ctx, cfg)
	if err != nil {
		return err
	}

	idem, closeIdem, err := bootstrap.InitializeIdempotency(ctx, cfg)
	if err != nil {
		repos.DB.Close()
		return err
	}

	opts := server.Options{
		Port:               cfg.Port,
		Version:            cfg.Version,
		APIKey:             cfg.APIKey,
		TrustedProxies:     cfg.TrustedProxies,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		RateLimitBurst:     cfg.RateLimitBurst,
	}
	if cfg.JWTSecret != "" {
		opts.Tokens = auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	}

	srv := server.NewServer(opts, server.Services{
		DB:      repos.DB,
		Pantry:  pantry.NewService(repos.Pantry, resolver, idem),
		Menu:    menu.NewService(repos.Menu, resolver),
		Prepare: prepare.NewService(repos.Menu, repos.Pantry, cfg.PrepareLookupConcurrency),
		Units:   resolver,
	})

	sched := bootstrap.ScheduleUnitReload(cfg, resolver)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:           srv,
		Scheduler:        sched,
		Repositories:     repos,
		CloseIdempotency: closeIdem,
	})

	return err
}
