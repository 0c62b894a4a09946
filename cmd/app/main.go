// Command app serves the crafting planner over HTTP.
//
// @title Crafting Planner API
// @version 1.0
// @description Recipe graph queries, build lists and shopping lists for a crafting game catalog.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/craftplanner/internal/bootstrap"
	"github.com/osse101/craftplanner/internal/config"
	"github.com/osse101/craftplanner/internal/handler"
	"github.com/osse101/craftplanner/internal/logger"
	"github.com/osse101/craftplanner/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.InitLogger(cfg.Logger())

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Invalid environment", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	handler.InitValidator()

	ctx := context.Background()
	components, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize planner", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
		CatalogItems:   components.Catalog.Len(),
		Readiness:      components,
	}, components.Service)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop
	slog.Info("Received shutdown signal", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, srv, components.Sessions)
}
