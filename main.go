package main

import (
	"context"
	"embed"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/racefuel/racefuel-api/internal/api"
)

//go:embed sql/schema/*.sql
var embedMigrations embed.FS

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := &api.APIConfig{}
	if err := cfg.Init(".env", ""); err != nil {
		slog.Error("could not load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	if err := cfg.ConnectToDB(ctx, embedMigrations, "sql/schema"); err != nil {
		slog.Error("could not connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer cfg.Close()

	racefuel := &http.Server{
		Addr:    ":" + cfg.Port(),
		Handler: cfg.Handler(),
	}

	// start server
	go func() {
		slog.Info("racefuel api listening", slog.String("addr", racefuel.Addr))
		if err := racefuel.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped unexpectedly", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err := racefuel.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", slog.Any("error", err))
	}
}
