package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/wxgest/internal/api"
	"github.com/dgallion1/wxgest/internal/catalog"
	"github.com/dgallion1/wxgest/internal/config"
	"github.com/dgallion1/wxgest/internal/extract"
	"github.com/dgallion1/wxgest/internal/pipeline"
)

func main() {
	level := new(slog.LevelVar)
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	level.Set(cfg.SlogLevel())

	// Load the section catalog.
	registry, err := catalog.NewRegistry(cfg.CatalogPath, log.With("component", "catalog"))
	if err != nil {
		log.Error("failed to load catalog", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}
	var watcher io.Closer
	if cfg.CatalogAutoReload {
		watcher, err = registry.Watch(cfg.CatalogReloadDebounce)
		if err != nil {
			log.Error("failed to watch catalog", "path", cfg.CatalogPath, "error", err)
			os.Exit(1)
		}
	}

	// Initialize pipeline.
	stats := extract.NewStats(cfg.StatsWindow)
	runner := pipeline.NewRunner(registry, stats, log, cfg.DefaultLanguage, cfg.MaxConcurrentSections)

	// Initialize HTTP server.
	srv := api.NewServer(runner, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		if watcher != nil {
			watcher.Close()
		}
	}()

	log.Info("starting wxgest",
		"port", cfg.Port,
		"sections", registry.Current().Names(),
		"default_language", cfg.DefaultLanguage,
	)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
