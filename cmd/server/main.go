package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/linkgest/internal/api"
	"github.com/dgallion1/linkgest/internal/config"
	"github.com/dgallion1/linkgest/internal/parser"
	"github.com/dgallion1/linkgest/internal/pipeline"
	"github.com/dgallion1/linkgest/internal/stats"
	"github.com/dgallion1/linkgest/internal/urlmatch"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	registry := parser.DefaultRegistry(parser.Options{
		CSVFieldSizeLimit:    cfg.CSVFieldSizeLimit,
		PDFFallbackPdftotext: cfg.PDFFallbackPdftotext,
	})
	extractor := pipeline.NewExtractor(registry, urlmatch.New(), cfg.StrictFormats)
	runStats := stats.NewRunStats(cfg.StatsWindow)

	srv := api.NewServer(registry, extractor, runStats, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
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
	}()

	log.Info("starting linkgest server", "port", cfg.Port, "formats", registry.Extensions())
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
