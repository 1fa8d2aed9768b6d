package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/govardhan-06/pdf-upload-extract-system/internal/api"
	"github.com/govardhan-06/pdf-upload-extract-system/internal/config"
	"github.com/govardhan-06/pdf-upload-extract-system/internal/extract"
)

func main() {
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	extractor := extract.NewService(extract.Config{
		TextDensityThreshold: cfg.TextDensityThreshold,
		MinWordCount:         cfg.MinWordCount,
		PageWorkers:          cfg.PageWorkers,
		FallbackPdftotext:    cfg.FallbackPdftotext,
		CacheTTL:             cfg.ResultCacheTTL,
	}, log)

	srv := api.NewServer(extractor, log, cfg)

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
		srv.Close()
	}()

	log.Info("starting extraction backend", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
