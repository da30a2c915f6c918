package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/preyasha/autofill/internal/api"
	"github.com/preyasha/autofill/internal/config"
	"github.com/preyasha/autofill/internal/docindex"
	"github.com/preyasha/autofill/internal/extract"
	"github.com/preyasha/autofill/internal/locate"
	"github.com/preyasha/autofill/internal/pipeline"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	stats := extract.NewStats(cfg.StatsWindow)

	var (
		extractor extract.Extractor
		model     string
	)
	switch cfg.ExtractorBackend {
	case "ollama":
		client, err := extract.NewOllamaClient(cfg.OllamaHost, cfg.OllamaModel, stats)
		if err != nil {
			log.Error("failed to initialize ollama client", "error", err)
			os.Exit(1)
		}
		extractor = client
		model = cfg.OllamaModel
	default:
		client := extract.NewOpenAIClient(extract.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
			Stats:   stats,
		})
		extractor = client
		model = client.Model()
	}

	pipe := pipeline.New(extractor,
		docindex.Config{
			HeaderLines:   cfg.SectionHeaderLines,
			SignatureTail: cfg.SectionSignatureTail,
		},
		locate.Config{MinContextChars: cfg.MinContextChars},
		log,
	)

	srv := api.NewServer(pipe, stats, cfg.ExtractorBackend, model, log, cfg)

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

	log.Info("starting autofill", "port", cfg.Port, "backend", cfg.ExtractorBackend, "model", model)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
