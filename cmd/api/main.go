package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecomeal/backend/config"
	"github.com/ecomeal/backend/internal/server"
	"github.com/ecomeal/backend/internal/service"
	"github.com/ecomeal/backend/internal/store"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	if cfg.GeminiAPIKey == "" {
		logger.Warn().Msg("GEMINI_API_KEY is not set, model calls will fail")
	}

	st, err := store.NewCSVStore(cfg.DataDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize log store")
	}

	llm := service.NewLLMService(cfg)
	srv := server.NewServer(cfg, llm, st, logger)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		errChan <- srv.Start()
	}()

	// Block until we receive a signal or error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal().Err(err).Msg("server error")
		}
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown error")
	}
	logger.Info().Msg("server stopped")
}
