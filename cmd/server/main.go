package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dom/wardle/internal/api"
	"github.com/dom/wardle/internal/app"
	"github.com/dom/wardle/internal/config"
	"github.com/dom/wardle/internal/logging"
	"github.com/dom/wardle/internal/websocket"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger := logging.New(cfg.LogLevel, cfg.Environment)

	// Catalog fetch is bounded by the HTTP timeout per request
	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.HTTPTimeout)
	a, err := app.Open(ctx, cfg, logger)
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start app")
	}
	defer a.Close()

	// Initialize WebSocket hub
	hub := websocket.NewHub(a.Services.Game, logger)
	go hub.Run()

	// Initialize router
	router := api.NewRouter(a.Services, hub, cfg, logger)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info().Str("port", cfg.Port).Bool("admin", cfg.AdminEnabled()).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}
	hub.Stop()

	logger.Info().Msg("server stopped")
}
