package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dom/wardle/internal/app"
	"github.com/dom/wardle/internal/config"
	"github.com/dom/wardle/internal/logging"
	"github.com/dom/wardle/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs go to a file
	if err := os.MkdirAll(cfg.StateDir, 0o755); err != nil {
		fmt.Printf("Error creating state dir: %v\n", err)
		os.Exit(1)
	}
	logFile, err := os.OpenFile(filepath.Join(cfg.StateDir, "wardle-tui.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := logging.NewWithWriter(logFile, cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.HTTPTimeout)
	a, err := app.Open(ctx, cfg, logger)
	cancel()
	if err != nil {
		fmt.Printf("Error starting game: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	if err := tui.Run(a.Services.Game, a.Services.Catalog); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
