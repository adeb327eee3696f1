// Package main is the entry point for the desert scene viewer.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/fbarrios/desertscene/internal/config"
	"github.com/fbarrios/desertscene/internal/game"
	"github.com/fbarrios/desertscene/internal/logger"
)

// Exit codes by setup stage, so scripts can tell failures apart.
const (
	exitConfig   = 1
	exitWindow   = 2
	exitRenderer = 3
	exitTexture  = 4
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(exitConfig)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(exitConfig)
	}
	defer logger.Sync()

	logger.Info("=== Desert Scene ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Create and run the scene
	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to initialize", zap.Error(err))
		os.Exit(setupExitCode(err))
	}
	defer g.Close()

	// Run the main loop
	if err := g.Run(); err != nil {
		logger.Error("runtime error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("closed normally")
}

// setupExitCode maps a setup failure to its stage's exit code.
func setupExitCode(err error) int {
	switch {
	case errors.Is(err, game.ErrWindow):
		return exitWindow
	case errors.Is(err, game.ErrRenderer):
		return exitRenderer
	case errors.Is(err, game.ErrTexture):
		return exitTexture
	default:
		return 1
	}
}
