// Package main is the entry point for the cubeview widget.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/cubeview/internal/config"
	"github.com/Faultbox/cubeview/internal/logger"
	"github.com/Faultbox/cubeview/internal/widget"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== cubeview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Create and run the widget
	w, err := widget.New(cfg)
	if err != nil {
		logger.Error("failed to create widget", zap.Error(err))
		os.Exit(1)
	}
	defer w.Close()

	if err := w.Run(); err != nil {
		logger.Error("widget error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("widget closed normally")
}
