package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/status-im/crypto-insight/config"
	"github.com/status-im/crypto-insight/core"
	"github.com/status-im/crypto-insight/logging"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logrus.Fatalf("Error loading config: %v", err)
	}

	if err := logging.Configure(cfg.Log); err != nil {
		logrus.Fatalf("Error configuring logging: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("Received shutdown signal, stopping services...")
		cancel()
	}()

	registry, err := core.Setup(ctx, cfg)
	if err != nil {
		logrus.Fatalf("Failed to setup services: %v", err)
	}

	if err := registry.StartAll(ctx); err != nil {
		logrus.Fatalf("Failed to start services: %v", err)
	}

	<-ctx.Done()
	registry.StopAll()
	logrus.Info("All services stopped")
}
