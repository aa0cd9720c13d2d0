package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"datalab/internal/cli"
	"datalab/internal/config"
	"datalab/internal/logbook"
	"datalab/internal/remote"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	// The resolver starts the one-time base-address discovery in the
	// background; the first request waits for it to finish
	resolver := config.NewResolver(cfg)
	client := remote.New(resolver, cfg.RequestTimeout)

	deps := &cli.Deps{
		Config: cfg,
		Client: client,
		Book:   logbook.New(),
	}

	if err := cli.ExecuteContext(ctx, deps); err != nil {
		os.Exit(1)
	}
}
