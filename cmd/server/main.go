package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/propertydesk/propertydesk/config"
	"github.com/propertydesk/propertydesk/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg, os.Stderr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
