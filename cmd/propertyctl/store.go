package main

import (
	"context"
	"fmt"
	"os"

	"github.com/propertydesk/propertydesk/config"
	"github.com/propertydesk/propertydesk/internal/core/property"
	"github.com/propertydesk/propertydesk/internal/logging"
	"github.com/propertydesk/propertydesk/internal/storage/slots"
)

var storageFlags struct {
	driver string
	path   string
}

// loadConfig reads the environment and applies the storage flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if storageFlags.driver != "" {
		cfg.Storage.Driver = storageFlags.driver
	}
	if storageFlags.path != "" {
		cfg.Storage.Path = storageFlags.path
	}
	return cfg, nil
}

// openStore opens the configured slot and restores the store from it. The
// returned function closes the slot.
func openStore(ctx context.Context) (*property.Store, *config.Config, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	logger := logging.New(cfg.Log, os.Stderr)

	slot, err := slots.Open(ctx, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open storage: %w", err)
	}

	store := property.NewStore(slot,
		property.WithLogger(logger),
		property.WithKey(cfg.Storage.Key),
	)
	store.Load(ctx)

	if status := store.Status(); status.Error != "" {
		fmt.Fprintf(os.Stderr, "warning: %s; showing sample properties\n", status.Error)
	}

	closeFn := func() {
		if status := store.Status(); status.Warning != "" {
			fmt.Fprintf(os.Stderr, "warning: %s\n", status.Warning)
		}
		_ = slot.Close()
	}
	return store, cfg, closeFn, nil
}
