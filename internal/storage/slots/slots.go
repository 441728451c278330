// Package slots opens the storage driver named in the configuration.
package slots

import (
	"context"
	"fmt"

	"github.com/propertydesk/propertydesk/config"
	"github.com/propertydesk/propertydesk/internal/storage"
	"github.com/propertydesk/propertydesk/internal/storage/bolt"
	"github.com/propertydesk/propertydesk/internal/storage/memory"
	"github.com/propertydesk/propertydesk/internal/storage/postgres"
	"github.com/propertydesk/propertydesk/internal/storage/redis"
	"github.com/propertydesk/propertydesk/internal/storage/sqlite"
)

const (
	DriverBolt     = "bolt"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

func Open(ctx context.Context, cfg *config.Config) (storage.Slot, error) {
	switch cfg.Storage.Driver {
	case DriverBolt, "":
		slot, err := bolt.Open(cfg.Storage.FilePath())
		if err != nil {
			return nil, err
		}
		return slot, nil
	case DriverSQLite:
		slot, err := sqlite.Open(ctx, cfg.Storage.FilePath())
		if err != nil {
			return nil, err
		}
		return slot, nil
	case DriverPostgres:
		client, err := postgres.NewClient(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}
		slot, err := postgres.NewSlot(ctx, client)
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		return slot, nil
	case DriverRedis:
		slot, err := redis.Open(ctx, redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			return nil, err
		}
		return slot, nil
	case DriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
