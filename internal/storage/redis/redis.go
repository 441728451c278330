package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/propertydesk/propertydesk/internal/storage"
)

type Options struct {
	Addr     string
	Password string
	DB       int
	// Prefix is prepended to every key, separated by a colon.
	Prefix string
}

// Slot stores values as plain redis strings without expiry.
type Slot struct {
	client *redis.Client
	prefix string
}

func Open(ctx context.Context, opts Options) (*Slot, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", opts.Addr, err)
	}
	return &Slot{client: client, prefix: opts.Prefix}, nil
}

func (s *Slot) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

func (s *Slot) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *Slot) Put(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.key(key), value, 0).Err()
}

func (s *Slot) Close() error {
	return s.client.Close()
}
