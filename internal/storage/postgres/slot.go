package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/propertydesk/propertydesk/internal/storage"
)

const createSlotsTable = `
	CREATE TABLE IF NOT EXISTS kv_slots (
		key        TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

// Slot stores snapshot values in the kv_slots table.
type Slot struct {
	db *Client
}

// NewSlot creates the kv_slots table when missing.
func NewSlot(ctx context.Context, db *Client) (*Slot, error) {
	if _, err := db.DB.ExecContext(ctx, createSlotsTable); err != nil {
		return nil, fmt.Errorf("create kv_slots: %w", err)
	}
	return &Slot{db: db}, nil
}

func (s *Slot) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM kv_slots WHERE key = $1`

	var value []byte
	err := s.db.DB.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *Slot) Put(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_slots (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP`

	_, err := s.db.DB.ExecContext(ctx, query, key, value)
	return err
}

func (s *Slot) Close() error {
	return s.db.Close()
}
