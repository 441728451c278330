package memory

import (
	"context"
	"sync"

	"github.com/propertydesk/propertydesk/internal/storage"
)

// Slot keeps values in process memory. The zero value is not usable; call New.
type Slot struct {
	mu     sync.RWMutex
	values map[string][]byte

	// PutErr, when set, is returned by every Put.
	PutErr error
}

func New() *Slot {
	return &Slot{values: make(map[string][]byte)}
}

func (s *Slot) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *Slot) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.PutErr != nil {
		return s.PutErr
	}
	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *Slot) Close() error {
	return nil
}
