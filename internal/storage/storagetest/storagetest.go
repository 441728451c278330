// Package storagetest checks that a storage.Slot implementation behaves the
// way the property store expects.
package storagetest

import (
	"context"
	"errors"
	"testing"

	"github.com/propertydesk/propertydesk/internal/storage"
)

// Run exercises slot with keys unique to t. The slot is not closed.
func Run(t *testing.T, slot storage.Slot) {
	t.Helper()
	ctx := context.Background()
	key := "storagetest-" + t.Name()

	t.Run("missing key", func(t *testing.T) {
		_, err := slot.Get(ctx, key+"-missing")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("Get missing key: err = %v, want storage.ErrNotFound", err)
		}
	})

	t.Run("put then get", func(t *testing.T) {
		if err := slot.Put(ctx, key, []byte(`[{"id":"1"}]`)); err != nil {
			t.Fatalf("Put: %v", err)
		}
		got, err := slot.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if string(got) != `[{"id":"1"}]` {
			t.Errorf("Get = %s", got)
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		if err := slot.Put(ctx, key, []byte(`[{"id":"1"},{"id":"2"}]`)); err != nil {
			t.Fatalf("Put: %v", err)
		}
		if err := slot.Put(ctx, key, []byte(`[]`)); err != nil {
			t.Fatalf("Put: %v", err)
		}
		got, err := slot.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if string(got) != `[]` {
			t.Errorf("Get = %s, want []", got)
		}
	})

	t.Run("returned value is a copy", func(t *testing.T) {
		value := []byte(`["a"]`)
		if err := slot.Put(ctx, key, value); err != nil {
			t.Fatalf("Put: %v", err)
		}
		value[2] = 'z'

		got, err := slot.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		got[2] = 'y'

		again, err := slot.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if string(again) != `["a"]` {
			t.Errorf("stored value was mutated through a caller slice: %s", again)
		}
	})
}
