package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/propertydesk/propertydesk/internal/storage/storagetest"
)

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "slots.sqlite"))
	storagetest.Run(t, s)
}

func TestMigrate_Idempotent(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "slots.sqlite"))
	ctx := context.Background()

	if err := Migrate(ctx, s.db); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}

	var versions int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&versions); err != nil {
		t.Fatal(err)
	}
	if versions != len(migrations) {
		t.Errorf("schema_migrations has %d rows, want %d", versions, len(migrations))
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.sqlite")
	ctx := context.Background()

	s, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Put(ctx, "properties", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened := openTestStore(t, path)
	got, err := reopened.Get(ctx, "properties")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `[{"id":"1"}]` {
		t.Errorf("Get = %s", got)
	}
}
