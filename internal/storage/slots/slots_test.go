package slots

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/propertydesk/propertydesk/config"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	for _, driver := range []string{DriverMemory, DriverBolt, DriverSQLite, ""} {
		t.Run("driver="+driver, func(t *testing.T) {
			cfg := &config.Config{Storage: config.StorageConfig{
				Driver: driver,
				Path:   filepath.Join(dir, "slot-"+driver+".db"),
			}}

			slot, err := Open(context.Background(), cfg)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer slot.Close()

			if err := slot.Put(context.Background(), "properties", []byte(`[]`)); err != nil {
				t.Errorf("Put: %v", err)
			}
		})
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "floppy"}}

	if _, err := Open(context.Background(), cfg); err == nil {
		t.Error("Open with unknown driver succeeded")
	}
}

func TestOpen_DefaultPathsPerDriver(t *testing.T) {
	t.Chdir(t.TempDir())

	for _, driver := range []string{DriverBolt, DriverSQLite} {
		cfg := &config.Config{Storage: config.StorageConfig{Driver: driver}}
		slot, err := Open(context.Background(), cfg)
		if err != nil {
			t.Fatalf("Open(%s): %v", driver, err)
		}
		if err := slot.Put(context.Background(), "properties", []byte(`[]`)); err != nil {
			t.Errorf("Put(%s): %v", driver, err)
		}
		slot.Close()
	}

	for _, name := range []string{config.DefaultBoltPath, config.DefaultSQLitePath} {
		if _, err := os.Stat(name); err != nil {
			t.Errorf("default file %s: %v", name, err)
		}
	}
}
