package config

import (
	"testing"
	"time"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Storage.Driver != "bolt" {
		t.Errorf("Storage.Driver = %q, want bolt", cfg.Storage.Driver)
	}
	if cfg.Storage.Key != "properties" {
		t.Errorf("Storage.Key = %q, want properties", cfg.Storage.Key)
	}
	if cfg.Storage.Path != "" {
		t.Errorf("Storage.Path = %q, want empty", cfg.Storage.Path)
	}
	if cfg.Form.EditDelay != 500*time.Millisecond {
		t.Errorf("Form.EditDelay = %v, want 500ms", cfg.Form.EditDelay)
	}
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("PROPERTYDESK_SERVER_PORT", "9090")
	t.Setenv("PROPERTYDESK_STORAGE_DRIVER", "sqlite")
	t.Setenv("PROPERTYDESK_STORAGE_PATH", "/tmp/props.sqlite")
	t.Setenv("PROPERTYDESK_FORM_EDIT_DELAY", "2s")
	t.Setenv("PROPERTYDESK_REDIS_DB", "3")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Storage.Driver != "sqlite" {
		t.Errorf("Storage.Driver = %q, want sqlite", cfg.Storage.Driver)
	}
	if cfg.Storage.Path != "/tmp/props.sqlite" {
		t.Errorf("Storage.Path = %q", cfg.Storage.Path)
	}
	if cfg.Form.EditDelay != 2*time.Second {
		t.Errorf("Form.EditDelay = %v, want 2s", cfg.Form.EditDelay)
	}
	if cfg.Redis.DB != 3 {
		t.Errorf("Redis.DB = %d, want 3", cfg.Redis.DB)
	}
}

func TestParse_InvalidDuration(t *testing.T) {
	t.Setenv("PROPERTYDESK_FORM_EDIT_DELAY", "soon")

	if _, err := Parse(); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestDatabaseConfig_ConnectionString(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "agent",
		Password: "secret",
		Name:     "listings",
		SSLMode:  "disable",
	}

	want := "host=db port=5433 user=agent password=secret dbname=listings sslmode=disable"
	if got := cfg.ConnectionString(); got != want {
		t.Errorf("ConnectionString() = %q, want %q", got, want)
	}

	cfg.URL = "postgres://agent@db/listings"
	if got := cfg.ConnectionString(); got != cfg.URL {
		t.Errorf("ConnectionString() = %q, want URL %q", got, cfg.URL)
	}
}

func TestStorageConfig_FilePath(t *testing.T) {
	tests := []struct {
		driver string
		path   string
		want   string
	}{
		{driver: "bolt", want: DefaultBoltPath},
		{driver: "", want: DefaultBoltPath},
		{driver: "sqlite", want: DefaultSQLitePath},
		{driver: "sqlite", path: "/var/lib/props.db", want: "/var/lib/props.db"},
		{driver: "bolt", path: "custom.db", want: "custom.db"},
	}

	for _, tt := range tests {
		c := StorageConfig{Driver: tt.driver, Path: tt.path}
		if got := c.FilePath(); got != tt.want {
			t.Errorf("StorageConfig{Driver: %q, Path: %q}.FilePath() = %q, want %q", tt.driver, tt.path, got, tt.want)
		}
	}
	if DefaultBoltPath == DefaultSQLitePath {
		t.Error("bolt and sqlite share a default file")
	}
}
