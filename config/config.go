package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "PROPERTYDESK_"

type Config struct {
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Storage  StorageConfig  `envPrefix:"STORAGE_"`
	Database DatabaseConfig `envPrefix:"DB_"`
	Redis    RedisConfig    `envPrefix:"REDIS_"`
	Form     FormConfig     `envPrefix:"FORM_"`
	Log      LogConfig      `envPrefix:"LOG_"`
}

type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	Mode            string        `env:"MODE" envDefault:"release"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Default database files for the file-backed drivers. They differ so that
// switching driver never opens the other driver's file.
const (
	DefaultBoltPath   = "propertydesk.db"
	DefaultSQLitePath = "propertydesk.sqlite"
)

// StorageConfig selects the slot driver holding the property snapshot.
// Driver is one of bolt, sqlite, postgres, redis or memory.
type StorageConfig struct {
	Driver string `env:"DRIVER" envDefault:"bolt"`
	Path   string `env:"PATH"`
	Key    string `env:"KEY" envDefault:"properties"`
}

// FilePath returns Path when set, otherwise the default file for Driver.
func (c *StorageConfig) FilePath() string {
	if c.Path != "" {
		return c.Path
	}
	if c.Driver == "sqlite" {
		return DefaultSQLitePath
	}
	return DefaultBoltPath
}

type DatabaseConfig struct {
	URL      string `env:"URL"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"5432"`
	User     string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME" envDefault:"propertydesk"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`
}

// ConnectionString returns URL when set, otherwise a key/value DSN built
// from the individual fields.
func (c *DatabaseConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	Prefix   string `env:"PREFIX" envDefault:"propertydesk"`
}

type FormConfig struct {
	// EditDelay is the pause before an edit submission is applied.
	EditDelay time.Duration `env:"EDIT_DELAY" envDefault:"500ms"`
}

type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Ignoring .env file: %v", err)
	}
	return Parse()
}

// Parse reads configuration from the environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
