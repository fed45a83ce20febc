package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all fileserver configuration.
type Config struct {
	Sandbox SandboxConfig
	Session SessionConfig
	Logging LogConfig
}

// SandboxConfig holds sandbox and registry configuration.
type SandboxConfig struct {
	Root         string        `envconfig:"SANDBOX_ROOT" default:"/tmp/fileserver"`
	Capacity     int           `envconfig:"REGISTRY_CAPACITY" default:"32"`
	DeleteDelay  time.Duration `envconfig:"DELETE_DELAY" default:"100ms"`
	SeedManifest string        `envconfig:"SEED_MANIFEST" default:""`
}

// SessionConfig holds session identity configuration.
type SessionConfig struct {
	DefaultUser string `envconfig:"DEFAULT_USER" default:"guest"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Sandbox: SandboxConfig{
			Root:        "/tmp/fileserver",
			Capacity:    32,
			DeleteDelay: 100 * time.Millisecond,
		},
		Session: SessionConfig{
			DefaultUser: "guest",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
