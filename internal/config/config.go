package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	ServerAddr      string        `yaml:"server_addr"`
	DataPath        string        `yaml:"data_path"` // export directory; empty serves compiled-in content
	LogLevel        string        `yaml:"log_level"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		ServerAddr:      ":8080",
		LogLevel:        "info",
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load reads the YAML file at path and applies env overrides.
// A missing file is only an error when required is set.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path, required); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if cfg.ServerAddr == "" {
		return nil, fmt.Errorf("server_addr must not be empty")
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("shutdown_timeout must be positive, got %s", cfg.ShutdownTimeout)
	}

	return cfg, nil
}

// loadFile merges the YAML file into cfg
func (c *Config) loadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}

// applyEnv overrides fields from the environment
func (c *Config) applyEnv() {
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		c.ServerAddr = v
	}
	if v := os.Getenv("PORTFOLIO_DATA"); v != "" {
		c.DataPath = v
	}
	if v := os.Getenv("PORTFOLIO_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}
