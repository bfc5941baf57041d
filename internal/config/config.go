// Package config provides configuration loading for the roommate server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Seed sources.
const (
	SourceDemo   = "demo"
	SourceYAML   = "yaml"
	SourceSQLite = "sqlite"
)

// DevJWTSecret is the default signing secret. It is only fit for local use.
const DevJWTSecret = "roommate-dev-secret"

// Config represents the complete server configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Seed   SeedConfig   `yaml:"seed"`
	Auth   AuthConfig   `yaml:"auth"`
	NATS   NATSConfig   `yaml:"nats"`
	Views  ViewsConfig  `yaml:"views"`
}

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	// Addr is the listen address (default: ":8080")
	Addr string `yaml:"addr"`
	// CORSOrigins lists the origins allowed to call the API
	CORSOrigins []string `yaml:"corsOrigins"`
	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// LogConfig configures logging
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
}

// SeedConfig selects where the initial household comes from
type SeedConfig struct {
	// Source is demo, yaml or sqlite
	Source string `yaml:"source"`
	// Path is the YAML file or SQLite database for the yaml and sqlite sources
	Path string `yaml:"path"`
	// Watch reloads the store when the YAML seed changes
	Watch bool `yaml:"watch"`
}

// AuthConfig configures session tokens
type AuthConfig struct {
	JWTSecret string        `yaml:"jwtSecret"`
	TokenTTL  time.Duration `yaml:"tokenTTL"`
}

// NATSConfig configures mutation notifications
type NATSConfig struct {
	// URL is the NATS server URL (empty = notifications disabled)
	URL string `yaml:"url"`
}

// ViewsConfig configures page rendering
type ViewsConfig struct {
	// InviteBaseURL prefixes group invite links
	InviteBaseURL string `yaml:"inviteBaseURL"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			CORSOrigins:     []string{"https://*", "http://*"},
			ShutdownTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
		Seed: SeedConfig{
			Source: SourceDemo,
		},
		Auth: AuthConfig{
			JWTSecret: DevJWTSecret,
			TokenTTL:  24 * time.Hour,
		},
		Views: ViewsConfig{
			InviteBaseURL: "https://roommateapp.com",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdownTimeout must be positive")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	switch c.Seed.Source {
	case SourceDemo:
	case SourceYAML, SourceSQLite:
		if c.Seed.Path == "" {
			return fmt.Errorf("seed.path is required for the %s source", c.Seed.Source)
		}
	default:
		return fmt.Errorf("seed.source must be one of demo, yaml, sqlite; got %q", c.Seed.Source)
	}
	if c.Seed.Watch && c.Seed.Source != SourceYAML {
		return fmt.Errorf("seed.watch requires the yaml source")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwtSecret is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.tokenTTL must be positive")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Server
	if other.Server.Addr != "" {
		c.Server.Addr = other.Server.Addr
	}
	if len(other.Server.CORSOrigins) > 0 {
		c.Server.CORSOrigins = other.Server.CORSOrigins
	}
	if other.Server.ShutdownTimeout != 0 {
		c.Server.ShutdownTimeout = other.Server.ShutdownTimeout
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}

	// Seed
	if other.Seed.Source != "" {
		c.Seed.Source = other.Seed.Source
	}
	if other.Seed.Path != "" {
		c.Seed.Path = other.Seed.Path
	}
	if other.Seed.Watch {
		c.Seed.Watch = true
	}

	// Auth
	if other.Auth.JWTSecret != "" {
		c.Auth.JWTSecret = other.Auth.JWTSecret
	}
	if other.Auth.TokenTTL != 0 {
		c.Auth.TokenTTL = other.Auth.TokenTTL
	}

	// NATS
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}

	// Views
	if other.Views.InviteBaseURL != "" {
		c.Views.InviteBaseURL = other.Views.InviteBaseURL
	}
}
