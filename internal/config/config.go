// Package config provides configuration management for the collection generator.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingBaseURL       = errors.New("steam.base_url is required")
	ErrInvalidBaseURL       = errors.New("steam.base_url must be an absolute http(s) URL")
	ErrMissingDiscoveryPath = errors.New("steam.discovery_path is required")
	ErrMissingAPIKeyEnv     = errors.New("steam.api_key_env is required")
	ErrInvalidTimeout       = errors.New("steam.timeout_sec must be non-negative")
	ErrMissingNamePrefix    = errors.New("collection.name_prefix is required")
	ErrMissingSchema        = errors.New("collection.schema is required")
	ErrMissingKeyHeader     = errors.New("collection.key_header is required")
	ErrMissingOutputPath    = errors.New("output.path is required")
	ErrInvalidIndent        = errors.New("output.indent must be between 0 and 8")
	ErrInvalidLogLevel      = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Default values.
const (
	DefaultBaseURL        = "https://api.steampowered.com"
	DefaultDiscoveryPath  = "/ISteamWebAPIUtil/GetSupportedAPIList/v1/"
	DefaultAPIKeyEnv      = "STEAM_API_KEY"
	DefaultNamePrefix     = "Steam Web API"
	DefaultSchema         = "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"
	DefaultKeyHeader      = "x-webapi-key"
	DefaultKeyPlaceholder = "{{key}}"
	DefaultOutputPath     = "steam_api_collection.json"
	DefaultIndent         = 4
	DefaultLogLevel       = "info"
)

// Config represents the complete generator configuration.
type Config struct {
	Steam      SteamConfig      `yaml:"steam"`
	Collection CollectionConfig `yaml:"collection"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SteamConfig describes where the discovery document comes from.
type SteamConfig struct {
	BaseURL       string `yaml:"base_url"`
	DiscoveryPath string `yaml:"discovery_path"`
	APIKeyEnv     string `yaml:"api_key_env"`
	// TimeoutSec of 0 disables the client timeout.
	TimeoutSec int `yaml:"timeout_sec"`
}

// CollectionConfig controls how the Postman collection is labelled.
type CollectionConfig struct {
	NamePrefix     string `yaml:"name_prefix"`
	Schema         string `yaml:"schema"`
	KeyHeader      string `yaml:"key_header"`
	KeyPlaceholder string `yaml:"key_placeholder"`
}

// OutputConfig defines output behavior.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Indent int    `yaml:"indent"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Steam: SteamConfig{
			BaseURL:       DefaultBaseURL,
			DiscoveryPath: DefaultDiscoveryPath,
			APIKeyEnv:     DefaultAPIKeyEnv,
			TimeoutSec:    30,
		},
		Collection: CollectionConfig{
			NamePrefix:     DefaultNamePrefix,
			Schema:         DefaultSchema,
			KeyHeader:      DefaultKeyHeader,
			KeyPlaceholder: DefaultKeyPlaceholder,
		},
		Output: OutputConfig{
			Path:   DefaultOutputPath,
			Indent: DefaultIndent,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of the defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Steam.BaseURL == "" {
		return ErrMissingBaseURL
	}

	u, err := url.Parse(c.Steam.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.Steam.BaseURL)
	}

	if c.Steam.DiscoveryPath == "" {
		return ErrMissingDiscoveryPath
	}

	if c.Steam.APIKeyEnv == "" {
		return ErrMissingAPIKeyEnv
	}

	if c.Steam.TimeoutSec < 0 {
		return ErrInvalidTimeout
	}

	if c.Collection.NamePrefix == "" {
		return ErrMissingNamePrefix
	}

	if c.Collection.Schema == "" {
		return ErrMissingSchema
	}

	if c.Collection.KeyHeader == "" {
		return ErrMissingKeyHeader
	}

	if c.Output.Path == "" {
		return ErrMissingOutputPath
	}

	if c.Output.Indent < 0 || c.Output.Indent > 8 {
		return ErrInvalidIndent
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return ErrInvalidLogLevel
	}

	return nil
}

// GetTimeout returns the fetch timeout duration.
func (s *SteamConfig) GetTimeout() time.Duration {
	return time.Duration(s.TimeoutSec) * time.Second
}

// DiscoveryURL joins the base URL and the discovery path.
func (s *SteamConfig) DiscoveryURL() string {
	return strings.TrimRight(s.BaseURL, "/") + "/" + strings.TrimLeft(s.DiscoveryPath, "/")
}

// Host returns the host part of the base URL.
func (s *SteamConfig) Host() string {
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return ""
	}

	return u.Host
}

// Scheme returns the scheme part of the base URL.
func (s *SteamConfig) Scheme() string {
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return ""
	}

	return u.Scheme
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Source: %s, KeyEnv: %s, Output: %s}",
		c.Steam.DiscoveryURL(),
		c.Steam.APIKeyEnv,
		c.Output.Path,
	)
}
