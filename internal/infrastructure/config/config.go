package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for the entity renamer.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Hub     HubConfig     `yaml:"hub"`
	Logging LoggingConfig `yaml:"logging"`
}

// HubConfig contains Home Assistant connection settings.
type HubConfig struct {
	// Host is the hub's address, including port if non-standard
	// (e.g. "homeassistant.local:8123").
	Host string `yaml:"host"`

	// AccessToken is a long-lived access token created in the
	// Home Assistant user profile.
	AccessToken string `yaml:"access_token"`

	// TLS selects https/wss instead of http/ws.
	TLS bool `yaml:"tls"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: HARENAMER_SECTION_KEY
// For example: HARENAMER_HUB_HOST, HARENAMER_HUB_ACCESS_TOKEN
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	// Start with defaults
	cfg := defaultConfig()

	// Read and parse YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		Hub: HubConfig{
			Host: "homeassistant.local:8123",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: HARENAMER_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	// Hub
	if v := os.Getenv("HARENAMER_HUB_HOST"); v != "" {
		cfg.Hub.Host = v
	}
	if v := os.Getenv("HARENAMER_HUB_ACCESS_TOKEN"); v != "" {
		cfg.Hub.AccessToken = v
	}
	if v := os.Getenv("HARENAMER_HUB_TLS"); v != "" {
		cfg.Hub.TLS = strings.EqualFold(v, "true") || v == "1"
	}

	// Logging
	if v := os.Getenv("HARENAMER_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	if c.Hub.Host == "" {
		errs = append(errs, "hub.host is required")
	}

	// The token is required for both the REST listing call and the
	// control-channel auth handshake; there is no anonymous mode.
	if c.Hub.AccessToken == "" {
		errs = append(errs, "hub.access_token is required (set HARENAMER_HUB_ACCESS_TOKEN environment variable)")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// RESTBaseURL returns the base URL for the hub's REST API,
// selecting http or https based on the TLS setting.
func (c HubConfig) RESTBaseURL() string {
	if c.TLS {
		return "https://" + c.Host
	}
	return "http://" + c.Host
}

// WebSocketURL returns the URL of the hub's WebSocket control channel,
// selecting ws or wss based on the TLS setting.
func (c HubConfig) WebSocketURL() string {
	if c.TLS {
		return "wss://" + c.Host + "/api/websocket"
	}
	return "ws://" + c.Host + "/api/websocket"
}
