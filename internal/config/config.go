// Package config loads, validates and watches the factcheck configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DirName is the per-workspace directory holding config, logs and stats.
const DirName = ".factcheck"

// FileName is the config file inside DirName.
const FileName = "config.yaml"

// ErrNoAPIKey is returned by Validate when a provider needs a key it lacks.
var ErrNoAPIKey = errors.New("provider API key not configured")

// Config holds all factcheck configuration.
type Config struct {
	// Verification provider
	Provider ProviderConfig `yaml:"provider"`

	// Terminal UI
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Verdict statistics
	Stats StatsConfig `yaml:"stats"`

	// HTTP API (factcheck serve)
	Server ServerConfig `yaml:"server"`
}

// StatsConfig configures the verdict statistics tracker.
type StatsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // relative paths resolve against DirName
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr         string   `yaml:"addr"`
	AllowOrigins []string `yaml:"allow_origins"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: DefaultProviderConfig(),
		UI:       UIConfig{Theme: "light"},
		Logging: LoggingConfig{
			Level:     "info",
			DebugMode: false,
			File:      "factcheck.log",
		},
		Stats: StatsConfig{
			Enabled: true,
			Path:    "stats.json",
		},
		Server: ServerConfig{
			Addr:         ":8088",
			AllowOrigins: []string{"http://localhost:3000"},
		},
	}
}

// Dir returns the config directory for a workspace.
func Dir(workspace string) string {
	return filepath.Join(workspace, DirName)
}

// DefaultPath returns the config file path for a workspace.
func DefaultPath(workspace string) string {
	return filepath.Join(Dir(workspace), FileName)
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.Provider.Gemini.APIKey = key
		if c.Provider.Kind == "" {
			c.Provider.Kind = KindGemini
		}
	}
	if url := os.Getenv("FACTCHECK_REMOTE_URL"); url != "" {
		c.Provider.Remote.BaseURL = url
	}
	if kind := os.Getenv("FACTCHECK_PROVIDER"); kind != "" {
		c.Provider.Kind = strings.ToLower(kind)
	}
	if os.Getenv("FACTCHECK_DARK_MODE") == "1" {
		c.UI.Theme = "dark"
	}
	if c.Provider.Kind == "" {
		c.Provider.Kind = KindKeyword
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return c.Provider.Validate()
}

// StatsPath resolves the stats file path for a workspace.
func (c *Config) StatsPath(workspace string) string {
	if filepath.IsAbs(c.Stats.Path) {
		return c.Stats.Path
	}
	path := c.Stats.Path
	if path == "" {
		path = "stats.json"
	}
	return filepath.Join(Dir(workspace), path)
}
