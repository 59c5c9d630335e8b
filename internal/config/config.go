// Package config provides configuration loading and validation for the CLI and the server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonathan/resume-builder/internal/layout"
)

// Default values applied by Defaults
const (
	DefaultPageSize  = "letter"
	DefaultOutputDir = "out"
	DefaultLogLevel  = "info"
	DefaultPort      = 8080
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Rendering
	DefaultTemplate string `json:"default_template,omitempty"` // Template id used when none is requested
	PageSize        string `json:"page_size,omitempty"`        // "letter" or "a4"
	Compress        *bool  `json:"compress,omitempty"`         // Compress PDF content streams (default true)
	Catalog         string `json:"catalog,omitempty"`          // Path to a YAML template catalog

	// Paths
	OutputDir string `json:"output_dir,omitempty"` // Directory for generated documents

	// Behavior
	LogLevel    string `json:"log_level,omitempty"`    // debug, info, warn or error
	Port        int    `json:"port,omitempty"`         // HTTP port for serve
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for stored documents
}

// Defaults returns the built-in configuration. DefaultTemplate stays empty so the
// template registry's own default applies.
func Defaults() Config {
	compress := true
	return Config{
		PageSize:  DefaultPageSize,
		Compress:  &compress,
		OutputDir: DefaultOutputDir,
		LogLevel:  DefaultLogLevel,
		Port:      DefaultPort,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check that the default template exists since the registry
// is only known after the catalog is loaded.
func (c *Config) Validate() error {
	if c.PageSize != "" {
		if _, err := layout.PageSizeByName(c.PageSize); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: unknown log_level %q", c.LogLevel)
	}

	// Validate file paths exist (if specified)
	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DefaultTemplate == "" {
		result.DefaultTemplate = defaults.DefaultTemplate
	}
	if result.PageSize == "" {
		result.PageSize = defaults.PageSize
	}
	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Pointer fields distinguish unset from false
	if result.Compress == nil {
		result.Compress = defaults.Compress
	}

	return result
}

// ApplyEnv overrides fields from LOG_LEVEL, PORT, DATABASE_URL, RESUME_TEMPLATE and
// RESUME_PAGE_SIZE when they are set
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("RESUME_TEMPLATE"); v != "" {
		c.DefaultTemplate = v
	}
	if v := os.Getenv("RESUME_PAGE_SIZE"); v != "" {
		c.PageSize = v
	}
}

// Page returns the configured page size, letter when unset
func (c *Config) Page() (layout.PageSize, error) {
	return layout.PageSizeByName(c.PageSize)
}

// CompressPDF reports whether content streams are compressed
func (c *Config) CompressPDF() bool {
	return c.Compress == nil || *c.Compress
}
