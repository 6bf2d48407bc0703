// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Source kinds understood by the loader.
const (
	SourceFile     = "file"
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)

// DefaultSlug names the document row read from and written to PostgreSQL.
const DefaultSlug = "default"

// Config represents configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or come from flags and the environment.
type Config struct {
	// Document source
	Source      string `json:"source,omitempty" yaml:"source,omitempty"`             // File path or URL of the resume JSON
	SourceKind  string `json:"source_kind,omitempty" yaml:"source_kind,omitempty"`   // file, http or postgres; inferred when empty
	DatabaseURL string `json:"database_url,omitempty" yaml:"database_url,omitempty"` // PostgreSQL connection URL
	Slug        string `json:"slug,omitempty" yaml:"slug,omitempty"`                 // Document name in PostgreSQL

	// Server
	Port         int    `json:"port,omitempty" yaml:"port,omitempty"`
	FetchTimeout string `json:"fetch_timeout,omitempty" yaml:"fetch_timeout,omitempty"` // Go duration, e.g. "10s"

	// Rendering
	Template   string `json:"template,omitempty" yaml:"template,omitempty"`       // Path to a LaTeX template
	ChromePath string `json:"chrome_path,omitempty" yaml:"chrome_path,omitempty"` // Chrome binary for PDF export

	// Logging
	LogLevel  string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	LogFormat string `json:"log_format,omitempty" yaml:"log_format,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Source:       "assets/resume.json",
		Slug:         DefaultSlug,
		Port:         8080,
		FetchTimeout: "10s",
		LogLevel:     "info",
		LogFormat:    "json",
	}
}

// LoadConfig loads configuration from a JSON file, or a YAML file when the
// extension is .yaml or .yml.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// ApplyEnv overrides fields with environment variables when they are set.
func (c *Config) ApplyEnv() {
	c.Source = getEnvString("RESUME_SOURCE", c.Source)
	c.SourceKind = getEnvString("RESUME_SOURCE_KIND", c.SourceKind)
	c.DatabaseURL = getEnvString("DATABASE_URL", c.DatabaseURL)
	c.Slug = getEnvString("RESUME_SLUG", c.Slug)
	c.Port = getEnvInt("PORT", c.Port)
	c.FetchTimeout = getEnvString("FETCH_TIMEOUT", c.FetchTimeout)
	c.Template = getEnvString("RESUME_TEMPLATE", c.Template)
	c.ChromePath = getEnvString("CHROME_PATH", c.ChromePath)
	c.LogLevel = getEnvString("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnvString("LOG_FORMAT", c.LogFormat)
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch c.ResolvedSourceKind() {
	case SourceFile, SourceHTTP:
		if c.Source == "" {
			return fmt.Errorf("config error: 'source' is required for %s sources", c.ResolvedSourceKind())
		}
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config error: 'database_url' is required for postgres sources")
		}
	default:
		return fmt.Errorf("config error: unknown source_kind %q", c.SourceKind)
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.FetchTimeout != "" {
		d, err := time.ParseDuration(c.FetchTimeout)
		if err != nil {
			return fmt.Errorf("config error: invalid 'fetch_timeout': %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("config error: 'fetch_timeout' must be positive")
		}
	}

	switch c.LogFormat {
	case "", "json", "pretty":
	default:
		return fmt.Errorf("config error: 'log_format' must be json or pretty")
	}

	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	return nil
}

// ResolvedSourceKind returns SourceKind, or infers it from Source when unset.
func (c *Config) ResolvedSourceKind() string {
	if c.SourceKind != "" {
		return strings.ToLower(c.SourceKind)
	}
	lower := strings.ToLower(c.Source)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return SourceHTTP
	}
	if c.Source == "" && c.DatabaseURL != "" {
		return SourcePostgres
	}
	return SourceFile
}

// FetchTimeoutDuration returns the parsed fetch timeout, or fallback when
// unset or invalid.
func (c *Config) FetchTimeoutDuration(fallback time.Duration) time.Duration {
	if c.FetchTimeout == "" {
		return fallback
	}
	d, err := time.ParseDuration(c.FetchTimeout)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Source == "" {
		result.Source = defaults.Source
	}
	if result.SourceKind == "" {
		result.SourceKind = defaults.SourceKind
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Slug == "" {
		result.Slug = defaults.Slug
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.FetchTimeout == "" {
		result.FetchTimeout = defaults.FetchTimeout
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	return result
}

func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
