package config

import (
	"strings"
	"time"
)

// Config holds all configuration options for the task list application
type Config struct {
	Store       StoreConfig       `mapstructure:"store"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Display     DisplayConfig     `mapstructure:"display"`
	Validation  ValidationConfig  `mapstructure:"validation"`
	Session     SessionConfig     `mapstructure:"session"`
	Application ApplicationConfig `mapstructure:"application"`
}

// StoreConfig selects the session repository
type StoreConfig struct {
	Backend string `mapstructure:"backend"` // TASKS_STORE_BACKEND: memory | sqlite
}

// LoggingConfig controls the structured logger
type LoggingConfig struct {
	Enabled bool   `mapstructure:"enabled"` // TASKS_LOGGING_ENABLED
	Level   string `mapstructure:"level"`   // TASKS_LOGGING_LEVEL
	File    string `mapstructure:"file"`    // TASKS_LOGGING_FILE, stderr when empty
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateFormat string `mapstructure:"date_format"` // TASKS_DISPLAY_DATE_FORMAT
	ListFormat string `mapstructure:"list_format"` // TASKS_DISPLAY_LIST_FORMAT
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMaxLength int `mapstructure:"title_max_length"` // TASKS_VALIDATION_TITLE_MAX_LENGTH, 0 = unlimited
}

// SessionConfig controls how a session starts
type SessionConfig struct {
	SeedSample bool `mapstructure:"seed_sample"` // TASKS_SESSION_SEED_SAMPLE
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `mapstructure:"timeout"` // TASKS_APPLICATION_TIMEOUT
}

// Recognised list output formats
var ListFormats = []string{"table", "json", "yaml", "csv"}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: "memory",
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
		},
		Display: DisplayConfig{
			DateFormat: "Monday, 02 Jan 2006",
			ListFormat: "table",
		},
		Validation: ValidationConfig{
			TitleMaxLength: 0,
		},
		Session: SessionConfig{
			SeedSample: true,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
		},
	}
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case "memory", "sqlite":
	default:
		return &ConfigError{Field: "store.backend", Message: "store backend must be memory or sqlite"}
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: "log level must be debug, info, warn or error"}
	}

	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}
	if !isListFormat(c.Display.ListFormat) {
		return &ConfigError{Field: "display.list_format", Message: "list format must be one of " + strings.Join(ListFormats, ", ")}
	}

	if c.Validation.TitleMaxLength < 0 {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length cannot be negative"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

func isListFormat(format string) bool {
	for _, f := range ListFormats {
		if f == format {
			return true
		}
	}
	return false
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
