package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ConfigFileEnv names the variable pointing at an optional YAML config file
const ConfigFileEnv = "TASKS_CONFIG"

// Loader handles loading configuration from multiple sources
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix("TASKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Loader{v: v}
}

// WithConfigFile makes the loader read path instead of $TASKS_CONFIG
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the config file, if any
// 3. Override with environment variables
// Command line flags are applied afterwards by LoadWithOverrides.
func (l *Loader) Load() (*Config, error) {
	cfg := NewConfig()
	setDefaults(l.v, cfg)

	path := l.configFile
	if path == "" {
		path = os.Getenv(ConfigFileEnv)
	}
	if path != "" {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, &ConfigError{Field: "config_file", Message: err.Error()}
		}
	}

	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, &ConfigError{Field: "config", Message: err.Error()}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		overrides.Apply(config)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// setDefaults registers every key so environment variables can reach it
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("store.backend", cfg.Store.Backend)
	v.SetDefault("logging.enabled", cfg.Logging.Enabled)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("display.date_format", cfg.Display.DateFormat)
	v.SetDefault("display.list_format", cfg.Display.ListFormat)
	v.SetDefault("validation.title_max_length", cfg.Validation.TitleMaxLength)
	v.SetDefault("session.seed_sample", cfg.Session.SeedSample)
	v.SetDefault("application.timeout", cfg.Application.Timeout)
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	StoreBackend   *string
	LogEnabled     *bool
	LogLevel       *string
	LogFile        *string
	DateFormat     *string
	ListFormat     *string
	TitleMaxLength *int
	SeedSample     *bool
	Timeout        *time.Duration
}

// Apply copies every set override onto config
func (o *ConfigOverrides) Apply(config *Config) {
	if o.StoreBackend != nil {
		config.Store.Backend = *o.StoreBackend
	}
	if o.LogEnabled != nil {
		config.Logging.Enabled = *o.LogEnabled
	}
	if o.LogLevel != nil {
		config.Logging.Level = *o.LogLevel
	}
	if o.LogFile != nil {
		config.Logging.File = *o.LogFile
	}
	if o.DateFormat != nil {
		config.Display.DateFormat = *o.DateFormat
	}
	if o.ListFormat != nil {
		config.Display.ListFormat = *o.ListFormat
	}
	if o.TitleMaxLength != nil {
		config.Validation.TitleMaxLength = *o.TitleMaxLength
	}
	if o.SeedSample != nil {
		config.Session.SeedSample = *o.SeedSample
	}
	if o.Timeout != nil {
		config.Application.Timeout = *o.Timeout
	}
}
