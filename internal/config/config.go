// Package config handles configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	apperrors "github.com/zorak1103/datecalc/internal/errors"
)

// Common errors
var (
	Err = errors.New("config error")
)

// Supported calendar modes. Kept as strings so the config package does not
// depend on the calculation packages.
const (
	ModeGregorian = "gregorian"
	ModeLegacy    = "legacy"
)

// Config represents the application configuration
type Config struct {
	Calendar     CalendarConfig     `mapstructure:"calendar"`
	Input        InputConfig        `mapstructure:"input"`
	History      HistoryConfig      `mapstructure:"history"`
	Notification NotificationConfig `mapstructure:"notification"`

	// ConfigFilePath stores the path to the loaded config file (not marshaled from YAML)
	ConfigFilePath string `mapstructure:"-"`
}

// CalendarConfig selects the day difference algorithm
type CalendarConfig struct {
	Mode string `mapstructure:"mode"` // "gregorian" or "legacy"
}

// InputConfig controls how date arguments are read
type InputConfig struct {
	Strict bool `mapstructure:"strict"`
}

// HistoryConfig contains settings for the optional calculation history
type HistoryConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	File       string `mapstructure:"file"`
	MaxEntries int    `mapstructure:"max_entries"`
}

// NotificationConfig contains notification settings
type NotificationConfig struct {
	ShoutrrURL string `mapstructure:"shoutrrr_url"` // Shoutrrr URL format
	Enabled    bool   `mapstructure:"enabled"`
}

// Default returns the configuration used when no file or environment overrides exist.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Defaults always unmarshal cleanly.
	_ = v.Unmarshal(&cfg) // nolint:errcheck
	return &cfg
}

// Load reads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load() // nolint:errcheck // .env file is optional

	v := viper.New()

	// Set config file path
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/datecalc")
		v.AddConfigPath("/etc/datecalc")
	}

	// Set defaults
	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := v.ConfigFileUsed()
			if configFile == "" {
				configFile = configPath
			}
			return nil, fmt.Errorf("error reading config file from %s: %w", configFile, err)
		}
		// Config file not found; using defaults and env vars
	}

	// Environment variable support
	v.SetEnvPrefix("DATECALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		configFile := v.ConfigFileUsed()
		if configFile == "" {
			configFile = "(using defaults and environment variables)"
		}
		return nil, fmt.Errorf("error unmarshaling config from %s: %w", configFile, err)
	}

	cfg.ConfigFilePath = v.ConfigFileUsed()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Calendar defaults
	v.SetDefault("calendar.mode", ModeGregorian)

	// Input defaults (permissive parsing, trust the caller)
	v.SetDefault("input.strict", false)

	// History defaults
	v.SetDefault("history.enabled", false)
	v.SetDefault("history.file", "./datecalc_history.json")
	v.SetDefault("history.max_entries", 100)

	// Notification defaults
	v.SetDefault("notification.shoutrrr_url", "") // Required for AutomaticEnv to work
	v.SetDefault("notification.enabled", false)
}

// Validate ensures all required fields are set and values are within valid ranges.
// Failures are reported as *apperrors.ConfigurationError.
func (c *Config) Validate() error {
	configSource := c.ConfigFilePath
	if configSource == "" {
		configSource = "(defaults/environment)"
	}

	if err := c.validateMode(configSource); err != nil {
		return err
	}

	if err := c.validateHistory(configSource); err != nil {
		return err
	}

	return c.validateNotification(configSource)
}

func (c *Config) validateMode(configSource string) error {
	switch c.Calendar.Mode {
	case ModeGregorian, ModeLegacy:
		return nil
	default:
		return &apperrors.ConfigurationError{
			ConfigPath: configSource,
			Key:        "calendar.mode",
			Err:        fmt.Errorf("%w: must be %q or %q, got %q", Err, ModeGregorian, ModeLegacy, c.Calendar.Mode),
		}
	}
}

func (c *Config) validateHistory(configSource string) error {
	if !c.History.Enabled {
		return nil
	}
	if c.History.File == "" {
		return &apperrors.ConfigurationError{
			ConfigPath: configSource,
			Key:        "history.file",
			Err:        fmt.Errorf("%w: required when history.enabled is true", Err),
		}
	}
	if c.History.MaxEntries < 1 || c.History.MaxEntries > 10000 {
		return &apperrors.ConfigurationError{
			ConfigPath: configSource,
			Key:        "history.max_entries",
			Err:        fmt.Errorf("%w: must be between 1 and 10000, got %d", Err, c.History.MaxEntries),
		}
	}
	return nil
}

func (c *Config) validateNotification(configSource string) error {
	if c.Notification.Enabled && strings.TrimSpace(c.Notification.ShoutrrURL) == "" {
		return &apperrors.ConfigurationError{
			ConfigPath: configSource,
			Key:        "notification.shoutrrr_url",
			Err:        fmt.Errorf("%w: required when notification.enabled is true (set DATECALC_NOTIFICATION_SHOUTRRR_URL)", Err),
		}
	}
	return nil
}
