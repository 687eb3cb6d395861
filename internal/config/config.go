// Package config loads coffee settings from defaults, an optional YAML
// file and COFFEE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = "coffee.yaml"

// Config holds all coffee configuration.
type Config struct {
	Order  OrderConfig  `mapstructure:"order"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// OrderConfig lists the addons applied to the base coffee, innermost first.
type OrderConfig struct {
	Addons []string `mapstructure:"addons"`
}

type OutputConfig struct {
	Color bool `mapstructure:"color"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("order.addons", []string{"milk", "chocolate"})
	v.SetDefault("output.color", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
}

// Load reads configuration.
// Precedence (highest to lowest):
// 1. Environment variables (COFFEE_LOG_LEVEL, COFFEE_OUTPUT_COLOR, ...)
// 2. The file at path, or coffee.yaml in the working directory
// 3. Built-in defaults
//
// An explicit path that does not exist is an error; a missing coffee.yaml is not.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("COFFEE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config from %s: %w", path, err)
		}
	} else if _, err := os.Stat(DefaultFile); err == nil {
		v.SetConfigFile(DefaultFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config from %s: %w", DefaultFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var (
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// Validate checks the logging settings.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Log.Format)
	}
	return nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
	}
}

// NewLogger builds the slog logger described by the log section.
func NewLogger(cfg LogConfig, w io.Writer) *slog.Logger {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
