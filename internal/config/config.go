package config

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// Default configuration values.
const (
	DefaultMaxEntries      = 1000
	DefaultRowSeparator    = `\r?\n`
	DefaultColumnSeparator = `\t`
	DefaultQuote           = `"`
	DefaultSeed            = 1
	DefaultMaxSamples      = 64
	DefaultLogLevel        = "info"
)

// Config holds every gridstorm setting.
type Config struct {
	History HistoryConfig `toml:"history" yaml:"history"`
	Text    TextConfig    `toml:"text" yaml:"text"`
	Fill    FillConfig    `toml:"fill" yaml:"fill"`
	Log     LogConfig     `toml:"log" yaml:"log"`
}

// HistoryConfig configures the undo log.
type HistoryConfig struct {
	// MaxEntries is the undo depth. Oldest entries are dropped first.
	MaxEntries int `toml:"max_entries" yaml:"max_entries"`
}

// TextConfig configures the delimited text contract.
type TextConfig struct {
	// RowSeparator is a regular expression separating rows.
	RowSeparator string `toml:"row_separator" yaml:"row_separator"`
	// ColumnSeparator is a regular expression separating fields.
	ColumnSeparator string `toml:"column_separator" yaml:"column_separator"`
	// Quote wraps fields that contain a separator.
	Quote string `toml:"quote" yaml:"quote"`
	// Seed fixes the literal separators written on output.
	Seed int64 `toml:"seed" yaml:"seed"`
}

// FillConfig configures autofill.
type FillConfig struct {
	// MaxSamples caps the source cells per lane used for inference.
	MaxSamples int `toml:"max_samples" yaml:"max_samples"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		History: HistoryConfig{MaxEntries: DefaultMaxEntries},
		Text: TextConfig{
			RowSeparator:    DefaultRowSeparator,
			ColumnSeparator: DefaultColumnSeparator,
			Quote:           DefaultQuote,
			Seed:            DefaultSeed,
		},
		Fill: FillConfig{MaxSamples: DefaultMaxSamples},
		Log:  LogConfig{Level: DefaultLogLevel},
	}
}

// Validate checks every setting and returns the first failure.
func (c *Config) Validate() error {
	if c.History.MaxEntries <= 0 {
		return &ValidationError{Path: "history.max_entries", Value: c.History.MaxEntries, Message: "must be positive"}
	}
	for path, pattern := range map[string]string{
		"text.row_separator":    c.Text.RowSeparator,
		"text.column_separator": c.Text.ColumnSeparator,
	} {
		if pattern == "" {
			return &ValidationError{Path: path, Value: pattern, Message: "must not be empty"}
		}
		if _, err := regexp.Compile(pattern); err != nil {
			return &ValidationError{Path: path, Value: pattern, Message: err.Error()}
		}
	}
	if c.Text.Quote == "" {
		return &ValidationError{Path: "text.quote", Value: c.Text.Quote, Message: "must not be empty"}
	}
	if c.Fill.MaxSamples <= 0 {
		return &ValidationError{Path: "fill.max_samples", Value: c.Fill.MaxSamples, Message: "must be positive"}
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return &ValidationError{Path: "log.level", Value: c.Log.Level, Message: err.Error()}
	}
	return nil
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q (valid: debug, info, warn, error)", s)
}

// LogLevel returns the configured level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	level, _ := ParseLevel(c.Log.Level)
	return level
}
