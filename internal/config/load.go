package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "GRIDSTORM_"

// Load builds a configuration from defaults, the file at path and the
// environment. An empty path or a missing file leaves the defaults in
// place.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes the file at path over c. A missing file is not an
// error.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return c.Decode(path, data)
}

// Decode parses data in the format implied by the extension of name.
// Unknown keys are rejected.
func (c *Config) Decode(name string, data []byte) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(c); err != nil {
			perr := &ParseError{Path: name, Message: err.Error(), Err: err}
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				perr.Line, perr.Column = derr.Position()
			}
			return perr
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return &ParseError{Path: name, Message: err.Error(), Err: err}
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	return nil
}

// envSetting binds one environment variable to a setting.
type envSetting struct {
	path string
	set  func(c *Config, v string) error
}

func envInt(dst func(c *Config) *int) func(*Config, string) error {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst(c) = n
		return nil
	}
}

func envString(dst func(c *Config) *string) func(*Config, string) error {
	return func(c *Config, v string) error {
		*dst(c) = v
		return nil
	}
}

// envMapping returns the environment variable for each setting.
func envMapping() map[string]envSetting {
	return map[string]envSetting{
		EnvPrefix + "HISTORY_MAX_ENTRIES":   {"history.max_entries", envInt(func(c *Config) *int { return &c.History.MaxEntries })},
		EnvPrefix + "TEXT_ROW_SEPARATOR":    {"text.row_separator", envString(func(c *Config) *string { return &c.Text.RowSeparator })},
		EnvPrefix + "TEXT_COLUMN_SEPARATOR": {"text.column_separator", envString(func(c *Config) *string { return &c.Text.ColumnSeparator })},
		EnvPrefix + "TEXT_QUOTE":            {"text.quote", envString(func(c *Config) *string { return &c.Text.Quote })},
		EnvPrefix + "TEXT_SEED": {"text.seed", func(c *Config, v string) error {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return err
			}
			c.Text.Seed = n
			return nil
		}},
		EnvPrefix + "FILL_MAX_SAMPLES": {"fill.max_samples", envInt(func(c *Config) *int { return &c.Fill.MaxSamples })},
		EnvPrefix + "LOG_LEVEL":        {"log.level", envString(func(c *Config) *string { return &c.Log.Level })},
	}
}

// ApplyEnv overrides settings from environment variables found by lookup.
// Empty values are treated as set.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	for name, s := range envMapping() {
		v, ok := lookup(name)
		if !ok {
			continue
		}
		if err := s.set(c, v); err != nil {
			return &ParseError{
				Path:    name,
				Message: fmt.Sprintf("%s: %v", s.path, err),
				Err:     err,
			}
		}
	}
	return nil
}
