package sheet

import (
	"log/slog"

	"github.com/dshills/gridstorm/internal/config"
	"github.com/dshills/gridstorm/internal/history"
	"github.com/dshills/gridstorm/internal/textio"
)

// Default configuration values.
const (
	DefaultMaxUndoEntries = history.DefaultMaxEntries
	DefaultMaxFillSamples = 64
)

// Option configures a Sheet during creation.
type Option func(*Sheet)

// WithMaxUndoEntries sets the maximum number of undo history entries.
func WithMaxUndoEntries(max int) Option {
	return func(s *Sheet) {
		if max > 0 {
			s.maxUndoEntries = max
		}
	}
}

// WithMaxFillSamples limits how many source cells per lane feed a fill.
func WithMaxFillSamples(max int) Option {
	return func(s *Sheet) {
		if max > 0 {
			s.maxFillSamples = max
		}
	}
}

// WithLogger sets the logger used by the sheet and its history.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sheet) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCodec sets the text codec used by Copy, Paste, Load and String.
func WithCodec(codec *textio.Codec) Option {
	return func(s *Sheet) {
		if codec != nil {
			s.codec = codec
		}
	}
}

// FromConfig creates a sheet configured from cfg. Later options override
// the configured values.
func FromConfig(cfg *config.Config, opts ...Option) (*Sheet, error) {
	codec, err := textio.New(textio.Options{
		RowSeparator:    cfg.Text.RowSeparator,
		ColumnSeparator: cfg.Text.ColumnSeparator,
		Quote:           cfg.Text.Quote,
		Seed:            cfg.Text.Seed,
	})
	if err != nil {
		return nil, err
	}
	base := []Option{
		WithMaxUndoEntries(cfg.History.MaxEntries),
		WithMaxFillSamples(cfg.Fill.MaxSamples),
		WithCodec(codec),
	}
	return New(append(base, opts...)...), nil
}
