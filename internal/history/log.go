// Package history implements undo/redo over many independently typed
// attribute channels.
//
// Every logical action is one Delta holding the changes it made to each
// channel it touched. Channels an action did not touch simply have no
// change in that Delta, so all channels always share one history depth.
package history

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/gridstorm/internal/selection"
)

// DefaultMaxEntries is the undo depth used when none is configured.
const DefaultMaxEntries = 1000

// Delta is one logical action across all channels.
type Delta struct {
	ID        uuid.UUID
	Label     string
	Timestamp time.Time
	Selection selection.Set
	Changes   []Change
}

// Info provides read-only info about a Delta.
type Info struct {
	ID        uuid.UUID
	Label     string
	Timestamp time.Time
	Channels  []string
}

func (d *Delta) info() Info {
	channels := make([]string, 0, len(d.Changes))
	for _, c := range d.Changes {
		channels = append(channels, c.Channel())
	}
	return Info{ID: d.ID, Label: d.Label, Timestamp: d.Timestamp, Channels: channels}
}

// Log holds the undo and redo stacks. It is not safe for concurrent use;
// one owner drives all edits.
type Log struct {
	undo []*Delta
	redo []*Delta

	maxEntries int
	logger     *slog.Logger
}

// Option configures a Log.
type Option func(*Log)

// WithMaxEntries limits the undo depth. Oldest entries are dropped first.
func WithMaxEntries(n int) Option {
	return func(l *Log) {
		if n > 0 {
			l.maxEntries = n
		}
	}
}

// WithLogger sets the logger. A nil logger keeps slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Log) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLog creates an empty log.
func NewLog(opts ...Option) *Log {
	l := &Log{
		maxEntries: DefaultMaxEntries,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.With(slog.String("component", "history"))
	return l
}

// Commit pushes tx as one Delta and clears the redo stack.
func (l *Log) Commit(tx *Tx) *Delta {
	d := &Delta{
		ID:        uuid.New(),
		Label:     tx.label,
		Timestamp: time.Now(),
		Selection: tx.restoreSelection(),
		Changes:   tx.changes,
	}

	l.undo = append(l.undo, d)
	l.redo = nil

	if len(l.undo) > l.maxEntries {
		excess := len(l.undo) - l.maxEntries
		l.undo = l.undo[excess:]
	}

	size := 0
	for _, c := range d.Changes {
		size += c.Size()
	}
	commitsTotal.Inc()
	changesTotal.Add(float64(len(d.Changes)))

	l.logger.Debug("committed",
		slog.String("id", d.ID.String()),
		slog.String("label", d.Label),
		slog.Int("changes", len(d.Changes)),
		slog.Int("keys", size),
		slog.Int("depth", len(l.undo)),
	)
	return d
}

// Undo reverts the most recent Delta on every channel it touched and returns
// the selection to restore.
func (l *Log) Undo() (selection.Set, error) {
	if len(l.undo) == 0 {
		return nil, ErrNothingToUndo
	}

	d := l.undo[len(l.undo)-1]
	l.undo = l.undo[:len(l.undo)-1]

	for i := len(d.Changes) - 1; i >= 0; i-- {
		d.Changes[i].Revert()
	}
	l.redo = append(l.redo, d)

	undoTotal.Inc()
	l.logger.Debug("undo",
		slog.String("id", d.ID.String()),
		slog.String("label", d.Label),
		slog.Int("depth", len(l.undo)),
	)
	return d.Selection.Clone(), nil
}

// Redo re-applies the most recently undone Delta and returns the selection
// to restore.
func (l *Log) Redo() (selection.Set, error) {
	if len(l.redo) == 0 {
		return nil, ErrNothingToRedo
	}

	d := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]

	for _, c := range d.Changes {
		c.Replay()
	}
	l.undo = append(l.undo, d)

	redoTotal.Inc()
	l.logger.Debug("redo",
		slog.String("id", d.ID.String()),
		slog.String("label", d.Label),
		slog.Int("depth", len(l.undo)),
	)
	return d.Selection.Clone(), nil
}

// CanUndo reports whether undo is available.
func (l *Log) CanUndo() bool {
	return len(l.undo) > 0
}

// CanRedo reports whether redo is available.
func (l *Log) CanRedo() bool {
	return len(l.redo) > 0
}

// UndoCount returns the number of undo entries.
func (l *Log) UndoCount() int {
	return len(l.undo)
}

// RedoCount returns the number of redo entries.
func (l *Log) RedoCount() int {
	return len(l.redo)
}

// Clear drops both stacks.
func (l *Log) Clear() {
	l.undo = nil
	l.redo = nil
}

// MaxEntries returns the undo depth limit.
func (l *Log) MaxEntries() int {
	return l.maxEntries
}

// UndoInfo describes the undo stack, oldest first.
func (l *Log) UndoInfo() []Info {
	out := make([]Info, len(l.undo))
	for i, d := range l.undo {
		out[i] = d.info()
	}
	return out
}

// RedoInfo describes the redo stack, oldest first.
func (l *Log) RedoInfo() []Info {
	out := make([]Info, len(l.redo))
	for i, d := range l.redo {
		out[i] = d.info()
	}
	return out
}

// PeekUndo returns info about the next undo without applying it.
func (l *Log) PeekUndo() (Info, bool) {
	if len(l.undo) == 0 {
		return Info{}, false
	}
	return l.undo[len(l.undo)-1].info(), true
}

// PeekRedo returns info about the next redo without applying it.
func (l *Log) PeekRedo() (Info, bool) {
	if len(l.redo) == 0 {
		return Info{}, false
	}
	return l.redo[len(l.redo)-1].info(), true
}
