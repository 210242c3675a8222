package sheet

import (
	"log/slog"

	"github.com/dshills/gridstorm/internal/grid"
	"github.com/dshills/gridstorm/internal/history"
	"github.com/dshills/gridstorm/internal/optional"
	"github.com/dshills/gridstorm/internal/selection"
	"github.com/dshills/gridstorm/internal/style"
	"github.com/dshills/gridstorm/internal/textio"
)

// Sheet combines the attribute channels, the history log and the current
// selection behind one API.
type Sheet struct {
	content    *history.Channel[grid.Coord, string]
	foreground *history.Channel[grid.Coord, style.Color]
	margin     *history.Channel[grid.Coord, style.Margin]
	alignment  *history.Channel[grid.Coord, style.Alignment]
	typeface   *history.Channel[grid.Coord, style.Typeface]
	rowHeight  *history.Channel[grid.Index, int]
	colWidth   *history.Channel[grid.Index, int]

	// cells lists every cell channel, content first. styles is cells
	// without content.
	cells  []cellOps
	styles []cellOps

	log       *history.Log
	codec     *textio.Codec
	selection selection.Set
	untracked int

	// Configuration
	maxUndoEntries int
	maxFillSamples int
	logger         *slog.Logger
}

// New creates an empty sheet.
func New(opts ...Option) *Sheet {
	s := &Sheet{
		content:        history.NewChannel[grid.Coord, string](ChannelContent),
		foreground:     history.NewChannel[grid.Coord, style.Color](ChannelForeground),
		margin:         history.NewChannel[grid.Coord, style.Margin](ChannelMargin),
		alignment:      history.NewChannel[grid.Coord, style.Alignment](ChannelAlignment),
		typeface:       history.NewChannel[grid.Coord, style.Typeface](ChannelTypeface),
		rowHeight:      history.NewChannel[grid.Index, int](ChannelRowHeight),
		colWidth:       history.NewChannel[grid.Index, int](ChannelColumnWidth),
		selection:      selection.Of(selection.Cell(0, 0)),
		maxUndoEntries: DefaultMaxUndoEntries,
		maxFillSamples: DefaultMaxFillSamples,
		logger:         slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.codec == nil {
		s.codec = textio.MustNew(textio.DefaultOptions())
	}
	s.styles = []cellOps{
		cellLayer[style.Color]{s.foreground},
		cellLayer[style.Margin]{s.margin},
		cellLayer[style.Alignment]{s.alignment},
		cellLayer[style.Typeface]{s.typeface},
	}
	s.cells = append([]cellOps{cellLayer[string]{s.content}}, s.styles...)
	s.log = history.NewLog(
		history.WithMaxEntries(s.maxUndoEntries),
		history.WithLogger(s.logger),
	)
	s.logger = s.logger.With(slog.String("component", "sheet"))
	return s
}

// begin starts the transaction for one action, or returns nil while capture
// is suppressed.
func (s *Sheet) begin(label string, sel selection.Set) *history.Tx {
	if s.untracked > 0 {
		return nil
	}
	tx := history.NewTx(label)
	if len(sel) > 0 {
		tx.SetSelection(sel)
	}
	return tx
}

// commit records tx as one history entry. Actions that touched nothing are
// recorded too, so every action is one undo step.
func (s *Sheet) commit(tx *history.Tx) {
	if tx == nil {
		return
	}
	s.log.Commit(tx)
}

// Untracked runs fn with history capture suppressed. Changes made inside fn
// are applied but cannot be undone, and the existing history is kept.
func (s *Sheet) Untracked(fn func()) {
	s.untracked++
	defer func() { s.untracked-- }()
	fn()
}

// ============================================================================
// Read Operations
// ============================================================================

// Text returns the content of a cell.
func (s *Sheet) Text(x, y int) (string, bool) {
	return s.content.Grid().Lookup(grid.At(x, y))
}

// Style returns the style attributes set on a cell.
func (s *Sheet) Style(x, y int) style.Style {
	k := grid.At(x, y)
	return style.Style{
		Foreground: s.foreground.Grid().Get(k),
		Margin:     s.margin.Grid().Get(k),
		Alignment:  s.alignment.Grid().Get(k),
		Typeface:   s.typeface.Grid().Get(k),
	}
}

// RowHeight returns the explicit height of row y.
func (s *Sheet) RowHeight(y int) optional.Option[int] {
	return s.rowHeight.Grid().Get(grid.Index(y))
}

// ColumnWidth returns the explicit width of column x.
func (s *Sheet) ColumnWidth(x int) optional.Option[int] {
	return s.colWidth.Grid().Get(grid.Index(x))
}

// Content returns the live content store. It must not be modified.
func (s *Sheet) Content() *grid.Grid[string] {
	return s.content.Grid()
}

// Extent returns the range from (0,0) to the furthest populated cell of any
// cell channel, and false when every cell channel is empty.
func (s *Sheet) Extent() (selection.Range, bool) {
	var maxX, maxY int
	found := false
	for _, c := range s.cells {
		x, y, ok := c.bounds()
		if !ok {
			continue
		}
		maxX, maxY = max(maxX, x), max(maxY, y)
		found = true
	}
	return selection.NewRange(0, 0, maxX, maxY), found
}

// clip limits whole-line ranges to the used extent.
func (s *Sheet) clip(sel selection.Set) selection.Set {
	ext, _ := s.Extent()
	out := make(selection.Set, len(sel))
	for i, r := range sel {
		out[i] = r.Clip(ext.Right, ext.Bottom)
	}
	return out
}

func validate(sel selection.Set) error {
	if len(sel) == 0 {
		return ErrInvalidRange
	}
	for _, r := range sel {
		if !r.IsValid() || r.Left < 0 || r.Top < 0 {
			return ErrInvalidRange
		}
	}
	return nil
}

// ============================================================================
// Selection
// ============================================================================

// Selection returns a copy of the current selection.
func (s *Sheet) Selection() selection.Set {
	return s.selection.Clone()
}

// SetSelection replaces the current selection.
func (s *Sheet) SetSelection(sel selection.Set) error {
	if err := validate(sel); err != nil {
		return err
	}
	s.selection = sel.Clone()
	return nil
}

// Active returns the active cell, the top-left corner of the primary range.
func (s *Sheet) Active() grid.Coord {
	p := s.selection.Primary()
	return grid.At(p.Left, p.Top)
}
