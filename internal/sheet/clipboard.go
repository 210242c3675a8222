package sheet

import (
	"log/slog"

	"github.com/dshills/gridstorm/internal/edit"
	"github.com/dshills/gridstorm/internal/grid"
	"github.com/dshills/gridstorm/internal/optional"
	"github.com/dshills/gridstorm/internal/selection"
)

// Copy returns the content of r as delimited text.
func (s *Sheet) Copy(r selection.Range) (string, error) {
	if err := validate(selection.Of(r)); err != nil {
		return "", err
	}
	r = s.clip(selection.Of(r))[0]
	return s.codec.Encode(s.content.Grid(), r), nil
}

// Paste writes delimited text with its top-left field at (x, y). Every cell
// of the pasted block is overwritten; empty fields clear their cell. It
// returns the pasted range.
func (s *Sheet) Paste(x, y int, text string) (selection.Range, error) {
	if x < 0 || y < 0 {
		return selection.Range{}, ErrInvalidRange
	}
	src, r, err := s.codec.Decode(text)
	if err != nil {
		return selection.Range{}, err
	}
	dst := r.Shift(x, y)

	values := make(map[grid.Coord]optional.Option[string], r.Width()*r.Height())
	for row := r.Top; row <= r.Bottom; row++ {
		for col := r.Left; col <= r.Right; col++ {
			values[grid.At(col+x, row+y)] = src.Get(grid.At(col, row))
		}
	}

	sel := selection.Of(dst)
	tx := s.begin("paste", sel)
	g, f := edit.SetValues(s.content.Grid(), sel, values)
	s.content.Commit(tx, g, f)
	s.commit(tx)
	s.selection = sel
	return dst, nil
}

// Load replaces the whole sheet with the decoded text. Styles, line sizes
// and history are cleared; Load itself cannot be undone.
func (s *Sheet) Load(text string) error {
	g, r, err := s.codec.Decode(text)
	if err != nil {
		return err
	}
	for _, c := range s.cells {
		c.reset()
	}
	lineLayer[int]{s.rowHeight}.reset()
	lineLayer[int]{s.colWidth}.reset()
	s.content.Reset(g)
	s.log.Clear()
	s.selection = selection.Of(selection.Cell(0, 0))

	s.logger.Info("loaded",
		slog.Int("rows", r.Height()),
		slog.Int("columns", r.Width()),
		slog.Int("cells", g.Len()),
	)
	return nil
}

// String returns the used extent of the sheet as delimited text, or an
// empty string for an empty sheet.
func (s *Sheet) String() string {
	if s.content.Grid().IsEmpty() {
		return ""
	}
	x, y := s.content.Grid().BoundingBox()
	return s.codec.Encode(s.content.Grid(), selection.NewRange(0, 0, x, y))
}
