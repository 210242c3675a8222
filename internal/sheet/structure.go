package sheet

import (
	"github.com/dshills/gridstorm/internal/grid"
	"github.com/dshills/gridstorm/internal/selection"
)

// lineLayers returns every channel affected by whole-line edits along axis.
func (s *Sheet) lineLayers(axis grid.Axis) []layer {
	out := make([]layer, 0, len(s.cells)+1)
	for _, c := range s.cells {
		out = append(out, c)
	}
	if axis == grid.Rows {
		out = append(out, lineLayer[int]{s.rowHeight})
	} else {
		out = append(out, lineLayer[int]{s.colWidth})
	}
	return out
}

func wholeLines(axis grid.Axis, lo, hi int) selection.Range {
	if axis == grid.Columns {
		return selection.Columns(lo, hi)
	}
	return selection.Rows(lo, hi)
}

// InsertRows inserts count empty rows before row at.
func (s *Sheet) InsertRows(at, count int) error {
	return s.insertLines("insert rows", grid.Rows, at, count)
}

// InsertColumns inserts count empty columns before column at.
func (s *Sheet) InsertColumns(at, count int) error {
	return s.insertLines("insert columns", grid.Columns, at, count)
}

// DeleteRows deletes count rows starting at row at.
func (s *Sheet) DeleteRows(at, count int) error {
	return s.deleteLines("delete rows", grid.Rows, at, count)
}

// DeleteColumns deletes count columns starting at column at.
func (s *Sheet) DeleteColumns(at, count int) error {
	return s.deleteLines("delete columns", grid.Columns, at, count)
}

func (s *Sheet) insertLines(label string, axis grid.Axis, at, count int) error {
	if at < 0 {
		return ErrInvalidRange
	}
	if count <= 0 {
		return ErrInvalidCount
	}
	tx := s.begin(label, selection.Of(wholeLines(axis, at, at+count-1)))
	for _, l := range s.lineLayers(axis) {
		l.insertLines(tx, axis, at, count)
	}
	s.commit(tx)
	return nil
}

func (s *Sheet) deleteLines(label string, axis grid.Axis, at, count int) error {
	if at < 0 {
		return ErrInvalidRange
	}
	if count <= 0 {
		return ErrInvalidCount
	}
	tx := s.begin(label, selection.Of(wholeLines(axis, at, at+count-1)))
	for _, l := range s.lineLayers(axis) {
		l.deleteLines(tx, axis, at, count)
	}
	s.commit(tx)
	return nil
}

// InsertCells inserts an empty block the size of r at r, pushing the cells
// of the affected columns down (shift Rows) or of the affected rows right
// (shift Columns).
func (s *Sheet) InsertCells(r selection.Range, shift grid.Axis) error {
	return s.shiftCells("insert cells", r, shift, true)
}

// DeleteCells removes the cells of r and pulls the cells below (shift Rows)
// or to the right (shift Columns) into the gap.
func (s *Sheet) DeleteCells(r selection.Range, shift grid.Axis) error {
	return s.shiftCells("delete cells", r, shift, false)
}

func (s *Sheet) shiftCells(label string, r selection.Range, shift grid.Axis, insert bool) error {
	if err := validate(selection.Of(r)); err != nil {
		return err
	}
	r = s.clip(selection.Of(r))[0]
	lo, hi, at, count := r.Left, r.Right, r.Top, r.Height()
	if shift == grid.Columns {
		lo, hi, at, count = r.Top, r.Bottom, r.Left, r.Width()
	}
	tx := s.begin(label, selection.Of(r))
	for _, c := range s.cells {
		if insert {
			c.insertBlock(tx, shift, lo, hi, at, count)
		} else {
			c.deleteBlock(tx, shift, lo, hi, at, count)
		}
	}
	s.commit(tx)
	return nil
}

// MoveBlock moves the cells of src by (dx, dy) on every cell channel. The
// destination is overwritten. With duplicate set the source is kept. A zero
// offset returns nil without recording an undo entry.
func (s *Sheet) MoveBlock(src selection.Range, dx, dy int, duplicate bool) error {
	if err := validate(selection.Of(src)); err != nil {
		return err
	}
	src = s.clip(selection.Of(src))[0]
	dst := src.Shift(dx, dy)
	if dst.Left < 0 || dst.Top < 0 || dst.Right > selection.MaxWidth || dst.Bottom > selection.MaxHeight {
		return ErrInvalidRange
	}
	if dx == 0 && dy == 0 {
		return nil
	}
	label := "move block"
	if duplicate {
		label = "copy block"
	}
	tx := s.begin(label, selection.Of(src))
	for _, c := range s.cells {
		c.moveBlock(tx, src, dx, dy, duplicate)
	}
	s.commit(tx)
	s.selection = selection.Of(dst)
	return nil
}

// MoveRows reorders rows [lo, hi] the way dragging them does. A negative
// delta moves the block up by -delta rows. A positive delta inserts the
// block before the row that was at lo+delta, so the block ends delta-n
// rows further down once the vacated rows are removed. With duplicate set
// the original rows are kept.
//
// A zero delta, or a positive delta smaller than the block height (a drop
// inside the block itself), is a no-op: it returns nil, records no undo
// entry and leaves the selection unchanged. Callers that need to tell the
// no-op apart can compare UndoCount before and after.
func (s *Sheet) MoveRows(lo, hi, delta int, duplicate bool) error {
	return s.reorder("move rows", grid.Rows, lo, hi, delta, duplicate)
}

// MoveColumns is the column counterpart of MoveRows.
func (s *Sheet) MoveColumns(lo, hi, delta int, duplicate bool) error {
	return s.reorder("move columns", grid.Columns, lo, hi, delta, duplicate)
}

func (s *Sheet) reorder(label string, axis grid.Axis, lo, hi, delta int, duplicate bool) error {
	if lo < 0 || hi < lo || lo+delta < 0 {
		return ErrInvalidRange
	}
	n := hi - lo + 1
	if delta == 0 || (delta > 0 && delta < n) {
		return nil
	}
	tx := s.begin(label, selection.Of(wholeLines(axis, lo, hi)))
	for _, l := range s.lineLayers(axis) {
		l.reorder(tx, axis, lo, hi, delta, duplicate)
	}
	s.commit(tx)

	at := lo + delta
	if delta > 0 && !duplicate {
		at -= n
	}
	s.selection = selection.Of(wholeLines(axis, at, at+n-1))
	return nil
}
