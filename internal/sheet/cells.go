package sheet

import (
	"github.com/dshills/gridstorm/internal/edit"
	"github.com/dshills/gridstorm/internal/grid"
	"github.com/dshills/gridstorm/internal/history"
	"github.com/dshills/gridstorm/internal/selection"
	"github.com/dshills/gridstorm/internal/style"
)

func setCells[V any](tx *history.Tx, ch *history.Channel[grid.Coord, V], sel selection.Set, v V) {
	g, f := edit.SetValue(ch.Grid(), sel, v)
	ch.Commit(tx, g, f)
}

// cellAction validates sel, clips whole lines and runs fn as one action.
func (s *Sheet) cellAction(label string, sel selection.Set, fn func(tx *history.Tx, sel selection.Set)) error {
	if err := validate(sel); err != nil {
		return err
	}
	sel = s.clip(sel)
	tx := s.begin(label, sel)
	fn(tx, sel)
	s.commit(tx)
	return nil
}

// SetText writes text into every cell of sel.
func (s *Sheet) SetText(sel selection.Set, text string) error {
	return s.cellAction("set text", sel, func(tx *history.Tx, sel selection.Set) {
		setCells(tx, s.content, sel, text)
	})
}

// Clear removes the content of every cell in sel, keeping styles.
func (s *Sheet) Clear(sel selection.Set) error {
	return s.cellAction("clear", sel, func(tx *history.Tx, sel selection.Set) {
		s.cells[0].removeRange(tx, sel)
	})
}

// ClearAll removes content and styles of every cell in sel.
func (s *Sheet) ClearAll(sel selection.Set) error {
	return s.cellAction("clear all", sel, func(tx *history.Tx, sel selection.Set) {
		for _, c := range s.cells {
			c.removeRange(tx, sel)
		}
	})
}

// SetForeground sets the text color of every cell in sel.
func (s *Sheet) SetForeground(sel selection.Set, c style.Color) error {
	return s.cellAction("set foreground", sel, func(tx *history.Tx, sel selection.Set) {
		setCells(tx, s.foreground, sel, c)
	})
}

// SetMargin sets the padding of every cell in sel.
func (s *Sheet) SetMargin(sel selection.Set, m style.Margin) error {
	return s.cellAction("set margin", sel, func(tx *history.Tx, sel selection.Set) {
		setCells(tx, s.margin, sel, m)
	})
}

// SetAlignment sets the alignment of every cell in sel.
func (s *Sheet) SetAlignment(sel selection.Set, a style.Alignment) error {
	return s.cellAction("set alignment", sel, func(tx *history.Tx, sel selection.Set) {
		setCells(tx, s.alignment, sel, a)
	})
}

// SetTypeface sets the font of every cell in sel.
func (s *Sheet) SetTypeface(sel selection.Set, tf style.Typeface) error {
	return s.cellAction("set typeface", sel, func(tx *history.Tx, sel selection.Set) {
		setCells(tx, s.typeface, sel, tf)
	})
}

// ApplyStyle sets every attribute present in st on the cells of sel as a
// single action. Attributes absent from st are left as they are.
func (s *Sheet) ApplyStyle(sel selection.Set, st style.Style) error {
	return s.cellAction("apply style", sel, func(tx *history.Tx, sel selection.Set) {
		if c, ok := st.Foreground.Get(); ok {
			setCells(tx, s.foreground, sel, c)
		}
		if m, ok := st.Margin.Get(); ok {
			setCells(tx, s.margin, sel, m)
		}
		if a, ok := st.Alignment.Get(); ok {
			setCells(tx, s.alignment, sel, a)
		}
		if tf, ok := st.Typeface.Get(); ok {
			setCells(tx, s.typeface, sel, tf)
		}
	})
}

// SetRowHeight sets the height of rows [top, bottom]. A height of zero or
// less restores the default height.
func (s *Sheet) SetRowHeight(top, bottom, height int) error {
	return s.setLines("set row height", s.rowHeight, grid.Rows, top, bottom, height)
}

// SetColumnWidth sets the width of columns [left, right]. A width of zero
// or less restores the default width.
func (s *Sheet) SetColumnWidth(left, right, width int) error {
	return s.setLines("set column width", s.colWidth, grid.Columns, left, right, width)
}

func (s *Sheet) setLines(label string, ch *history.Channel[grid.Index, int], axis grid.Axis, lo, hi, v int) error {
	if lo < 0 || hi < lo {
		return ErrInvalidRange
	}
	tx := s.begin(label, nil)
	if v > 0 {
		g, f := edit.SetLines(ch.Grid(), axis, lo, hi, v)
		ch.Commit(tx, g, f)
	} else {
		g, f := edit.RemoveLines(ch.Grid(), axis, lo, hi)
		ch.Commit(tx, g, f)
	}
	s.commit(tx)
	return nil
}
