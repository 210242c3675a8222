package edit

import (
	"github.com/dshills/gridstorm/internal/grid"
	"github.com/dshills/gridstorm/internal/history"
	"github.com/dshills/gridstorm/internal/optional"
	"github.com/dshills/gridstorm/internal/selection"
)

// SetValue writes v at every cell covered by sel.
func SetValue[V any](g *grid.Grid[V], sel selection.Set, v V) (*grid.Grid[V], history.Frame[grid.Coord, V]) {
	next := g.Clone()
	f := history.NewFrame[grid.Coord, V](sel.Clone())
	for _, r := range sel {
		for y := r.Top; y <= r.Bottom; y++ {
			for x := r.Left; x <= r.Right; x++ {
				k := grid.At(x, y)
				f.Record(k, g.Get(k), optional.Some(v))
				next.Set(k, v)
			}
		}
	}
	return next, f
}

// SetValues writes each value in values at its cell; None removes the cell.
func SetValues[V any](g *grid.Grid[V], sel selection.Set, values map[grid.Coord]optional.Option[V]) (*grid.Grid[V], history.Frame[grid.Coord, V]) {
	next := g.Clone()
	f := history.NewFrame[grid.Coord, V](sel.Clone())
	for k, v := range values {
		f.Record(k, g.Get(k), v)
		next.Put(k, v)
	}
	return next, f
}

// RemoveRange clears every populated cell covered by sel.
func RemoveRange[V any](g *grid.Grid[V], sel selection.Set) (*grid.Grid[V], history.Frame[grid.Coord, V]) {
	next := g.Clone()
	f := history.NewFrame[grid.Coord, V](sel.Clone())
	for k, v := range g.Entries() {
		if !sel.Contains(k.X, k.Y) {
			continue
		}
		f.Record(k, optional.Some(v), optional.None[V]())
		next.Remove(k)
	}
	return next, f
}

// SetLines writes v at every index in [lo, hi] of a row or column store.
func SetLines[V any](l *grid.Lines[V], axis grid.Axis, lo, hi int, v V) (*grid.Lines[V], history.Frame[grid.Index, V]) {
	next := l.Clone()
	f := history.NewFrame[grid.Index, V](selection.Of(lineRange(axis, lo, hi)))
	for i := lo; i <= hi; i++ {
		k := grid.Index(i)
		f.Record(k, l.Get(k), optional.Some(v))
		next.Set(k, v)
	}
	return next, f
}

// RemoveLines clears every index in [lo, hi] of a row or column store.
func RemoveLines[V any](l *grid.Lines[V], axis grid.Axis, lo, hi int) (*grid.Lines[V], history.Frame[grid.Index, V]) {
	next := l.Clone()
	f := history.NewFrame[grid.Index, V](selection.Of(lineRange(axis, lo, hi)))
	for k, v := range l.Entries() {
		if int(k) < lo || int(k) > hi {
			continue
		}
		f.Record(k, optional.Some(v), optional.None[V]())
		next.Remove(k)
	}
	return next, f
}

// lineRange is the selection covering whole lines [lo, hi] along axis.
func lineRange(axis grid.Axis, lo, hi int) selection.Range {
	if axis == grid.Columns {
		return selection.Columns(lo, hi)
	}
	return selection.Rows(lo, hi)
}
