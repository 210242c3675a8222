package edit

import (
	"github.com/dshills/gridstorm/internal/grid"
	"github.com/dshills/gridstorm/internal/history"
	"github.com/dshills/gridstorm/internal/selection"
)

// InsertLines shifts every entry at or past at along axis by count. The
// inserted lines are empty. It is the inverse of DeleteLines with the same
// arguments.
func InsertLines[K grid.Key[K], V any](g *grid.Sparse[K, V], axis grid.Axis, at, count int) (*grid.Sparse[K, V], history.Frame[K, V]) {
	return shiftLines(g, axis, at, count, selection.Of(lineRange(axis, at, at+count-1)), func(K) bool { return true })
}

// DeleteLines removes entries in [at, at+count) along axis and shifts the
// entries past them back by count.
func DeleteLines[K grid.Key[K], V any](g *grid.Sparse[K, V], axis grid.Axis, at, count int) (*grid.Sparse[K, V], history.Frame[K, V]) {
	return shiftLines(g, axis, at, -count, selection.Of(lineRange(axis, at, at+count-1)), func(K) bool { return true })
}

// InsertBlock shifts entries along axis by count, restricted to entries whose
// perpendicular position lies in [lo, hi]. Inserting with axis Rows pushes
// cells of columns lo..hi down.
func InsertBlock[V any](g *grid.Grid[V], axis grid.Axis, lo, hi, at, count int) (*grid.Grid[V], history.Frame[grid.Coord, V]) {
	return shiftLines(g, axis, at, count, selection.Of(blockRange(axis, lo, hi, at, at+count-1)), inSpan(axis, lo, hi))
}

// DeleteBlock is the inverse of InsertBlock: entries in [at, at+count) along
// axis within the span are removed and later entries in the span shift back.
func DeleteBlock[V any](g *grid.Grid[V], axis grid.Axis, lo, hi, at, count int) (*grid.Grid[V], history.Frame[grid.Coord, V]) {
	return shiftLines(g, axis, at, -count, selection.Of(blockRange(axis, lo, hi, at, at+count-1)), inSpan(axis, lo, hi))
}

// shiftLines moves entries selected by keep with position >= at along axis by
// delta. A negative delta deletes the -delta lines starting at at first.
func shiftLines[K grid.Key[K], V any](g *grid.Sparse[K, V], axis grid.Axis, at, delta int, sel selection.Set, keep func(K) bool) (*grid.Sparse[K, V], history.Frame[K, V]) {
	next := grid.New[K, V]()
	var touched, placed []K

	for k, v := range g.Entries() {
		p := k.Pos(axis)
		if p < at || !keep(k) {
			next.Set(k, v)
			continue
		}
		touched = append(touched, k)
		if delta < 0 && p < at-delta {
			continue
		}
		nk := k.Offset(axis, delta)
		next.Set(nk, v)
		placed = append(placed, nk)
	}

	return next, history.Diff(sel, g, next, touched, placed)
}

// inSpan selects coordinates whose position across axis lies in [lo, hi].
func inSpan(axis grid.Axis, lo, hi int) func(grid.Coord) bool {
	return func(c grid.Coord) bool {
		p := c.Pos(axis.Other())
		return p >= lo && p <= hi
	}
}

// blockRange is the rectangle spanning [lo, hi] across axis and [from, to]
// along it.
func blockRange(axis grid.Axis, lo, hi, from, to int) selection.Range {
	if axis == grid.Rows {
		return selection.NewRange(lo, from, hi, to)
	}
	return selection.NewRange(from, lo, to, hi)
}
