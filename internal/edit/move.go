package edit

import (
	"github.com/dshills/gridstorm/internal/grid"
	"github.com/dshills/gridstorm/internal/history"
	"github.com/dshills/gridstorm/internal/selection"
)

// MoveBlock moves the cells inside src by (dx, dy). The destination
// rectangle is overwritten as a whole: cells there that src does not
// re-populate are cleared. With leaveOriginal the source cells are kept,
// making the move a copy.
func MoveBlock[V any](g *grid.Grid[V], src selection.Range, dx, dy int, leaveOriginal bool) (*grid.Grid[V], history.Frame[grid.Coord, V]) {
	dst := src.Shift(dx, dy)
	return move(g, selection.Of(src, dst),
		func(k grid.Coord) bool { return src.Contains(k.X, k.Y) },
		func(k grid.Coord) bool { return dst.Contains(k.X, k.Y) },
		func(k grid.Coord) grid.Coord { return grid.At(k.X+dx, k.Y+dy) },
		leaveOriginal)
}

// MoveLines moves every entry whose position along axis lies in [lo, hi] by
// delta along axis, ignoring the other axis. Destination lines are
// overwritten as a whole.
func MoveLines[K grid.Key[K], V any](g *grid.Sparse[K, V], axis grid.Axis, lo, hi, delta int, leaveOriginal bool) (*grid.Sparse[K, V], history.Frame[K, V]) {
	inLines := func(from, to int) func(K) bool {
		return func(k K) bool {
			p := k.Pos(axis)
			return p >= from && p <= to
		}
	}
	sel := selection.Of(lineRange(axis, lo, hi), lineRange(axis, lo+delta, hi+delta))
	return move(g, sel,
		inLines(lo, hi),
		inLines(lo+delta, hi+delta),
		func(k K) K { return k.Offset(axis, delta) },
		leaveOriginal)
}

// move relocates entries matching inSrc with shift, clearing every entry
// matching inDst first.
func move[K grid.Key[K], V any](g *grid.Sparse[K, V], sel selection.Set, inSrc, inDst func(K) bool, shift func(K) K, leaveOriginal bool) (*grid.Sparse[K, V], history.Frame[K, V]) {
	next := g.Clone()
	var touched []K
	moved := make(map[K]V)

	for k, v := range g.Entries() {
		if inSrc(k) {
			moved[k] = v
			if !leaveOriginal {
				next.Remove(k)
				touched = append(touched, k)
			}
		}
		if inDst(k) {
			next.Remove(k)
			touched = append(touched, k)
		}
	}

	for k, v := range moved {
		nk := shift(k)
		next.Set(nk, v)
		touched = append(touched, nk)
	}

	return next, history.Diff(sel, g, next, touched)
}
