package edit

import (
	"github.com/dshills/gridstorm/internal/grid"
	"github.com/dshills/gridstorm/internal/history"
)

// MoveInsertDelete reorders lines [lo, hi] along axis by delta, the way a
// drag of whole rows or columns does: a gap is inserted at the target, the
// block is moved into it, and the vacated span is deleted unless
// leaveOriginal is set.
//
// When moving backwards the insertion shifts the source block itself by its
// own length, so the move and the delete address the shifted span. With
// leaveOriginal the block is copied and nothing is deleted.
// The three steps are merged into one frame.
func MoveInsertDelete[K grid.Key[K], V any](g *grid.Sparse[K, V], axis grid.Axis, lo, hi, delta int, leaveOriginal bool) (*grid.Sparse[K, V], history.Frame[K, V]) {
	n := hi - lo + 1

	g1, inserted := InsertLines(g, axis, lo+delta, n)

	from, to, by := lo, hi, delta
	if delta < 0 {
		from, to, by = lo+n, hi+n, delta-n
	}
	g2, moved := MoveLines(g1, axis, from, to, by, leaveOriginal)

	if leaveOriginal {
		return g2, history.Merge(inserted, moved)
	}

	g3, deleted := DeleteLines(g2, axis, from, n)
	return g3, history.Merge(inserted, moved, deleted)
}
