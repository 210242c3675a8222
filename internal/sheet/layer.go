package sheet

import (
	"github.com/dshills/gridstorm/internal/edit"
	"github.com/dshills/gridstorm/internal/grid"
	"github.com/dshills/gridstorm/internal/history"
	"github.com/dshills/gridstorm/internal/optional"
	"github.com/dshills/gridstorm/internal/selection"
)

// Channel names.
const (
	ChannelContent     = "content"
	ChannelForeground  = "foreground"
	ChannelMargin      = "margin"
	ChannelAlignment   = "alignment"
	ChannelTypeface    = "typeface"
	ChannelRowHeight   = "row_height"
	ChannelColumnWidth = "column_width"
)

// layer is a channel seen through the operations that do not depend on its
// value type.
type layer interface {
	insertLines(tx *history.Tx, axis grid.Axis, at, count int)
	deleteLines(tx *history.Tx, axis grid.Axis, at, count int)
	reorder(tx *history.Tx, axis grid.Axis, lo, hi, delta int, keep bool)
	reset()
}

// cellOps are the layer operations only cell channels support.
type cellOps interface {
	layer
	insertBlock(tx *history.Tx, axis grid.Axis, lo, hi, at, count int)
	deleteBlock(tx *history.Tx, axis grid.Axis, lo, hi, at, count int)
	moveBlock(tx *history.Tx, src selection.Range, dx, dy int, keep bool)
	removeRange(tx *history.Tx, sel selection.Set)
	repeat(tx *history.Tx, sel selection.Set, lanes []lane)
	bounds() (maxX, maxY int, ok bool)
}

type lineLayer[V any] struct {
	ch *history.Channel[grid.Index, V]
}

func (l lineLayer[V]) insertLines(tx *history.Tx, axis grid.Axis, at, count int) {
	g, f := edit.InsertLines(l.ch.Grid(), axis, at, count)
	l.ch.Commit(tx, g, f)
}

func (l lineLayer[V]) deleteLines(tx *history.Tx, axis grid.Axis, at, count int) {
	g, f := edit.DeleteLines(l.ch.Grid(), axis, at, count)
	l.ch.Commit(tx, g, f)
}

func (l lineLayer[V]) reorder(tx *history.Tx, axis grid.Axis, lo, hi, delta int, keep bool) {
	g, f := edit.MoveInsertDelete(l.ch.Grid(), axis, lo, hi, delta, keep)
	l.ch.Commit(tx, g, f)
}

func (l lineLayer[V]) reset() {
	l.ch.Reset(nil)
}

type cellLayer[V any] struct {
	ch *history.Channel[grid.Coord, V]
}

func (l cellLayer[V]) insertLines(tx *history.Tx, axis grid.Axis, at, count int) {
	g, f := edit.InsertLines(l.ch.Grid(), axis, at, count)
	l.ch.Commit(tx, g, f)
}

func (l cellLayer[V]) deleteLines(tx *history.Tx, axis grid.Axis, at, count int) {
	g, f := edit.DeleteLines(l.ch.Grid(), axis, at, count)
	l.ch.Commit(tx, g, f)
}

func (l cellLayer[V]) reorder(tx *history.Tx, axis grid.Axis, lo, hi, delta int, keep bool) {
	g, f := edit.MoveInsertDelete(l.ch.Grid(), axis, lo, hi, delta, keep)
	l.ch.Commit(tx, g, f)
}

func (l cellLayer[V]) reset() {
	l.ch.Reset(nil)
}

func (l cellLayer[V]) insertBlock(tx *history.Tx, axis grid.Axis, lo, hi, at, count int) {
	g, f := edit.InsertBlock(l.ch.Grid(), axis, lo, hi, at, count)
	l.ch.Commit(tx, g, f)
}

func (l cellLayer[V]) deleteBlock(tx *history.Tx, axis grid.Axis, lo, hi, at, count int) {
	g, f := edit.DeleteBlock(l.ch.Grid(), axis, lo, hi, at, count)
	l.ch.Commit(tx, g, f)
}

func (l cellLayer[V]) moveBlock(tx *history.Tx, src selection.Range, dx, dy int, keep bool) {
	g, f := edit.MoveBlock(l.ch.Grid(), src, dx, dy, keep)
	l.ch.Commit(tx, g, f)
}

func (l cellLayer[V]) removeRange(tx *history.Tx, sel selection.Set) {
	g, f := edit.RemoveRange(l.ch.Grid(), sel)
	l.ch.Commit(tx, g, f)
}

// repeat copies source values onto the targets of each lane cyclically.
func (l cellLayer[V]) repeat(tx *history.Tx, sel selection.Set, lanes []lane) {
	g := l.ch.Grid()
	values := make(map[grid.Coord]optional.Option[V])
	for _, ln := range lanes {
		if len(ln.sources) == 0 {
			continue
		}
		for k, t := range ln.targets {
			values[t] = g.Get(ln.sources[k%len(ln.sources)])
		}
	}
	next, f := edit.SetValues(g, sel, values)
	l.ch.Commit(tx, next, f)
}

func (l cellLayer[V]) bounds() (int, int, bool) {
	g := l.ch.Grid()
	if g.IsEmpty() {
		return 0, 0, false
	}
	x, y := g.BoundingBox()
	return x, y, true
}
