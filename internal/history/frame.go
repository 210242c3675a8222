package history

import (
	"github.com/dshills/gridstorm/internal/grid"
	"github.com/dshills/gridstorm/internal/optional"
	"github.com/dshills/gridstorm/internal/selection"
)

// Frame records one channel's part of a logical action: the value of every
// touched key before and after the action. A None value means the key was,
// or becomes, absent.
type Frame[K grid.Key[K], V any] struct {
	Selection selection.Set
	Previous  map[K]optional.Option[V]
	Next      map[K]optional.Option[V]
}

// NewFrame creates an empty frame for the given affected selection.
func NewFrame[K grid.Key[K], V any](sel selection.Set) Frame[K, V] {
	return Frame[K, V]{
		Selection: sel,
		Previous:  make(map[K]optional.Option[V]),
		Next:      make(map[K]optional.Option[V]),
	}
}

// Record notes that k went from prev to next. The first recorded previous
// value and the last recorded next value win.
func (f *Frame[K, V]) Record(k K, prev, next optional.Option[V]) {
	if f.Previous == nil {
		f.Previous = make(map[K]optional.Option[V])
	}
	if f.Next == nil {
		f.Next = make(map[K]optional.Option[V])
	}
	if _, seen := f.Previous[k]; !seen {
		f.Previous[k] = prev
	}
	f.Next[k] = next
}

// IsEmpty reports whether the frame touches no keys.
func (f Frame[K, V]) IsEmpty() bool {
	return len(f.Previous) == 0 && len(f.Next) == 0
}

// Len returns the number of touched keys.
func (f Frame[K, V]) Len() int {
	return len(f.Next)
}

// Apply returns a copy of g with the frame's Previous values (forward false)
// or Next values (forward true) written over it.
func (f Frame[K, V]) Apply(g *grid.Sparse[K, V], forward bool) *grid.Sparse[K, V] {
	values := f.Previous
	if forward {
		values = f.Next
	}
	out := g.Clone()
	for k, v := range values {
		out.Put(k, v)
	}
	return out
}

// Diff builds a frame for the transition from before to after over keys.
func Diff[K grid.Key[K], V any](sel selection.Set, before, after *grid.Sparse[K, V], keys ...[]K) Frame[K, V] {
	f := NewFrame[K, V](sel)
	for _, ks := range keys {
		for _, k := range ks {
			f.Record(k, before.Get(k), after.Get(k))
		}
	}
	return f
}

// Merge combines frames produced by consecutive steps of one action into a
// single frame. Previous values keep the earliest step on conflict, Next
// values the latest, and the selections are joined and normalized.
func Merge[K grid.Key[K], V any](frames ...Frame[K, V]) Frame[K, V] {
	out := NewFrame[K, V](nil)
	var sel selection.Set
	for _, f := range frames {
		for k, v := range f.Previous {
			if _, seen := out.Previous[k]; !seen {
				out.Previous[k] = v
			}
		}
		for k, v := range f.Next {
			out.Next[k] = v
		}
		sel = append(sel, f.Selection...)
	}
	out.Selection = sel.Normalize()
	return out
}
