// Package grid provides the sparse coordinate-addressed stores behind every
// sheet attribute.
//
// A missing key means "default value"; callers substitute their own default.
// Each attribute lives in its own store so stores never share storage.
package grid

import (
	"iter"
	"maps"
	"slices"

	"github.com/dshills/gridstorm/internal/optional"
)

// Sparse maps keys to values.
type Sparse[K Key[K], V any] struct {
	m map[K]V
}

// Grid is a sparse store keyed by cell coordinate.
type Grid[V any] = Sparse[Coord, V]

// Lines is a sparse store keyed by row or column index.
type Lines[V any] = Sparse[Index, V]

// New creates an empty store.
func New[K Key[K], V any]() *Sparse[K, V] {
	return &Sparse[K, V]{m: make(map[K]V)}
}

// NewGrid creates an empty cell grid.
func NewGrid[V any]() *Grid[V] {
	return New[Coord, V]()
}

// NewLines creates an empty row/column store.
func NewLines[V any]() *Lines[V] {
	return New[Index, V]()
}

// FromMap creates a store holding a copy of m.
func FromMap[K Key[K], V any](m map[K]V) *Sparse[K, V] {
	s := &Sparse[K, V]{m: make(map[K]V, len(m))}
	maps.Copy(s.m, m)
	return s
}

// Get returns the value at k, or None if absent.
func (s *Sparse[K, V]) Get(k K) optional.Option[V] {
	v, ok := s.m[k]
	return optional.From(v, ok)
}

// Lookup returns the value at k and whether it is present.
func (s *Sparse[K, V]) Lookup(k K) (V, bool) {
	v, ok := s.m[k]
	return v, ok
}

// Has reports whether k is present.
func (s *Sparse[K, V]) Has(k K) bool {
	_, ok := s.m[k]
	return ok
}

// Set stores v at k.
func (s *Sparse[K, V]) Set(k K, v V) {
	if s.m == nil {
		s.m = make(map[K]V)
	}
	s.m[k] = v
}

// Remove deletes k.
func (s *Sparse[K, V]) Remove(k K) {
	delete(s.m, k)
}

// Put stores v at k when present, or removes k otherwise.
func (s *Sparse[K, V]) Put(k K, v optional.Option[V]) {
	if val, ok := v.Get(); ok {
		s.Set(k, val)
		return
	}
	s.Remove(k)
}

// Len returns the number of present keys.
func (s *Sparse[K, V]) Len() int {
	return len(s.m)
}

// IsEmpty reports whether no keys are present.
func (s *Sparse[K, V]) IsEmpty() bool {
	return len(s.m) == 0
}

// Entries iterates over all key/value pairs in unspecified order.
func (s *Sparse[K, V]) Entries() iter.Seq2[K, V] {
	return maps.All(s.m)
}

// Keys returns all present keys in unspecified order.
func (s *Sparse[K, V]) Keys() []K {
	return slices.Collect(maps.Keys(s.m))
}

// Map returns a copy of the underlying map.
func (s *Sparse[K, V]) Map() map[K]V {
	return maps.Clone(s.m)
}

// Clone returns an independent copy of the store.
func (s *Sparse[K, V]) Clone() *Sparse[K, V] {
	return FromMap(s.m)
}

// Clear removes every key.
func (s *Sparse[K, V]) Clear() {
	clear(s.m)
}
