// Package autofill infers a continuation from a sample of cell texts.
//
// Each sample is split into a prefix and a trailing token. Samples sharing a
// prefix form a group, and each group is extended as an arithmetic,
// geometric or alphabetic series, or repeated literally when no constant
// step exists. Missing samples stay missing in the continuation.
package autofill

import "github.com/dshills/gridstorm/internal/optional"

// groupKey identifies a group. Absent samples get a key of their own that
// no text can share.
type groupKey struct {
	prefix string
	absent int
}

type group struct {
	key      groupKey
	suffixes []string
	series   series
}

type slot struct {
	group int // index into Sequence.groups
	local int // position of the sample within its group
}

// Sequence is the continuation inferred from a sample.
type Sequence struct {
	groups []*group
	slots  []slot
}

// New infers a sequence from samples. Step(k) then yields the value k
// positions past the last sample.
func New(samples []optional.Option[string]) *Sequence {
	seq := &Sequence{slots: make([]slot, len(samples))}
	index := make(map[groupKey]int)

	for i, sample := range samples {
		key := groupKey{absent: -1}
		var suffix string
		if text, ok := sample.Get(); ok {
			key.prefix, suffix = Split(text)
		} else {
			key.absent = i
		}

		gi, ok := index[key]
		if !ok {
			gi = len(seq.groups)
			index[key] = gi
			seq.groups = append(seq.groups, &group{key: key})
		}
		g := seq.groups[gi]
		seq.slots[i] = slot{group: gi, local: len(g.suffixes)}
		g.suffixes = append(g.suffixes, suffix)
	}

	for _, g := range seq.groups {
		if g.key.absent < 0 {
			g.series = infer(g.suffixes)
		}
	}
	return seq
}

// FromStrings infers a sequence from present samples. Empty strings count
// as missing.
func FromStrings(samples ...string) *Sequence {
	opts := make([]optional.Option[string], len(samples))
	for i, s := range samples {
		if s != "" {
			opts[i] = optional.Some(s)
		}
	}
	return New(opts)
}

// Len returns the sample size.
func (s *Sequence) Len() int {
	return len(s.slots)
}

// Step returns the value k positions past the last sample, for k >= 1.
// Positions that continue a missing sample yield None.
func (s *Sequence) Step(k int) optional.Option[string] {
	n := len(s.slots)
	if n == 0 || k < 1 {
		return optional.None[string]()
	}

	pos := n - 1 + k
	sl := s.slots[pos%n]
	g := s.groups[sl.group]
	if g.key.absent >= 0 {
		return optional.None[string]()
	}

	i := (pos/n)*len(g.suffixes) + sl.local
	return optional.Some(g.key.prefix + g.series.at(i))
}

// KindAt reports the pattern used for the sample at position i.
func (s *Sequence) KindAt(i int) (Kind, bool) {
	if i < 0 || i >= len(s.slots) {
		return Cyclic, false
	}
	g := s.groups[s.slots[i].group]
	if g.key.absent >= 0 {
		return Cyclic, false
	}
	return g.series.kind, true
}

// Iterator walks a Sequence step by step.
type Iterator struct {
	seq *Sequence
	k   int
}

// Iter returns an iterator positioned before step 1.
func (s *Sequence) Iter() *Iterator {
	return &Iterator{seq: s}
}

// Next advances and returns the next value.
func (it *Iterator) Next() optional.Option[string] {
	it.k++
	return it.seq.Step(it.k)
}

// Preview returns the value the count-th filled cell would receive, without
// producing the values before it anywhere observable.
func Preview(samples []optional.Option[string], count int) optional.Option[string] {
	if count < 1 {
		return optional.None[string]()
	}
	it := New(samples).Iter()
	for range count - 1 {
		it.Next()
	}
	return it.Next()
}
