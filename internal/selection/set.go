package selection

// Set is an ordered sequence of ranges. Earlier ranges win when overlaps are
// resolved by RemoveDuplicates.
type Set []Range

// Of builds a Set from ranges.
func Of(ranges ...Range) Set {
	s := make(Set, len(ranges))
	copy(s, ranges)
	return s
}

// Clone returns a copy of the set.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	copy(out, s)
	return out
}

// Contains reports whether any range in the set contains (x, y).
func (s Set) Contains(x, y int) bool {
	for _, r := range s {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// Primary returns the first range of the set, or a zero range when empty.
func (s Set) Primary() Range {
	if len(s) == 0 {
		return Range{}
	}
	return s[0]
}

// Merge returns the bounding envelope of every range in the set. It is a
// containing rectangle, not a union.
func (s Set) Merge() Range {
	if len(s) == 0 {
		return Range{}
	}
	out := s[0]
	for _, r := range s[1:] {
		out = out.Union(r)
	}
	return out
}

// Consolidate repeatedly merges pairs of ranges sharing a full edge until no
// pair can be merged. The cells covered are unchanged.
func (s Set) Consolidate() Set {
	out := s.Clone()
	for {
		merged := false
	scan:
		for i := range out {
			for j := range out {
				if i == j || !out[i].adjacent(out[j]) {
					continue
				}
				out[i] = out[i].Union(out[j])
				out = append(out[:j], out[j+1:]...)
				merged = true
				break scan
			}
		}
		if !merged {
			return out
		}
	}
}

// RemoveDuplicates splits overlapping ranges until the set is pairwise
// disjoint. Each pass walks the ranges in order; a range overlapping an
// already accepted one is replaced by its difference with the first such
// range. Passes repeat until one finds no overlap.
func (s Set) RemoveDuplicates() Set {
	in := s.Clone()
	for {
		out := make(Set, 0, len(in))
		found := false
		for _, r := range in {
			hit := -1
			for k, acc := range out {
				if r.Overlaps(acc) {
					hit = k
					break
				}
			}
			if hit < 0 {
				out = append(out, r)
				continue
			}
			found = true
			out = append(out, r.Difference(out[hit])...)
		}
		if !found {
			return out
		}
		in = out
	}
}

// Normalize removes overlaps and then consolidates adjacent ranges.
func (s Set) Normalize() Set {
	return s.RemoveDuplicates().Consolidate()
}

// Area returns the number of cells covered, assuming the set is disjoint.
func (s Set) Area() int {
	total := 0
	for _, r := range s {
		total += r.Width() * r.Height()
	}
	return total
}
