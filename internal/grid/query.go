package grid

import "math"

// NotFound is returned by the boundary scans when no edge exists.
const NotFound = -1

// BoundingBox returns the point-wise maximum column and row over all keys,
// or (0, 0) when the store is empty.
func (s *Sparse[K, V]) BoundingBox() (maxX, maxY int) {
	for k := range s.m {
		maxX = max(maxX, k.Pos(Columns))
		maxY = max(maxY, k.Pos(Rows))
	}
	return maxX, maxY
}

// RightEdge returns the largest column among keys whose row lies in
// [minY, maxY], or 0 if there are none.
func (s *Sparse[K, V]) RightEdge(minY, maxY int) int {
	edge := 0
	for k := range s.m {
		if y := k.Pos(Rows); y >= minY && y <= maxY {
			edge = max(edge, k.Pos(Columns))
		}
	}
	return edge
}

// BottomEdge returns the largest row among keys whose column lies in
// [minX, maxX], or 0 if there are none.
func (s *Sparse[K, V]) BottomEdge(minX, maxX int) int {
	edge := 0
	for k := range s.m {
		if x := k.Pos(Columns); x >= minX && x <= maxX {
			edge = max(edge, k.Pos(Rows))
		}
	}
	return edge
}

// TopLeft returns the point-wise minimum column and row over all keys,
// starting from (boundX, boundY). An empty store returns the bounds.
func (s *Sparse[K, V]) TopLeft(boundX, boundY int) (minX, minY int) {
	minX, minY = boundX, boundY
	for k := range s.m {
		minX = min(minX, k.Pos(Columns))
		minY = min(minY, k.Pos(Rows))
	}
	return minX, minY
}

// BoundaryDown scans rows below y within columns [minX, maxX] and returns the
// nearest row that starts or ends a contiguous run of populated cells.
func (s *Sparse[K, V]) BoundaryDown(minX, maxX, y int) int {
	return s.boundary(Rows, minX, maxX, y, true)
}

// BoundaryUp is the upward mirror of BoundaryDown.
func (s *Sparse[K, V]) BoundaryUp(minX, maxX, y int) int {
	return s.boundary(Rows, minX, maxX, y, false)
}

// BoundaryRight scans columns right of x within rows [minY, maxY] and returns
// the nearest column that starts or ends a contiguous run of populated cells.
func (s *Sparse[K, V]) BoundaryRight(minY, maxY, x int) int {
	return s.boundary(Columns, minY, maxY, x, true)
}

// BoundaryLeft is the leftward mirror of BoundaryRight.
func (s *Sparse[K, V]) BoundaryLeft(minY, maxY, x int) int {
	return s.boundary(Columns, minY, maxY, x, false)
}

// boundary scans along axis. Keys qualify when their perpendicular position
// is in [lo, hi] and their scanned position is strictly past from. A key is
// an edge when either neighbour along axis is absent. Forward scans return
// the smallest qualifying edge, backward scans the largest.
func (s *Sparse[K, V]) boundary(axis Axis, lo, hi, from int, forward bool) int {
	best := math.MaxInt
	if !forward {
		best = math.MinInt
	}
	found := false

	for k := range s.m {
		if p := k.Pos(axis.Other()); p < lo || p > hi {
			continue
		}
		c := k.Pos(axis)
		if forward && c <= from || !forward && c >= from {
			continue
		}
		_, next := s.m[k.Offset(axis, 1)]
		_, prev := s.m[k.Offset(axis, -1)]
		if next && prev {
			continue
		}
		if forward && c < best || !forward && c > best {
			best = c
			found = true
		}
	}

	if !found {
		return NotFound
	}
	return best
}
