package grid

import "fmt"

// Axis selects the column (X) or row (Y) dimension.
type Axis uint8

const (
	// Columns is the horizontal axis; positions along it are column indices.
	Columns Axis = iota

	// Rows is the vertical axis; positions along it are row indices.
	Rows
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case Columns:
		return "columns"
	case Rows:
		return "rows"
	default:
		return "unknown"
	}
}

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	if a == Columns {
		return Rows
	}
	return Columns
}

// Key is the constraint satisfied by grid keys. Pos reports the key's
// position along an axis and Offset returns a copy moved along it.
type Key[K any] interface {
	comparable
	Pos(a Axis) int
	Offset(a Axis, d int) K
}

// Coord addresses a single cell.
type Coord struct {
	X int // column
	Y int // row
}

// At is shorthand for Coord{X: x, Y: y}.
func At(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Pos implements Key.
func (c Coord) Pos(a Axis) int {
	if a == Columns {
		return c.X
	}
	return c.Y
}

// Offset implements Key.
func (c Coord) Offset(a Axis, d int) Coord {
	if a == Columns {
		return Coord{X: c.X + d, Y: c.Y}
	}
	return Coord{X: c.X, Y: c.Y + d}
}

// String returns a human-readable representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Index addresses a whole row or column. It has a single dimension, so its
// position is the same along either axis.
type Index int

// Pos implements Key.
func (i Index) Pos(Axis) int {
	return int(i)
}

// Offset implements Key.
func (i Index) Offset(_ Axis, d int) Index {
	return i + Index(d)
}
