// Package selection implements axis-aligned rectangle algebra over cell
// coordinates.
//
// A Range is an inclusive rectangle of cells. A Set is an ordered list of
// ranges; order decides priority when overlapping ranges are split apart
// but is irrelevant to the cells a Set covers.
package selection

import "fmt"

// Sentinel bounds. A range reaching MaxWidth spans every column and a range
// reaching MaxHeight spans every row.
const (
	MaxWidth  = 16383
	MaxHeight = 1048575
)

// Range is an inclusive rectangle: Left <= Right, Top <= Bottom.
type Range struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// NewRange creates a range from two corners in any order.
func NewRange(x1, y1, x2, y2 int) Range {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Range{Left: x1, Top: y1, Right: x2, Bottom: y2}
}

// Cell returns the single-cell range at (x, y).
func Cell(x, y int) Range {
	return Range{Left: x, Top: y, Right: x, Bottom: y}
}

// Rows returns the range covering rows [top, bottom] across every column.
func Rows(top, bottom int) Range {
	return NewRange(0, top, MaxWidth, bottom)
}

// Columns returns the range covering columns [left, right] across every row.
func Columns(left, right int) Range {
	return NewRange(left, 0, right, MaxHeight)
}

// All returns the range covering the whole sheet.
func All() Range {
	return Range{Left: 0, Top: 0, Right: MaxWidth, Bottom: MaxHeight}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

// Width returns the number of columns in the range.
func (r Range) Width() int {
	return r.Right - r.Left + 1
}

// Height returns the number of rows in the range.
func (r Range) Height() int {
	return r.Bottom - r.Top + 1
}

// IsValid reports whether the range is normalized.
func (r Range) IsValid() bool {
	return r.Left <= r.Right && r.Top <= r.Bottom
}

// SpansAllColumns reports whether the range covers whole rows.
func (r Range) SpansAllColumns() bool {
	return r.Left == 0 && r.Right == MaxWidth
}

// SpansAllRows reports whether the range covers whole columns.
func (r Range) SpansAllRows() bool {
	return r.Top == 0 && r.Bottom == MaxHeight
}

// IsAll reports whether the range covers the whole sheet.
func (r Range) IsAll() bool {
	return r.SpansAllColumns() && r.SpansAllRows()
}

// Contains reports whether cell (x, y) lies in the range.
func (r Range) Contains(x, y int) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// ContainsRange reports whether other lies entirely within r.
func (r Range) ContainsRange(other Range) bool {
	return other.Left >= r.Left && other.Right <= r.Right &&
		other.Top >= r.Top && other.Bottom <= r.Bottom
}

// Overlaps reports whether the two ranges share at least one cell.
func (r Range) Overlaps(other Range) bool {
	return r.Left <= other.Right && r.Right >= other.Left &&
		r.Top <= other.Bottom && r.Bottom >= other.Top
}

// Intersect returns the componentwise intersection of the two ranges.
// The result is degenerate when the ranges do not overlap; check Overlaps first.
func (r Range) Intersect(other Range) Range {
	return Range{
		Left:   max(r.Left, other.Left),
		Top:    max(r.Top, other.Top),
		Right:  min(r.Right, other.Right),
		Bottom: min(r.Bottom, other.Bottom),
	}
}

// Union returns the smallest range containing both ranges.
func (r Range) Union(other Range) Range {
	return Range{
		Left:   min(r.Left, other.Left),
		Top:    min(r.Top, other.Top),
		Right:  max(r.Right, other.Right),
		Bottom: max(r.Bottom, other.Bottom),
	}
}

// Difference partitions r minus its intersection with other into at most
// eight pairwise-disjoint rectangles: four edges sharing the intersection's
// span and four corners. Empty pieces are omitted.
// If the ranges do not overlap, r is returned unchanged.
func (r Range) Difference(other Range) []Range {
	if !r.Overlaps(other) {
		return []Range{r}
	}
	i := r.Intersect(other)

	candidates := [8]Range{
		{Left: r.Left, Top: r.Top, Right: i.Left - 1, Bottom: i.Top - 1},         // top-left
		{Left: i.Left, Top: r.Top, Right: i.Right, Bottom: i.Top - 1},            // top
		{Left: i.Right + 1, Top: r.Top, Right: r.Right, Bottom: i.Top - 1},       // top-right
		{Left: r.Left, Top: i.Top, Right: i.Left - 1, Bottom: i.Bottom},          // left
		{Left: i.Right + 1, Top: i.Top, Right: r.Right, Bottom: i.Bottom},        // right
		{Left: r.Left, Top: i.Bottom + 1, Right: i.Left - 1, Bottom: r.Bottom},   // bottom-left
		{Left: i.Left, Top: i.Bottom + 1, Right: i.Right, Bottom: r.Bottom},      // bottom
		{Left: i.Right + 1, Top: i.Bottom + 1, Right: r.Right, Bottom: r.Bottom}, // bottom-right
	}

	pieces := make([]Range, 0, len(candidates))
	for _, c := range candidates {
		if c.IsValid() {
			pieces = append(pieces, c)
		}
	}
	return pieces
}

// Shift returns the range translated by (dx, dy).
func (r Range) Shift(dx, dy int) Range {
	return Range{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Clip limits whole-line sentinels to the given extent so a range can be
// walked cell by cell. Extents below the range start leave a single line.
func (r Range) Clip(maxX, maxY int) Range {
	if r.Right == MaxWidth {
		r.Right = max(r.Left, maxX)
	}
	if r.Bottom == MaxHeight {
		r.Bottom = max(r.Top, maxY)
	}
	return r
}

// adjacent reports whether r and other share a full edge.
func (r Range) adjacent(other Range) bool {
	if r.Top == other.Top && r.Bottom == other.Bottom {
		if r.Right == other.Left-1 || other.Right == r.Left-1 {
			return true
		}
	}
	if r.Left == other.Left && r.Right == other.Right {
		if r.Bottom == other.Top-1 || other.Bottom == r.Top-1 {
			return true
		}
	}
	return false
}
