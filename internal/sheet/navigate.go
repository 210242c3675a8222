package sheet

import (
	"github.com/dshills/gridstorm/internal/grid"
	"github.com/dshills/gridstorm/internal/selection"
)

// Jump moves the active cell to the next edge of a block of content in
// dir, or to the sheet border when there is none, and selects it.
func (s *Sheet) Jump(dir Direction) grid.Coord {
	at := s.Active()
	g := s.content.Grid()
	x, y := at.X, at.Y

	switch dir {
	case Down:
		y = orElse(g.BoundaryDown(x, x, y), selection.MaxHeight)
	case Up:
		y = orElse(g.BoundaryUp(x, x, y), 0)
	case Right:
		x = orElse(g.BoundaryRight(y, y, x), selection.MaxWidth)
	case Left:
		x = orElse(g.BoundaryLeft(y, y, x), 0)
	}

	s.selection = selection.Of(selection.Cell(x, y))
	return grid.At(x, y)
}

func orElse(v, fallback int) int {
	if v == grid.NotFound {
		return fallback
	}
	return v
}
