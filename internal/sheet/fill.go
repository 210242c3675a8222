package sheet

import (
	"log/slog"

	"github.com/dshills/gridstorm/internal/autofill"
	"github.com/dshills/gridstorm/internal/edit"
	"github.com/dshills/gridstorm/internal/grid"
	"github.com/dshills/gridstorm/internal/optional"
	"github.com/dshills/gridstorm/internal/selection"
)

// Direction is a movement along one axis.
type Direction int

const (
	Down Direction = iota
	Up
	Right
	Left
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// ParseDirection parses a direction name.
func ParseDirection(s string) (Direction, bool) {
	for d := Down; d <= Left; d++ {
		if d.String() == s {
			return d, true
		}
	}
	return Down, false
}

// lane is one column (vertical fill) or row (horizontal fill). Sources and
// targets are both ordered in fill direction.
type lane struct {
	sources []grid.Coord
	targets []grid.Coord
}

// fillPlan splits a fill into lanes. target is either disjoint from source
// or the source extended along one axis.
func fillPlan(source, target selection.Range, maxSamples int) (Direction, selection.Range, []lane, error) {
	area := target
	switch {
	case target.ContainsRange(source):
		pieces := target.Difference(source)
		if len(pieces) != 1 {
			return 0, selection.Range{}, nil, ErrInvalidFill
		}
		area = pieces[0]
	case target.Overlaps(source):
		return 0, selection.Range{}, nil, ErrInvalidFill
	}

	sameCols := area.Left == source.Left && area.Right == source.Right
	sameRows := area.Top == source.Top && area.Bottom == source.Bottom
	var dir Direction
	switch {
	case sameCols && area.Top > source.Bottom:
		dir = Down
	case sameCols && area.Bottom < source.Top:
		dir = Up
	case sameRows && area.Left > source.Right:
		dir = Right
	case sameRows && area.Right < source.Left:
		dir = Left
	default:
		return 0, selection.Range{}, nil, ErrInvalidFill
	}

	var lanes []lane
	switch dir {
	case Down, Up:
		for x := source.Left; x <= source.Right; x++ {
			lanes = append(lanes, lane{
				sources: walk(x, x, source.Top, source.Bottom, dir == Up),
				targets: walk(x, x, area.Top, area.Bottom, dir == Up),
			})
		}
	case Right, Left:
		for y := source.Top; y <= source.Bottom; y++ {
			lanes = append(lanes, lane{
				sources: walk(source.Left, source.Right, y, y, dir == Left),
				targets: walk(area.Left, area.Right, y, y, dir == Left),
			})
		}
	}
	for i := range lanes {
		if n := len(lanes[i].sources); n > maxSamples {
			lanes[i].sources = lanes[i].sources[n-maxSamples:]
		}
	}
	return dir, area, lanes, nil
}

// walk lists the cells of a one-wide range, backwards when reverse is set.
func walk(x1, x2, y1, y2 int, reverse bool) []grid.Coord {
	var out []grid.Coord
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			out = append(out, grid.At(x, y))
		}
	}
	if reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func (s *Sheet) samples(ln lane) []optional.Option[string] {
	g := s.content.Grid()
	out := make([]optional.Option[string], len(ln.sources))
	for i, c := range ln.sources {
		out[i] = g.Get(c)
	}
	return out
}

func (s *Sheet) planFill(source, target selection.Range) (Direction, selection.Range, []lane, error) {
	if err := validate(selection.Of(source, target)); err != nil {
		return 0, selection.Range{}, nil, err
	}
	clipped := s.clip(selection.Of(source, target))
	return fillPlan(clipped[0], clipped[1], s.maxFillSamples)
}

// Fill extends the pattern of source into target. Content is continued by
// sequence inference per lane; styles repeat cyclically. target may be
// disjoint from source or include it.
func (s *Sheet) Fill(source, target selection.Range) error {
	dir, area, lanes, err := s.planFill(source, target)
	if err != nil {
		return err
	}

	values := make(map[grid.Coord]optional.Option[string])
	for _, ln := range lanes {
		it := autofill.New(s.samples(ln)).Iter()
		for _, t := range ln.targets {
			values[t] = it.Next()
		}
	}

	sel := selection.Of(area)
	tx := s.begin("fill", selection.Of(source.Union(area)))
	g, f := edit.SetValues(s.content.Grid(), sel, values)
	s.content.Commit(tx, g, f)
	for _, c := range s.styles {
		c.repeat(tx, sel, lanes)
	}
	s.commit(tx)

	s.selection = selection.Of(source.Union(area))
	s.logger.Debug("fill",
		slog.String("direction", dir.String()),
		slog.String("area", area.String()),
		slog.Int("lanes", len(lanes)),
	)
	return nil
}

// FillPreview returns the value Fill would write into the last cell of the
// first lane, without changing the sheet.
func (s *Sheet) FillPreview(source, target selection.Range) (optional.Option[string], error) {
	_, _, lanes, err := s.planFill(source, target)
	if err != nil {
		return nil, err
	}
	ln := lanes[0]
	return autofill.Preview(s.samples(ln), len(ln.targets)), nil
}
