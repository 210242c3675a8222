package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func gridOf(cells ...Coord) *Grid[string] {
	g := NewGrid[string]()
	for _, c := range cells {
		g.Set(c, c.String())
	}
	return g
}

func TestBoundingBox(t *testing.T) {
	x, y := NewGrid[string]().BoundingBox()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	x, y = gridOf(At(3, 1), At(1, 7)).BoundingBox()
	assert.Equal(t, 3, x)
	assert.Equal(t, 7, y)
}

func TestEdges(t *testing.T) {
	g := gridOf(At(1, 0), At(6, 2), At(4, 5), At(2, 9))

	assert.Equal(t, 6, g.RightEdge(0, 4))
	assert.Equal(t, 4, g.RightEdge(3, 6))
	assert.Equal(t, 0, g.RightEdge(20, 30))

	assert.Equal(t, 9, g.BottomEdge(0, 2))
	assert.Equal(t, 5, g.BottomEdge(3, 5))
}

func TestTopLeft(t *testing.T) {
	x, y := NewGrid[string]().TopLeft(100, 200)
	assert.Equal(t, 100, x)
	assert.Equal(t, 200, y)

	x, y = gridOf(At(4, 2), At(3, 8)).TopLeft(100, 200)
	assert.Equal(t, 3, x)
	assert.Equal(t, 2, y)
}

func TestBoundaryDown(t *testing.T) {
	// column 0: rows 2..4 populated, then 7..8
	g := gridOf(At(0, 2), At(0, 3), At(0, 4), At(0, 7), At(0, 8), At(3, 1))

	tests := []struct {
		name string
		from int
		want int
	}{
		{"above block jumps to start", 0, 2},
		{"at block start jumps to end", 2, 4},
		{"inside block jumps to end", 3, 4},
		{"at block end jumps to next start", 4, 7},
		{"at second start jumps to its end", 7, 8},
		{"past data", 8, NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.BoundaryDown(0, 0, tt.from))
		})
	}
}

func TestBoundaryUp(t *testing.T) {
	g := gridOf(At(0, 2), At(0, 3), At(0, 4), At(0, 7), At(0, 8))
	assert.Equal(t, 8, g.BoundaryUp(0, 0, 10))
	assert.Equal(t, 7, g.BoundaryUp(0, 0, 8))
	assert.Equal(t, 4, g.BoundaryUp(0, 0, 7))
	assert.Equal(t, 2, g.BoundaryUp(0, 0, 4))
	assert.Equal(t, NotFound, g.BoundaryUp(0, 0, 2))
}

func TestBoundaryHorizontal(t *testing.T) {
	g := gridOf(At(1, 0), At(2, 0), At(3, 0), At(6, 1))
	assert.Equal(t, 1, g.BoundaryRight(0, 0, 0))
	assert.Equal(t, 3, g.BoundaryRight(0, 0, 1))
	assert.Equal(t, 6, g.BoundaryRight(0, 1, 3))
	assert.Equal(t, 3, g.BoundaryLeft(0, 0, 9))
	assert.Equal(t, 1, g.BoundaryLeft(0, 0, 3))
}

func TestBoundaryRespectsSpan(t *testing.T) {
	g := gridOf(At(5, 3), At(0, 9))
	assert.Equal(t, 9, g.BoundaryDown(0, 0, 0))
	assert.Equal(t, 3, g.BoundaryDown(0, 5, 0))
	assert.Equal(t, NotFound, g.BoundaryDown(1, 4, 0))
}

func TestBoundaryIsolatedCell(t *testing.T) {
	g := gridOf(At(0, 5))
	assert.Equal(t, 5, g.BoundaryDown(0, 0, 0))
	assert.Equal(t, 5, g.BoundaryUp(0, 0, 9))
}
