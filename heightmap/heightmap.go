package heightmap

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of elevations.
// It deep-copies the input to ensure immutability. start and end may coincide.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrElevationRange for a value
// above Highest, and ErrMarkerOutOfBounds if start or end lies outside.
// Algorithmic complexity: O(W×H) time and memory.
func New(values [][]Elevation, start, end Position) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([]Elevation, 0, h*w)
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		for c, v := range row {
			if v > Highest {
				return nil, fmt.Errorf("%w: %d at %v", ErrElevationRange, v, Position{Row: r, Col: c})
			}
		}
		cells = append(cells, row...)
	}
	g := &Grid{rows: h, cols: w, cells: cells, start: start, end: end}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrMarkerOutOfBounds, start)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: end %v", ErrMarkerOutOfBounds, end)
	}

	return g, nil
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Start returns the designated start position.
func (g *Grid) Start() Position { return g.start }

// End returns the designated end (goal) position.
func (g *Grid) End() Position { return g.end }

// InBounds reports whether p lies within [0,Rows)×[0,Cols).
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Lookup returns the elevation at p and whether p is inside the grid.
func (g *Grid) Lookup(p Position) (Elevation, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[g.index(p)], true
}

// Get returns the elevation at p, or Impassable when p is outside the grid.
func (g *Grid) Get(p Position) Elevation {
	e, ok := g.Lookup(p)
	if !ok {
		return Impassable
	}
	return e
}

// ReachableNeighbors returns the orthogonal neighbors of p that ClimbRule
// allows stepping onto, in the order up, down, left, right.
func (g *Grid) ReachableNeighbors(p Position) []Position {
	return g.NeighborsFunc(p, ClimbRule)
}

// NeighborsFunc returns the in-bounds orthogonal neighbors n of p for which
// rule(Get(p), Get(n)) holds, in the order up, down, left, right.
// A nil rule means ClimbRule. Cells outside the grid are never returned.
func (g *Grid) NeighborsFunc(p Position, rule Rule) []Position {
	if rule == nil {
		rule = ClimbRule
	}
	from := g.Get(p)
	out := make([]Position, 0, len(offsets))
	for _, d := range offsets {
		n := p.Add(d)
		to, ok := g.Lookup(n)
		if !ok || !rule(from, to) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// PositionsAt lists every cell whose elevation equals e, in row-major order.
func (g *Grid) PositionsAt(e Elevation) []Position {
	var out []Position
	for i, v := range g.cells {
		if v == e {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// String renders the grid back to its letter form, one row per line,
// with the start and end cells shown as their markers.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			p := Position{Row: r, Col: c}
			switch p {
			case g.start:
				b.WriteByte(StartMarker)
			case g.end:
				b.WriteByte(EndMarker)
			default:
				b.WriteByte('a' + byte(g.cells[g.index(p)]))
			}
		}
	}
	return b.String()
}

// index maps p to a row-major index: Row*cols + Col.
// Complexity: O(1).
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}
